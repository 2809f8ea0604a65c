package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "projects.db"))
	require.NoError(t, err)
	t.Cleanup(store.Close)
	return store
}

func testStores(t *testing.T) map[string]Store {
	return map[string]Store{
		"memory": NewMemoryStore(),
		"sqlite": newSQLiteStore(t),
	}
}

func TestStore_SaveAndGet(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			rec, err := NewProjectRecord([]byte(`{"title": "Chattbot", "budgetDetails": {"budgetAmount": 100000}}`))
			require.NoError(t, err)

			require.NoError(t, store.SaveProject(ctx, rec))

			got, err := store.GetProject(ctx, rec.ID)
			require.NoError(t, err)
			assert.Equal(t, rec.ID, got.ID)
			assert.Equal(t, "Chattbot", got.Title)
			assert.JSONEq(t, string(rec.Data), string(got.Data))

			p, err := got.Project()
			require.NoError(t, err)
			assert.Equal(t, rec.ID.String(), p.ID.String())
			require.NotNil(t, p.BudgetAmount())
			assert.Equal(t, 100000.0, *p.BudgetAmount())
		})
	}
}

func TestStore_NotFound(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			_, err := store.GetProject(context.Background(), uuid.New())
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrProjectNotFound)
		})
	}
}

func TestStore_ListOrderedByTitle(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for _, title := range []string{"Bygglov", "Äldreomsorg", "Arkiv"} {
				rec, err := NewProjectRecord([]byte(`{"title": "` + title + `"}`))
				require.NoError(t, err)
				require.NoError(t, store.SaveProject(ctx, rec))
			}

			records, err := store.ListProjects(ctx)
			require.NoError(t, err)
			require.Len(t, records, 3)
			assert.Equal(t, "Arkiv", records[0].Title)
			assert.Equal(t, "Bygglov", records[1].Title)
		})
	}
}

func TestStore_SaveReplaces(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			rec, err := NewProjectRecord([]byte(`{"title": "Första"}`))
			require.NoError(t, err)
			require.NoError(t, store.SaveProject(ctx, rec))

			rec.Title = "Andra"
			rec.Data = []byte(`{"title": "Andra"}`)
			require.NoError(t, store.SaveProject(ctx, rec))

			records, err := store.ListProjects(ctx)
			require.NoError(t, err)
			require.Len(t, records, 1)
			assert.Equal(t, "Andra", records[0].Title)
		})
	}
}

func TestStore_EmptyList(t *testing.T) {
	for name, store := range testStores(t) {
		t.Run(name, func(t *testing.T) {
			records, err := store.ListProjects(context.Background())
			require.NoError(t, err)
			assert.Empty(t, records)
		})
	}
}

func TestNewProjectRecord_UsesDocumentID(t *testing.T) {
	id := uuid.New()
	rec, err := NewProjectRecord([]byte(`{"id": "` + id.String() + `", "title": "Med id"}`))
	require.NoError(t, err)

	assert.Equal(t, id, rec.ID)
	assert.Equal(t, "Med id", rec.Title)
	assert.False(t, rec.UpdatedAt.IsZero())
}

func TestNewProjectRecord_GeneratesID(t *testing.T) {
	rec, err := NewProjectRecord([]byte(`{"id": 42, "title": "Utan uuid"}`))
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rec.ID)
}

func TestNewProjectRecord_InvalidJSON(t *testing.T) {
	_, err := NewProjectRecord([]byte(`{"title": `))
	assert.Error(t, err)
}

func TestProjectRecord_ProjectInvalidData(t *testing.T) {
	rec := ProjectRecord{ID: uuid.New(), Data: []byte(`not json`)}

	_, err := rec.Project()
	require.Error(t, err)
	assert.Contains(t, err.Error(), rec.ID.String())
}

func TestOpen_NoDatabaseConfigured(t *testing.T) {
	_, err := Open(context.Background(), "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no database configured")
}

func TestOpen_SQLite(t *testing.T) {
	store, err := Open(context.Background(), "", filepath.Join(t.TempDir(), "open.db"))
	require.NoError(t, err)
	defer store.Close()

	_, ok := store.(*SQLiteStore)
	assert.True(t, ok)
}

func TestSQLiteStore_ListSkipsCorruptID(t *testing.T) {
	ctx := context.Background()
	store := newSQLiteStore(t)

	rec, err := NewProjectRecord([]byte(`{"title": "Hel"}`))
	require.NoError(t, err)
	require.NoError(t, store.SaveProject(ctx, rec))

	_, err = store.db.ExecContext(ctx,
		`INSERT INTO projects (id, title, data, updated_at) VALUES ('inte-ett-id', 'Trasig', '{}', '')`)
	require.NoError(t, err)

	records, err := store.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, rec.ID, records[0].ID)
}
