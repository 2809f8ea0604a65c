//go:build integration

package db

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func getTestDB(t *testing.T) *PostgresStore {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping integration test")
	}

	ctx := context.Background()
	store, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	require.NoError(t, store.Migrate(ctx))

	return store
}

func cleanupProject(t *testing.T, store *PostgresStore, id uuid.UUID) {
	t.Helper()
	_, _ = store.pool.Exec(context.Background(), "DELETE FROM projects WHERE id = $1", id)
}

func TestIntegration_Postgres_ProjectCRUD(t *testing.T) {
	store := getTestDB(t)
	defer store.Close()
	ctx := context.Background()

	rec, err := NewProjectRecord([]byte(`{"title": "Integrationstest", "costData": {"costEntries": []}}`))
	require.NoError(t, err)
	defer cleanupProject(t, store, rec.ID)

	t.Run("save and get", func(t *testing.T) {
		require.NoError(t, store.SaveProject(ctx, rec))

		got, err := store.GetProject(ctx, rec.ID)
		require.NoError(t, err)
		assert.Equal(t, "Integrationstest", got.Title)
		assert.JSONEq(t, string(rec.Data), string(got.Data))
	})

	t.Run("list contains project", func(t *testing.T) {
		records, err := store.ListProjects(ctx)
		require.NoError(t, err)

		found := false
		for _, r := range records {
			if r.ID == rec.ID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("missing project", func(t *testing.T) {
		_, err := store.GetProject(ctx, uuid.New())
		assert.ErrorIs(t, err, ErrProjectNotFound)
	})
}
