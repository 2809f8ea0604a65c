package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS projects (
	id         TEXT PRIMARY KEY,
	title      TEXT NOT NULL DEFAULT '',
	data       TEXT NOT NULL,
	updated_at TEXT NOT NULL
);
`

// SQLiteStore reads projects from a local SQLite file. It is used for
// offline analysis where no PostgreSQL server is available.
type SQLiteStore struct {
	db *sqlx.DB
}

type sqliteProject struct {
	ID        string `db:"id"`
	Title     string `db:"title"`
	Data      string `db:"data"`
	UpdatedAt string `db:"updated_at"`
}

func (row sqliteProject) record() (ProjectRecord, error) {
	id, err := uuid.Parse(row.ID)
	if err != nil {
		return ProjectRecord{}, fmt.Errorf("invalid project id %q: %w", row.ID, err)
	}
	updatedAt, _ := time.Parse(time.RFC3339Nano, row.UpdatedAt)
	return ProjectRecord{
		ID:        id,
		Title:     row.Title,
		Data:      []byte(row.Data),
		UpdatedAt: updatedAt,
	}, nil
}

// OpenSQLite opens (or creates) the database file at path.
func OpenSQLite(ctx context.Context, path string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database.
func (s *SQLiteStore) Close() {
	_ = s.db.Close()
}

// GetProject retrieves a project by its ID.
func (s *SQLiteStore) GetProject(ctx context.Context, id uuid.UUID) (*ProjectRecord, error) {
	var row sqliteProject
	err := s.db.GetContext(ctx, &row,
		`SELECT id, title, data, updated_at FROM projects WHERE id = ?`, id.String())
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	rec, err := row.record()
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListProjects returns all projects ordered by title. Rows whose id is not a
// UUID are skipped with a warning so one corrupt row does not hide the rest.
func (s *SQLiteStore) ListProjects(ctx context.Context) ([]ProjectRecord, error) {
	var rows []sqliteProject
	if err := s.db.SelectContext(ctx, &rows,
		`SELECT id, title, data, updated_at FROM projects ORDER BY title, id`); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	records := make([]ProjectRecord, 0, len(rows))
	for _, row := range rows {
		rec, err := row.record()
		if err != nil {
			slog.Warn("skipping unreadable project row", "id", row.ID, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}

// SaveProject inserts or replaces a project record.
func (s *SQLiteStore) SaveProject(ctx context.Context, rec *ProjectRecord) error {
	row := sqliteProject{
		ID:        rec.ID.String(),
		Title:     rec.Title,
		Data:      string(rec.Data),
		UpdatedAt: rec.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	_, err := s.db.NamedExecContext(ctx,
		`INSERT OR REPLACE INTO projects (id, title, data, updated_at)
		 VALUES (:id, :title, :data, :updated_at)`, row)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", rec.ID, err)
	}
	return nil
}
