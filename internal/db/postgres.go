package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const postgresSchema = `
CREATE TABLE IF NOT EXISTS projects (
	id         uuid PRIMARY KEY,
	title      text NOT NULL DEFAULT '',
	data       jsonb NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT NOW()
)`

// PostgresStore reads projects from a PostgreSQL connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// Connect establishes a connection pool to the database
func Connect(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Verify connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool
func (s *PostgresStore) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Migrate creates the projects table if it does not exist.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	if _, err := s.pool.Exec(ctx, postgresSchema); err != nil {
		return fmt.Errorf("failed to create projects table: %w", err)
	}
	return nil
}

// GetProject retrieves a project by its ID
func (s *PostgresStore) GetProject(ctx context.Context, id uuid.UUID) (*ProjectRecord, error) {
	var rec ProjectRecord
	err := s.pool.QueryRow(ctx,
		`SELECT id, title, data, updated_at FROM projects WHERE id = $1`,
		id,
	).Scan(&rec.ID, &rec.Title, &rec.Data, &rec.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return &rec, nil
}

// ListProjects returns all projects ordered by title
func (s *PostgresStore) ListProjects(ctx context.Context) ([]ProjectRecord, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title, data, updated_at FROM projects ORDER BY title, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var records []ProjectRecord
	for rows.Next() {
		var rec ProjectRecord
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Data, &rec.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return records, nil
}

// SaveProject inserts or replaces a project record
func (s *PostgresStore) SaveProject(ctx context.Context, rec *ProjectRecord) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO projects (id, title, data, updated_at)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE SET title = $2, data = $3, updated_at = $4`,
		rec.ID, rec.Title, []byte(rec.Data), rec.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save project %s: %w", rec.ID, err)
	}
	return nil
}
