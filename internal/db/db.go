// Package db provides read access to stored project records in PostgreSQL
// or SQLite.
package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// ProjectStore is the read side used by the server and batch analytics.
type ProjectStore interface {
	GetProject(ctx context.Context, id uuid.UUID) (*ProjectRecord, error)
	ListProjects(ctx context.Context) ([]ProjectRecord, error)
}

// Store is a ProjectStore that can also import records.
type Store interface {
	ProjectStore
	SaveProject(ctx context.Context, rec *ProjectRecord) error
	Close()
}

// Open connects to PostgreSQL when databaseURL is set, otherwise opens the
// SQLite file at sqlitePath. The projects table is created if missing.
func Open(ctx context.Context, databaseURL, sqlitePath string) (Store, error) {
	switch {
	case databaseURL != "":
		store, err := Connect(ctx, databaseURL)
		if err != nil {
			return nil, err
		}
		if err := store.Migrate(ctx); err != nil {
			store.Close()
			return nil, err
		}
		return store, nil
	case sqlitePath != "":
		return OpenSQLite(ctx, sqlitePath)
	default:
		return nil, fmt.Errorf("no database configured: set database_url or sqlite_path")
	}
}
