package db

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// MemoryStore keeps projects in memory. It backs the CLI when no database
// is configured and serves as a test double for the server.
type MemoryStore struct {
	mu       sync.RWMutex
	projects map[uuid.UUID]ProjectRecord
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{projects: make(map[uuid.UUID]ProjectRecord)}
}

// Close is a no-op.
func (s *MemoryStore) Close() {}

// GetProject retrieves a project by its ID.
func (s *MemoryStore) GetProject(_ context.Context, id uuid.UUID) (*ProjectRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.projects[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrProjectNotFound, id)
	}
	return &rec, nil
}

// ListProjects returns all projects ordered by title.
func (s *MemoryStore) ListProjects(_ context.Context) ([]ProjectRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]ProjectRecord, 0, len(s.projects))
	for _, rec := range s.projects {
		records = append(records, rec)
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].Title != records[j].Title {
			return records[i].Title < records[j].Title
		}
		return records[i].ID.String() < records[j].ID.String()
	})
	return records, nil
}

// SaveProject inserts or replaces a project record.
func (s *MemoryStore) SaveProject(_ context.Context, rec *ProjectRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.projects[rec.ID] = *rec
	return nil
}
