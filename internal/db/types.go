package db

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/carllingstrom/AI-Delning-sub000/internal/types"
)

// ErrProjectNotFound is returned when no project has the requested ID.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRecord is one stored project row. Data holds the raw project JSON
// exactly as it was submitted.
type ProjectRecord struct {
	ID        uuid.UUID       `json:"id"`
	Title     string          `json:"title"`
	Data      json.RawMessage `json:"data"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Project decodes the stored JSON leniently. The record ID is filled in
// when the document carries none.
func (r *ProjectRecord) Project() (*types.Project, error) {
	p, err := types.DecodeProject(r.Data)
	if err != nil {
		return nil, fmt.Errorf("project %s: %w", r.ID, err)
	}
	if p.ID.IsBlank() {
		p.ID = types.Text(r.ID.String())
	}
	return p, nil
}

// NewProjectRecord builds a record from raw project JSON. The ID is taken
// from the document's "id" field when it is a UUID, otherwise a new one is
// generated. The title comes from the document.
func NewProjectRecord(data []byte) (*ProjectRecord, error) {
	p, err := types.DecodeProject(data)
	if err != nil {
		return nil, err
	}

	id, err := uuid.Parse(p.ID.String())
	if err != nil {
		id = uuid.New()
	}

	return &ProjectRecord{
		ID:        id,
		Title:     p.Title.String(),
		Data:      json.RawMessage(data),
		UpdatedAt: time.Now().UTC(),
	}, nil
}
