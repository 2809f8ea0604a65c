// Package ingestion loads project records from JSON files for batch
// evaluation and import.
package ingestion

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/carllingstrom/AI-Delning-sub000/internal/analytics"
)

// Loader reads project files through an afero.Fs.
type Loader struct {
	fs afero.Fs
}

// NewLoader creates a Loader over fs.
func NewLoader(fs afero.Fs) *Loader {
	return &Loader{fs: fs}
}

// NewOsLoader creates a Loader over the operating system filesystem.
func NewOsLoader() *Loader {
	return NewLoader(afero.NewOsFs())
}

// ReadFile returns the raw contents of one file.
func (l *Loader) ReadFile(path string) ([]byte, error) {
	file, err := l.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

// LoadFile reads one file holding a project object or an array of them.
// Content that is not a JSON array is returned as a single input and left to
// the evaluator to accept or reject.
func (l *Loader) LoadFile(path string) ([]analytics.ProjectInput, error) {
	data, err := l.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Split(data, fileID(path)), nil
}

// LoadDir reads every *.json file below dir in lexical path order.
func (l *Loader) LoadDir(dir string) ([]analytics.ProjectInput, error) {
	exists, err := afero.DirExists(l.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("check directory %s: %w", dir, err)
	}
	if !exists {
		return nil, fmt.Errorf("directory not found: %s", dir)
	}

	var inputs []analytics.ProjectInput
	err = afero.Walk(l.fs, dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.EqualFold(filepath.Ext(info.Name()), ".json") {
			return nil
		}

		loaded, err := l.LoadFile(path)
		if err != nil {
			return err
		}
		inputs = append(inputs, loaded...)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk %s: %w", dir, err)
	}
	return inputs, nil
}

// Split turns the contents of one file into batch inputs. Array elements get
// the ID "<fallback>#<n>" unless they carry their own id.
func Split(data []byte, fallbackID string) []analytics.ProjectInput {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []json.RawMessage
		if err := json.Unmarshal(trimmed, &items); err == nil {
			inputs := make([]analytics.ProjectInput, 0, len(items))
			for i, item := range items {
				inputs = append(inputs, analytics.ProjectInput{
					ID:  documentID(item, fmt.Sprintf("%s#%d", fallbackID, i)),
					Raw: item,
				})
			}
			return inputs
		}
	}
	return []analytics.ProjectInput{{ID: documentID(trimmed, fallbackID), Raw: trimmed}}
}

func documentID(raw []byte, fallback string) string {
	var doc struct {
		ID any `json:"id"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fallback
	}
	switch id := doc.ID.(type) {
	case string:
		if strings.TrimSpace(id) != "" {
			return strings.TrimSpace(id)
		}
	case float64:
		return fmt.Sprintf("%v", id)
	}
	return fallback
}

func fileID(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
