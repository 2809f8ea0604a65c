package ingestion

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDir(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/data/b.json", []byte(`{"title": "Beta"}`), 0644)
	_ = afero.WriteFile(fs, "/data/a.json", []byte(`{"id": "p-1", "title": "Alfa"}`), 0644)
	_ = afero.WriteFile(fs, "/data/nested/c.JSON", []byte(`[{"title": "C0"}, {"id": 7, "title": "C1"}]`), 0644)
	_ = afero.WriteFile(fs, "/data/readme.md", []byte("# Projekt"), 0644)

	inputs, err := NewLoader(fs).LoadDir("/data")
	require.NoError(t, err)
	require.Len(t, inputs, 4)

	assert.Equal(t, "p-1", inputs[0].ID)
	assert.Equal(t, "b", inputs[1].ID)
	assert.Equal(t, "c#0", inputs[2].ID)
	assert.Equal(t, "7", inputs[3].ID)
	assert.JSONEq(t, `{"title": "C0"}`, string(inputs[2].Raw))
}

func TestLoadDir_Missing(t *testing.T) {
	_, err := NewLoader(afero.NewMemMapFs()).LoadDir("/nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "directory not found")
}

func TestLoadDir_Empty(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, fs.MkdirAll("/empty", 0755))

	inputs, err := NewLoader(fs).LoadDir("/empty")
	require.NoError(t, err)
	assert.Empty(t, inputs)
}

func TestLoadFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	_ = afero.WriteFile(fs, "/p/projekt.json", []byte("  {\"title\": \"Ensam\"}\n"), 0644)

	inputs, err := NewLoader(fs).LoadFile("/p/projekt.json")
	require.NoError(t, err)
	require.Len(t, inputs, 1)
	assert.Equal(t, "projekt", inputs[0].ID)
	assert.Equal(t, `{"title": "Ensam"}`, string(inputs[0].Raw))

	_, err = NewLoader(fs).LoadFile("/p/saknas.json")
	assert.Error(t, err)
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		wantIDs []string
	}{
		{name: "object", data: `{"title": "x"}`, wantIDs: []string{"f"}},
		{name: "object with id", data: `{"id": " abc ", "title": "x"}`, wantIDs: []string{"abc"}},
		{name: "blank id", data: `{"id": "  "}`, wantIDs: []string{"f"}},
		{name: "array", data: `[{}, {"id": "z"}]`, wantIDs: []string{"f#0", "z"}},
		{name: "empty array", data: `[]`, wantIDs: []string{}},
		{name: "broken array", data: `[{"title": `, wantIDs: []string{"f"}},
		{name: "not json", data: `hello`, wantIDs: []string{"f"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inputs := Split([]byte(tt.data), "f")
			ids := make([]string, 0, len(inputs))
			for _, in := range inputs {
				ids = append(ids, in.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}
