package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, DefaultBatchWorkers, cfg.BatchWorkers)
	assert.False(t, cfg.LegacyMonthlyAnnualization)
}

func TestLoad_JSONFile(t *testing.T) {
	content := `{
		"port": 9090,
		"sqlite_path": "projects.db",
		"batch_workers": 8,
		"legacy_monthly_annualization": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "valuation.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := Load(tmpFile)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, "projects.db", cfg.SQLitePath)
	assert.Equal(t, 8, cfg.BatchWorkers)
	assert.True(t, cfg.LegacyMonthlyAnnualization)
}

func TestLoad_YAMLFile(t *testing.T) {
	content := "port: 7070\nbatch_workers: 2\n"

	tmpFile := filepath.Join(t.TempDir(), "valuation.yaml")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Port)
	assert.Equal(t, 2, cfg.BatchWorkers)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "valuation.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{"port": 9090}`), 0644))

	t.Setenv("VALUATION_PORT", "6060")
	t.Setenv("VALUATION_LEGACY_MONTHLY_ANNUALIZATION", "true")

	cfg, err := Load(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port)
	assert.True(t, cfg.LegacyMonthlyAnnualization)
}

func TestLoad_UnprefixedDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/valuation")
	t.Setenv("SQLITE_PATH", "/tmp/projects.db")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/valuation", cfg.DatabaseURL)
	assert.Equal(t, "/tmp/projects.db", cfg.SQLitePath)
}

func TestLoad_PrefixedWinsOverUnprefixed(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/other")
	t.Setenv("VALUATION_DATABASE_URL", "postgres://localhost/valuation")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/valuation", cfg.DatabaseURL)
}

func TestLoad_InvalidFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "valuation.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644))

	cfg, err := Load(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoad_FileNotFound(t *testing.T) {
	cfg, err := Load("/nonexistent/path/valuation.json")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero config", cfg: Config{}},
		{name: "valid", cfg: Config{Port: 8080, BatchWorkers: 4}},
		{name: "port too large", cfg: Config{Port: 70000}, wantErr: "'port'"},
		{name: "negative port", cfg: Config{Port: -1}, wantErr: "'port'"},
		{name: "too many workers", cfg: Config{BatchWorkers: 65}, wantErr: "'batch_workers'"},
		{name: "negative workers", cfg: Config{BatchWorkers: -2}, wantErr: "'batch_workers'"},
		{name: "missing schema", cfg: Config{SchemaPath: "/nonexistent/schema.json"}, wantErr: "schema file not found"},
		{name: "repository-relative schema", cfg: Config{SchemaPath: "schemas/project.schema.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{SQLitePath: "local.db"}
	defaults := Config{
		DatabaseURL:                "postgres://localhost/valuation",
		SQLitePath:                 "default.db",
		BatchWorkers:               8,
		LegacyMonthlyAnnualization: true,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "local.db", merged.SQLitePath)
	assert.Equal(t, "postgres://localhost/valuation", merged.DatabaseURL)
	assert.Equal(t, 8, merged.BatchWorkers)
	assert.Equal(t, DefaultPort, merged.Port)
	assert.True(t, merged.LegacyMonthlyAnnualization)

	// The receiver is not modified
	assert.Empty(t, cfg.DatabaseURL)
}
