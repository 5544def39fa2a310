package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/docreduce/internal/engine"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "docreduce.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := LoadWith("", map[string]string{})
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, int64(engine.DefaultMaxRecords), cfg.MaxRecords)
}

func TestLoadPrecedence(t *testing.T) {
	path := writeFile(t, "database: file.db\nbackend: badger\nlog_level: debug\n")

	cfg, err := LoadWith(path, map[string]string{
		"DOCREDUCE_DATABASE": "env.db",
		"UNRELATED":          "x",
	})
	require.NoError(t, err)
	assert.Equal(t, "env.db", cfg.Database)
	assert.Equal(t, BackendBadger, cfg.Backend)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
}

func TestLoadRejectsUnknownYAMLField(t *testing.T) {
	path := writeFile(t, "databse: typo.db\n")
	_, err := LoadWith(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "databse")
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := LoadWith(writeFile(t, ""), nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadWith(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad backend", map[string]string{"DOCREDUCE_BACKEND": "postgres"}, "Backend"},
		{"bad level", map[string]string{"DOCREDUCE_LOG_LEVEL": "trace"}, "LogLevel"},
		{"bad format", map[string]string{"DOCREDUCE_LOG_FORMAT": "xml"}, "LogFormat"},
		{"negative quota", map[string]string{"DOCREDUCE_MAX_RECORDS": "-1"}, "MaxRecords"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadWith("", tt.env)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidationFromFile(t *testing.T) {
	_, err := LoadWith(writeFile(t, "database: \"\"\n"), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Database")
}

func TestNewLoggerJSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogFormat = "json"
	cfg.LogLevel = "warn"

	log := cfg.NewLogger(&buf)
	log.Info("hidden")
	log.Warn("shown", "document_id", "d1")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"document_id":"d1"`)
}
