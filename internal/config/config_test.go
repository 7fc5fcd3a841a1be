package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoknoesis/rdfmodel/rdf"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "rdfmap.toml", `
log_level = "debug"
output_format = "rdfxml"
base = "http://example.org/"
max_line_bytes = 4096

[prefixes]
foaf = "http://xmlns.com/foaf/0.1/"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "rdfxml", cfg.OutputFormat)
	assert.Equal(t, "http://example.org/", cfg.Base)
	assert.Equal(t, 4096, cfg.MaxLineBytes)
	assert.Equal(t, map[string]string{"foaf": "http://xmlns.com/foaf/0.1/"}, cfg.Prefixes)
}

func TestLoadYAMLAppliesDefaults(t *testing.T) {
	path := writeFile(t, "rdfmap.yaml", "base: http://example.org/\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultLogLevel, cfg.LogLevel)
	assert.Equal(t, DefaultOutputFormat, cfg.OutputFormat)
	assert.Equal(t, rdf.DefaultMaxLineBytes, cfg.MaxLineBytes)
	assert.NotNil(t, cfg.Prefixes)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config load failed")

	_, err = Load(writeFile(t, "rdfmap.json", "{}"))
	assert.ErrorContains(t, err, "unsupported extension")

	_, err = Load(writeFile(t, "bad.toml", "log_level = "))
	assert.ErrorContains(t, err, "config parse failed")

	_, err = Load(writeFile(t, "fmt.yml", "output_format: n3\n"))
	assert.ErrorIs(t, err, rdf.ErrUnsupportedFormat)

	_, err = Load(writeFile(t, "prefix.yml", "prefixes:\n  \"a:b\": http://x/\n"))
	assert.ErrorContains(t, err, "invalid prefix")
}
