package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/rivercross/internal/config"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := writeFile(t, "rivercross.yaml", `
log_level: debug
format: mermaid
http:
  addr: ":9090"
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, config.FormatMermaid, cfg.Format)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	// untouched keys keep their defaults
	assert.Equal(t, config.TransportStdio, cfg.MCP.Transport)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_JSON(t *testing.T) {
	path := writeFile(t, "rivercross.json", `{"format": "json", "metrics": {"enabled": false}}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, config.FormatJSON, cfg.Format)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_Invalid(t *testing.T) {
	_, err := config.Load(writeFile(t, "bad.yaml", "format: [unclosed"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "unknown.yaml", "format: braille"))
	assert.ErrorIs(t, err, config.ErrUnknownFormat)
}

func TestApply_FlagsOverrideFile(t *testing.T) {
	cfg, err := config.Load(writeFile(t, "rivercross.yaml", "format: json\nhttp:\n  addr: \":9090\"\n"))
	require.NoError(t, err)

	err = cfg.Apply(map[string]any{
		"format": "yaml",
		"mcp":    map[string]any{"transport": "sse"},
		"banner": "false",
	})
	require.NoError(t, err)

	assert.Equal(t, config.FormatYAML, cfg.Format)
	assert.Equal(t, config.TransportSSE, cfg.MCP.Transport)
	assert.Equal(t, ":8081", cfg.MCP.Addr)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.False(t, cfg.Banner)
}

func TestApply_Rejects(t *testing.T) {
	cfg := config.Default()
	assert.Error(t, cfg.Apply(map[string]any{"colour": "blue"}))

	cfg = config.Default()
	assert.ErrorIs(t, cfg.Apply(map[string]any{"mcp": map[string]any{"transport": "carrier-pigeon"}}), config.ErrUnknownTransport)
}

func TestValidate_MetricsPath(t *testing.T) {
	cfg := config.Default()
	assert.ErrorIs(t, cfg.Apply(map[string]any{"metrics": map[string]any{"path": "prom"}}), config.ErrInvalidMetricsPath)

	cfg = config.Default()
	require.NoError(t, cfg.Apply(map[string]any{"metrics": map[string]any{"path": "/prom"}}))
	assert.Equal(t, "/prom", cfg.Metrics.Path)

	cfg = config.Default()
	require.NoError(t, cfg.Apply(map[string]any{"metrics": map[string]any{"enabled": false, "path": ""}}))
}
