// Package config loads the CLI settings from a YAML or JSON file and merges
// command-line overrides on top of them.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/rivercross/internal/logging"
)

// Output formats accepted by the solve command.
const (
	FormatText    = "text"
	FormatRich    = "rich"
	FormatJSON    = "json"
	FormatYAML    = "yaml"
	FormatMermaid = "mermaid"
	FormatAuto    = "auto"
)

// Formats lists every accepted output format.
var Formats = []string{FormatText, FormatRich, FormatJSON, FormatYAML, FormatMermaid, FormatAuto}

// MCP transports.
const (
	TransportStdio = "stdio"
	TransportSSE   = "sse"
)

var (
	// ErrUnknownFormat is returned when the output format is not one of Formats.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrUnknownTransport is returned when the MCP transport is neither stdio nor sse.
	ErrUnknownTransport = errors.New("unknown mcp transport")
	// ErrInvalidMetricsPath is returned when metrics are enabled on a path that is not absolute.
	ErrInvalidMetricsPath = errors.New("metrics path must start with /")
)

// Config represents the structure of rivercross.yaml.
type Config struct {
	LogLevel string `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	Format   string `yaml:"format" json:"format" mapstructure:"format"`
	// Banner prints the colored banner before rich output.
	Banner bool `yaml:"banner" json:"banner" mapstructure:"banner"`

	HTTP    HTTPConfig    `yaml:"http" json:"http" mapstructure:"http"`
	MCP     MCPConfig     `yaml:"mcp" json:"mcp" mapstructure:"mcp"`
	Metrics MetricsConfig `yaml:"metrics" json:"metrics" mapstructure:"metrics"`
}

type HTTPConfig struct {
	Addr string `yaml:"addr" json:"addr" mapstructure:"addr"`
}

type MCPConfig struct {
	Transport string `yaml:"transport" json:"transport" mapstructure:"transport"`
	// Addr is only used by the sse transport.
	Addr string `yaml:"addr" json:"addr" mapstructure:"addr"`
}

type MetricsConfig struct {
	Enabled bool   `yaml:"enabled" json:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" json:"path" mapstructure:"path"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		LogLevel: "warn",
		Format:   FormatText,
		Banner:   true,
		HTTP:     HTTPConfig{Addr: ":8080"},
		MCP:      MCPConfig{Transport: TransportStdio, Addr: ":8081"},
		Metrics:  MetricsConfig{Enabled: true, Path: "/metrics"},
	}
}

// Load reads a configuration file (YAML or JSON) on top of Default.
// An empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return cfg, cfg.Validate()
}

// Apply merges overrides (typically the flags the user actually set) into c.
// Keys follow the mapstructure tags, nested sections as nested maps.
func (c *Config) Apply(overrides map[string]any) error {
	if len(overrides) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           c,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(overrides); err != nil {
		return fmt.Errorf("invalid override: %w", err)
	}
	return c.Validate()
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if !knownFormat(c.Format) {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, c.Format)
	}
	if c.MCP.Transport != TransportStdio && c.MCP.Transport != TransportSSE {
		return fmt.Errorf("%w: %q", ErrUnknownTransport, c.MCP.Transport)
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("%w: %q", ErrInvalidMetricsPath, c.Metrics.Path)
	}
	return nil
}

func knownFormat(f string) bool {
	for _, known := range Formats {
		if f == known {
			return true
		}
	}
	return false
}
