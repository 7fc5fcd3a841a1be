// Package config loads the rdfmap configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/geoknoesis/rdfmodel/rdf"
)

const (
	DefaultLogLevel     = "info"
	DefaultOutputFormat = "turtle"
)

// Config holds the CLI settings. Prefixes are bound into every output graph.
// MaxLineBytes bounds one line of input; a negative value disables the limit.
type Config struct {
	LogLevel     string            `toml:"log_level" yaml:"log_level"`
	OutputFormat string            `toml:"output_format" yaml:"output_format"`
	Base         string            `toml:"base" yaml:"base"`
	MaxLineBytes int               `toml:"max_line_bytes" yaml:"max_line_bytes"`
	Prefixes     map[string]string `toml:"prefixes" yaml:"prefixes"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		LogLevel:     DefaultLogLevel,
		OutputFormat: DefaultOutputFormat,
		MaxLineBytes: rdf.DefaultMaxLineBytes,
		Prefixes:     map[string]string{},
	}
}

// Load reads a TOML or YAML file, chosen by extension, and fills unset fields
// with defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("config load failed (%s): unsupported extension %q", path, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	c.LogLevel = strings.TrimSpace(c.LogLevel)
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	c.OutputFormat = strings.TrimSpace(c.OutputFormat)
	if c.OutputFormat == "" {
		c.OutputFormat = DefaultOutputFormat
	}
	c.Base = strings.TrimSpace(c.Base)
	if c.MaxLineBytes == 0 {
		c.MaxLineBytes = rdf.DefaultMaxLineBytes
	}
	if c.Prefixes == nil {
		c.Prefixes = map[string]string{}
	}
}

// Validate checks the output format and the prefix table.
func (c Config) Validate() error {
	if _, ok := rdf.ParseFormat(c.OutputFormat); !ok {
		return fmt.Errorf("%w: %q", rdf.ErrUnsupportedFormat, c.OutputFormat)
	}
	for prefix, ns := range c.Prefixes {
		if strings.ContainsAny(prefix, ": \t") {
			return fmt.Errorf("invalid prefix %q", prefix)
		}
		if strings.TrimSpace(ns) == "" {
			return fmt.Errorf("prefix %q has an empty namespace", prefix)
		}
	}
	return nil
}
