package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SCHOLARSITE_*). A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// Overlay environment variables: SCHOLARSITE_OUTPUT_DIR -> output_dir.
	// Assets take a comma-separated list.
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", func(key, value string) (string, interface{}) {
		key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
		if key == "assets" {
			return key, splitAndTrim(value)
		}
		return key, value
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Source) == "" {
		return errors.New("source is required")
	}
	if strings.Contains(c.Source, "://") {
		u, err := url.Parse(c.Source)
		if err != nil {
			return fmt.Errorf("invalid source %q: %w", c.Source, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid source %q: scheme must be http or https", c.Source)
		}
	}

	if c.OutputDir == "" {
		return errors.New("output_dir is required")
	}

	for _, pattern := range c.Assets {
		if !doublestar.ValidatePattern(pattern) {
			return fmt.Errorf("invalid asset pattern %q", pattern)
		}
	}

	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}

	if c.TimeoutSeconds < 0 {
		return errors.New("timeout_seconds must be non-negative")
	}

	return nil
}

// Timeout is the per-resource load timeout. Zero disables it.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// RemoteSource reports whether data is fetched over HTTP.
func (c *Config) RemoteSource() bool {
	return strings.HasPrefix(c.Source, "http://") || strings.HasPrefix(c.Source, "https://")
}

// ReadShell returns the configured page shell, or nil for the built-in one.
func (c *Config) ReadShell() ([]byte, error) {
	if c.Shell == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.Shell)
	if err != nil {
		return nil, fmt.Errorf("reading shell %s: %w", c.Shell, err)
	}
	return data, nil
}

// splitAndTrim splits a comma-separated string, dropping empty parts.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
