// Package config loads manifest job descriptions from YAML files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	yaml "gopkg.in/yaml.v2"

	"github.com/digidem/openrosa-manifest/pkg/manifest"
	"github.com/digidem/openrosa-manifest/pkg/types"
)

// Config describes one manifest to generate.
type Config struct {
	// Headers are merged over the default request headers.
	Headers map[string]string `yaml:"headers,omitempty"`

	// Timeout bounds each fetch. Zero disables it.
	Timeout time.Duration `yaml:"timeout,omitempty"`

	// Concurrency caps simultaneous fetches. Zero means unlimited.
	Concurrency int `yaml:"concurrency,omitempty"`

	Files []types.FileDescriptor `yaml:"files"`
}

// Load reads and parses the YAML file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a YAML document. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the config describes a complete manifest.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if c.Concurrency < 0 {
		return errors.New("concurrency must not be negative")
	}
	if len(c.Files) == 0 {
		return errors.New("no files to list")
	}
	for i, f := range c.Files {
		if f.URL == "" {
			return fmt.Errorf("files[%d]: %w", i, manifest.ErrMissingURL)
		}
	}
	return nil
}

// Options converts the config into manifest options.
func (c *Config) Options() []manifest.Option {
	opts := []manifest.Option{
		manifest.WithTimeout(c.Timeout),
		manifest.WithConcurrency(c.Concurrency),
	}
	if len(c.Headers) > 0 {
		opts = append(opts, manifest.WithHeaders(c.Headers))
	}
	return opts
}
