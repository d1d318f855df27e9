package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds file-based defaults for the client and output layers.
// Pointer fields distinguish "unset" from an explicit false.
type Config struct {
	Timeout         int               `yaml:"timeout,omitempty"` // milliseconds
	UserAgent       string            `yaml:"userAgent,omitempty"`
	Headers         map[string]string `yaml:"headers,omitempty"` // default headers for all requests
	FollowRedirects *bool             `yaml:"followRedirects,omitempty"`
	MaxRedirects    int               `yaml:"maxRedirects,omitempty"`
	ValidateTLS     *bool             `yaml:"validateTLS,omitempty"`
	Proxy           string            `yaml:"proxy,omitempty"`
	NoColor         *bool             `yaml:"noColor,omitempty"`
}

// Filenames contains the config file names searched in order.
var Filenames = []string{
	".httpcall.yml",
	".httpcall.yaml",
}

func getBool(b *bool, defaultVal bool) bool {
	if b == nil {
		return defaultVal
	}
	return *b
}

// GetFollowRedirects returns the follow redirects setting, defaulting to true
func (c *Config) GetFollowRedirects() bool {
	return getBool(c.FollowRedirects, true)
}

// GetValidateTLS returns the TLS validation setting, defaulting to true
func (c *Config) GetValidateTLS() bool {
	return getBool(c.ValidateTLS, true)
}

// GetNoColor returns the no color setting, defaulting to false
func (c *Config) GetNoColor() bool {
	return getBool(c.NoColor, false)
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Timeout:      30000,
		MaxRedirects: 10,
	}
}

// Load reads configuration from path, or searches the working directory
// for the well-known file names when path is empty. A missing file is
// not an error; defaults are returned.
func Load(path string) (*Config, error) {
	if path != "" {
		return loadFile(path)
	}

	for _, name := range Filenames {
		candidate := filepath.Join(".", name)
		if _, err := os.Stat(candidate); err == nil {
			return loadFile(candidate)
		}
	}

	return Default(), nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("cannot parse config file %s: %w", path, err)
	}

	return cfg, nil
}
