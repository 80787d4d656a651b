// Package config loads the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all repo-insights configuration.
type Config struct {
	Data   DataConfig   `yaml:"data"`
	Server ServerConfig `yaml:"server"`
	GitHub GitHubConfig `yaml:"github"`
}

type DataConfig struct {
	Path string `yaml:"path"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type GitHubConfig struct {
	Queries    []string `yaml:"queries"`
	Repos      []string `yaml:"repos"`
	MaxResults int      `yaml:"max_results"`
	Output     string   `yaml:"output"`
	// RateLimitWait caps a single sleep on GitHub's secondary rate limit, e.g. "15m".
	RateLimitWait time.Duration `yaml:"rate_limit_wait"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Data:   DataConfig{Path: "github_repos.csv"},
		Server: ServerConfig{Addr: "127.0.0.1:8080"},
		GitHub: GitHubConfig{
			MaxResults:    100,
			Output:        "github_repos.csv",
			RateLimitWait: time.Hour,
		},
	}
}

// Load reads a YAML config file at path and merges it with defaults.
// Returns an error if the file cannot be read or contains invalid YAML.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault loads path when it is set, and returns defaults otherwise.
func LoadOrDefault(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks values that would otherwise fail later in confusing ways.
func (c *Config) Validate() error {
	if c.GitHub.MaxResults < 0 {
		return errors.New("github.max_results must be >= 0")
	}
	if c.GitHub.RateLimitWait < 0 {
		return errors.New("github.rate_limit_wait must be >= 0")
	}
	if c.Data.Path == "" {
		return errors.New("data.path must not be empty")
	}
	return nil
}
