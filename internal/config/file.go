package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ytget/zip-lookup/internal/platform"
)

// FileConfig is the YAML configuration read by the command line tool
type FileConfig struct {
	API struct {
		BaseURL        string `yaml:"base_url"`
		TimeoutSeconds int    `yaml:"timeout_seconds"`
	} `yaml:"api"`

	Assets struct {
		Dir string `yaml:"dir"`
	} `yaml:"assets"`

	Language string `yaml:"language"`
}

// DefaultFileConfig returns the configuration used when no file is given
func DefaultFileConfig() *FileConfig {
	cfg := &FileConfig{Language: "en"}
	cfg.API.BaseURL = DefaultAPIBaseURL
	cfg.API.TimeoutSeconds = DefaultRequestTimeout
	cfg.Assets.Dir = platform.DefaultAssetDir()
	return cfg
}

// LoadFileConfig reads YAML config from path. Missing keys keep their
// defaults; an empty path returns the defaults.
func LoadFileConfig(path string) (*FileConfig, error) {
	cfg := DefaultFileConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *FileConfig) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url must not be empty")
	}
	if c.API.TimeoutSeconds < 0 || c.API.TimeoutSeconds > MaxRequestTimeout {
		return fmt.Errorf("api.timeout_seconds must be between 0 and %d", MaxRequestTimeout)
	}
	return nil
}

// Timeout returns the request timeout as a duration
func (c *FileConfig) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}
