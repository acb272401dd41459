// Package config provides functions for loading and saving docs-preview configuration files.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/alan/docs-preview/cmd"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file looked up when --config is not given
const DefaultConfigFile = ".docs-preview.yaml"

// Environment variables that override file values
const (
	EnvBaseURL   = "DOCS_PREVIEW_BASE_URL"
	EnvSpecFile  = "DOCS_PREVIEW_SPEC_FILE"
	EnvSpecTitle = "DOCS_PREVIEW_SPEC_TITLE"
)

// Default returns the configuration used when no file is present
func Default() *cmd.Config {
	return &cmd.Config{
		BaseURL:             "https://dash.readme.com/api/v1",
		SpecFile:            "openapi/openapi.yaml",
		VersionPrefix:       "v2-",
		ParentVersion:       "v2",
		PreviewURL:          "https://preview.readme.io/{version}/reference",
		ScopeSpecsByVersion: true,
		Beta:                false,
		Hidden:              true,
	}
}

// LoadConfig loads the configuration from the specified file.
// A missing file yields the defaults; fields absent from the file keep their default values.
func LoadConfig(filename string) (*cmd.Config, error) {
	config := Default()

	data, err := os.ReadFile(filename) //nolint:gosec // Config filename is from command-line flag
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return config, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified file
func SaveConfig(filename string, config *cmd.Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides config values with any non-empty environment variables
func ApplyEnv(config *cmd.Config, getenv func(string) string) {
	if v := getenv(EnvBaseURL); v != "" {
		config.BaseURL = v
	}
	if v := getenv(EnvSpecFile); v != "" {
		config.SpecFile = v
	}
	if v := getenv(EnvSpecTitle); v != "" {
		config.SpecTitle = v
	}
}
