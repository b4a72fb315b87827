// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the library store
	DataDir     string `json:"data_dir,omitempty"`     // Directory for the file-backed library store
	Model       string `json:"model,omitempty"`        // Override for the synthesis model name

	// Limits
	SearchResults int `json:"search_results,omitempty" validate:"omitempty,min=1,max=10"` // Results requested per batch search

	// Flags
	UseBrowser bool `json:"use_browser,omitempty"` // Use headless browser for SPA article pages
	Verbose    bool `json:"verbose,omitempty"`     // Print detailed debug information
}

// Environment variable names recognized alongside the config file.
const (
	EnvAPIKey      = "GEMINI_API_KEY"
	EnvDatabaseURL = "DATABASE_URL"
	EnvDataDir     = "RESEARCHFLOW_DATA_DIR"
)

// DefaultSearchResults is the batch size requested when nothing else is configured.
const DefaultSearchResults = 5

var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables only.
func FromEnv() *Config {
	return &Config{
		APIKey:      os.Getenv(EnvAPIKey),
		DatabaseURL: os.Getenv(EnvDatabaseURL),
		DataDir:     os.Getenv(EnvDataDir),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to layer config file values under CLI flags and env vars.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.SearchResults == 0 {
		if defaults.SearchResults > 0 {
			result.SearchResults = defaults.SearchResults
		} else {
			result.SearchResults = DefaultSearchResults
		}
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// DefaultDataDir returns the per-user data directory for the file store.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".researchflow"
	}
	return filepath.Join(home, ".researchflow")
}
