// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags or environment variables.
type Config struct {
	// LLM
	Provider string `json:"provider,omitempty"` // "groq" or "gemini"
	Model    string `json:"model,omitempty"`    // Model name override
	APIKey   string `json:"api_key,omitempty"`  // LLM API key

	// Storage
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
	RedisURL    string `json:"redis_url,omitempty"`    // Redis URL for ingestion dedupe

	// Feed
	FeedConcurrency int `json:"feed_concurrency,omitempty"` // Parallel job scorers (default 8)
	FeedLimit       int `json:"feed_limit,omitempty"`       // Max jobs returned per feed request

	// Behavior
	Verbose   bool `json:"verbose,omitempty"`    // Print detailed debug information
	ProbeURLs bool `json:"probe_urls,omitempty"` // Enable the link probe during import
}

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

// FromEnv fills unset fields from environment variables. Flag and config-file
// values win over the environment. With no provider chosen yet, a Gemini key
// in the environment also selects the gemini provider.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		switch c.Provider {
		case "groq":
			c.APIKey = os.Getenv("GROQ_API_KEY")
		case "gemini":
			c.APIKey = os.Getenv("GEMINI_API_KEY")
		default:
			if key := os.Getenv("GROQ_API_KEY"); key != "" {
				c.APIKey = key
			} else if key := os.Getenv("GEMINI_API_KEY"); key != "" {
				c.APIKey = key
				c.Provider = "gemini"
			}
		}
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if c.RedisURL == "" {
		c.RedisURL = os.Getenv("REDIS_URL")
	}
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Provider != "" && c.Provider != "groq" && c.Provider != "gemini" {
		return fmt.Errorf("config error: 'provider' must be \"groq\" or \"gemini\", got %q", c.Provider)
	}
	if c.FeedConcurrency < 0 {
		return fmt.Errorf("config error: 'feed_concurrency' must be non-negative")
	}
	if c.FeedLimit < 0 {
		return fmt.Errorf("config error: 'feed_limit' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Provider == "" {
		result.Provider = defaults.Provider
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.RedisURL == "" {
		result.RedisURL = defaults.RedisURL
	}
	if result.FeedConcurrency == 0 {
		result.FeedConcurrency = defaults.FeedConcurrency
	}
	if result.FeedLimit == 0 {
		result.FeedLimit = defaults.FeedLimit
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}
	if !result.ProbeURLs {
		result.ProbeURLs = defaults.ProbeURLs
	}

	return result
}
