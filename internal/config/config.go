// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Input  string `json:"input,omitempty"`  // Path to the resume document to extract
	Output string `json:"output,omitempty"` // Path to write the extraction result to

	// Extraction tuning
	SkillVocabulary []string `json:"skill_vocabulary,omitempty"` // Skill terms to match against
	FuzzyThreshold  int      `json:"fuzzy_threshold,omitempty"`  // Minimum partial-match score (0-100)
	SummaryMaxLines int      `json:"summary_max_lines,omitempty"`

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key
	UseLLM      bool   `json:"use_llm,omitempty"`      // Enable LLM-backed entity recognition and validation
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed debug information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.FuzzyThreshold < 0 || c.FuzzyThreshold > 100 {
		return fmt.Errorf("config error: 'fuzzy_threshold' must be between 0 and 100")
	}
	if c.SummaryMaxLines < 0 {
		return fmt.Errorf("config error: 'summary_max_lines' must be non-negative")
	}

	if c.Input != "" {
		if _, err := os.Stat(c.Input); os.IsNotExist(err) {
			return fmt.Errorf("config error: input file not found: %s", c.Input)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Input == "" {
		result.Input = defaults.Input
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if len(result.SkillVocabulary) == 0 {
		result.SkillVocabulary = defaults.SkillVocabulary
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.SummaryMaxLines == 0 {
		result.SummaryMaxLines = defaults.SummaryMaxLines
	}
	if !result.UseLLM {
		result.UseLLM = defaults.UseLLM
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
