// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/jonathan/resume-screener/internal/scoring"
)

// Default values applied when neither the config file, the environment, nor
// CLI flags set them.
const (
	DefaultPort           = 8080
	DefaultWorkers        = 4
	DefaultMaxUploadBytes = 10 << 20 // per file
)

// Config represents the runtime configuration. It can be loaded from a JSON
// file, with environment variables taking precedence. All fields are
// optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	Port        int    `json:"port,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty selects the in-memory store

	// Workers bounds per-batch document concurrency.
	Workers int `json:"workers,omitempty"`
	// MaxUploadBytes caps the size of a single uploaded resume.
	MaxUploadBytes int64 `json:"max_upload_bytes,omitempty"`

	// Scoring policy; all three must be set together or not at all.
	SkillWeight        float64 `json:"skill_weight,omitempty"`
	KeywordWeight      float64 `json:"keyword_weight,omitempty"`
	CompletenessWeight float64 `json:"completeness_weight,omitempty"`

	Verbose bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// ApplyEnv overrides fields from environment variables. Intended to run
// after LoadConfig and before MergeWithDefaults, so the environment wins
// over the file but loses to explicit CLI flags.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv("DATABASE_URL"); v != "" {
		c.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid PORT %q: %w", v, err)
		}
		c.Port = port
	}
	if v := os.Getenv("SCREENER_WORKERS"); v != "" {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("config error: invalid SCREENER_WORKERS %q: %w", v, err)
		}
		c.Workers = workers
	}
	return nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be in [0, 65535]")
	}
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}

	// Weights are all-or-nothing: a partial policy silently reweighting the
	// other signals is almost never what the operator meant.
	set := c.SkillWeight != 0 || c.KeywordWeight != 0 || c.CompletenessWeight != 0
	if set {
		if err := c.Weights().Validate(); err != nil {
			return fmt.Errorf("config error: %w", err)
		}
	}
	return nil
}

// Weights returns the configured scoring policy, or the default policy when
// none was set.
func (c *Config) Weights() scoring.Weights {
	if c.SkillWeight == 0 && c.KeywordWeight == 0 && c.CompletenessWeight == 0 {
		return scoring.DefaultWeights()
	}
	return scoring.Weights{
		Skill:        c.SkillWeight,
		Keyword:      c.KeywordWeight,
		Completeness: c.CompletenessWeight,
	}
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.Port == 0 {
		result.Port = DefaultPort
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	if result.Workers == 0 {
		result.Workers = DefaultWorkers
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = DefaultMaxUploadBytes
	}
	if result.SkillWeight == 0 && result.KeywordWeight == 0 && result.CompletenessWeight == 0 {
		result.SkillWeight = defaults.SkillWeight
		result.KeywordWeight = defaults.KeywordWeight
		result.CompletenessWeight = defaults.CompletenessWeight
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
