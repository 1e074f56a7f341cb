// Package config provides the server configuration for the documentation
// search service. Settings come from an optional TOML file with flag
// overrides applied by the entrypoint.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Settings contains all runtime configuration options.
type Settings struct {
	Port                string  `toml:"port"`                   // HTTP listen port
	CorpusPath          string  `toml:"corpus_path"`            // Path to a corpus JSON file; empty uses the embedded corpus
	WatchCorpus         bool    `toml:"watch_corpus"`           // Reload the corpus when the file changes (requires corpus_path)
	MaxRequestBodyBytes int64   `toml:"max_request_body_bytes"` // Request body size limit
	RateLimitPerSecond  float64 `toml:"rate_limit_per_second"`  // Token bucket refill rate; 0 disables rate limiting
	RateLimitBurst      int     `toml:"rate_limit_burst"`       // Token bucket size
}

// Load reads settings from the TOML file at path. An empty path yields the
// defaults.
func Load(path string) (Settings, error) {
	settings := Settings{}
	settings.ApplyDefaults()

	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to read config file %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file %q: %w", path, err)
	}

	settings.ApplyDefaults()
	return settings, nil
}

// ApplyDefaults fills in zero values with defaults.
func (settings *Settings) ApplyDefaults() {
	if settings.Port == "" {
		settings.Port = "5000"
	}
	if settings.MaxRequestBodyBytes == 0 {
		settings.MaxRequestBodyBytes = 1 << 20 // 1 MiB
	}
	if settings.RateLimitPerSecond > 0 && settings.RateLimitBurst == 0 {
		settings.RateLimitBurst = 20
	}
}

// Validate returns a list of configuration problems, empty when valid.
func (settings *Settings) Validate() []string {
	var problems []string

	if settings.Port == "" {
		problems = append(problems, "port cannot be empty")
	}
	if settings.MaxRequestBodyBytes < 0 {
		problems = append(problems, "max_request_body_bytes cannot be negative")
	}
	if settings.RateLimitPerSecond < 0 {
		problems = append(problems, "rate_limit_per_second cannot be negative")
	}
	if settings.RateLimitBurst < 0 {
		problems = append(problems, "rate_limit_burst cannot be negative")
	}
	if settings.WatchCorpus && settings.CorpusPath == "" {
		problems = append(problems, "watch_corpus requires corpus_path to be set")
	}

	return problems
}
