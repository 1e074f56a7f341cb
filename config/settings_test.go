package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	settings, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") failed: %v", err)
	}

	if settings.Port != "5000" {
		t.Errorf("default port = %q, want %q", settings.Port, "5000")
	}
	if settings.MaxRequestBodyBytes != 1<<20 {
		t.Errorf("default body limit = %d, want %d", settings.MaxRequestBodyBytes, 1<<20)
	}
	if settings.CorpusPath != "" {
		t.Errorf("default corpus path should be empty, got %q", settings.CorpusPath)
	}
	if settings.RateLimitPerSecond != 0 {
		t.Errorf("rate limiting should be disabled by default, got %v", settings.RateLimitPerSecond)
	}
}

func TestLoadFromTOMLFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
port = "8080"
corpus_path = "/data/corpus.json"
watch_corpus = true
rate_limit_per_second = 5.0
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	settings, err := Load(path)
	if err != nil {
		t.Fatalf("Load(%q) failed: %v", path, err)
	}

	if settings.Port != "8080" {
		t.Errorf("port = %q, want %q", settings.Port, "8080")
	}
	if settings.CorpusPath != "/data/corpus.json" {
		t.Errorf("corpus path = %q, want %q", settings.CorpusPath, "/data/corpus.json")
	}
	if !settings.WatchCorpus {
		t.Error("watch_corpus should be true")
	}
	// Defaults fill in around explicit values: a configured rate without a
	// burst picks up the default bucket size.
	if settings.RateLimitBurst != 20 {
		t.Errorf("rate limit burst = %d, want default 20", settings.RateLimitBurst)
	}
	if settings.MaxRequestBodyBytes != 1<<20 {
		t.Errorf("body limit = %d, want default %d", settings.MaxRequestBodyBytes, 1<<20)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestLoadInvalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("port = [unclosed"), 0o644); err != nil {
		t.Fatalf("failed to write temp config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected an error for invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name         string
		settings     Settings
		wantProblems int
	}{
		{
			name:         "valid defaults",
			settings:     Settings{Port: "5000", MaxRequestBodyBytes: 1 << 20},
			wantProblems: 0,
		},
		{
			name:         "empty port",
			settings:     Settings{MaxRequestBodyBytes: 1 << 20},
			wantProblems: 1,
		},
		{
			name:         "negative body limit",
			settings:     Settings{Port: "5000", MaxRequestBodyBytes: -1},
			wantProblems: 1,
		},
		{
			name:         "negative rate settings",
			settings:     Settings{Port: "5000", MaxRequestBodyBytes: 1, RateLimitPerSecond: -1, RateLimitBurst: -1},
			wantProblems: 2,
		},
		{
			name:         "watch without corpus path",
			settings:     Settings{Port: "5000", MaxRequestBodyBytes: 1, WatchCorpus: true},
			wantProblems: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			problems := tt.settings.Validate()
			if len(problems) != tt.wantProblems {
				t.Errorf("Validate() returned %d problems %v, want %d", len(problems), problems, tt.wantProblems)
			}
		})
	}
}
