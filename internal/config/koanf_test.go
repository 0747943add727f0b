// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// isolateEnv points CONFIG_PATH at a missing file and clears every mapped
// variable so the host environment cannot leak into a test.
func isolateEnv(t *testing.T) {
	t.Helper()
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	for key := range envMappings {
		t.Setenv(strings.ToUpper(key), "")
		os.Unsetenv(strings.ToUpper(key))
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Recommend.TopN != 3 {
		t.Errorf("Recommend.TopN = %d, want 3", cfg.Recommend.TopN)
	}
	if cfg.Recommend.AuthorBonus != 0.10 {
		t.Errorf("Recommend.AuthorBonus = %v, want 0.10", cfg.Recommend.AuthorBonus)
	}
	if cfg.Recommend.SourceBonus != 0.02 {
		t.Errorf("Recommend.SourceBonus = %v, want 0.02", cfg.Recommend.SourceBonus)
	}
	if cfg.Recommend.RecencyWeight != 0.05 {
		t.Errorf("Recommend.RecencyWeight = %v, want 0.05", cfg.Recommend.RecencyWeight)
	}
	if cfg.Recommend.ExclusionMode != "index" {
		t.Errorf("Recommend.ExclusionMode = %q, want index", cfg.Recommend.ExclusionMode)
	}
	if cfg.Summarize.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Summarize.Gemini.Model = %q, want gemini-2.5-flash", cfg.Summarize.Gemini.Model)
	}
	if cfg.Summarize.MaxWords != 130 {
		t.Errorf("Summarize.MaxWords = %d, want 130", cfg.Summarize.MaxWords)
	}
	if cfg.NewsAPI.DefaultQuery != "Science+Health+education" {
		t.Errorf("NewsAPI.DefaultQuery = %q", cfg.NewsAPI.DefaultQuery)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaultConfig().Validate() = %v, want nil", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"PORT", "server.port"},
		{"LOG_LEVEL", "logging.level"},
		{"GEMINI_API_KEY", "summarize.gemini.api_key"},
		{"HF_API_KEY", "summarize.huggingface.api_key"},
		{"NEWS_API_KEY", "newsapi.api_key"},
		{"RECOMMEND_EXCLUSION_MODE", "recommend.exclusion_mode"},
		{"REDIS_URL", "cache.redis_url"},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			if got := envTransformFunc(tt.env); got != tt.want {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
			}
		})
	}
}

func TestLoadEnvVars(t *testing.T) {
	isolateEnv(t)
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("RECOMMEND_TOP_N", "5")
	t.Setenv("SUMMARIZE_TIMEOUT", "45s")
	t.Setenv("GEMINI_API_KEY", "gemini-key")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Recommend.TopN != 5 {
		t.Errorf("Recommend.TopN = %d, want 5", cfg.Recommend.TopN)
	}
	if cfg.Summarize.Timeout != 45*time.Second {
		t.Errorf("Summarize.Timeout = %v, want 45s", cfg.Summarize.Timeout)
	}
	if cfg.Summarize.Gemini.APIKey != "gemini-key" {
		t.Errorf("Summarize.Gemini.APIKey = %q, want gemini-key", cfg.Summarize.Gemini.APIKey)
	}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[1] != "https://b.example" {
		t.Errorf("Security.CORSOrigins = %v, want two trimmed origins", cfg.Security.CORSOrigins)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0 (default)", cfg.Server.Host)
	}
}

func TestLoadConfigFile(t *testing.T) {
	isolateEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `
server:
  port: 8888
recommend:
  top_n: 4
  exclusion_mode: positional
summarize:
  provider: huggingface
cache:
  backend: redis
  redis_url: redis://localhost:6379/0
`
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Server.Port != 8888 {
		t.Errorf("Server.Port = %d, want 8888", cfg.Server.Port)
	}
	if cfg.Recommend.TopN != 4 {
		t.Errorf("Recommend.TopN = %d, want 4", cfg.Recommend.TopN)
	}
	if cfg.Recommend.ExclusionMode != "positional" {
		t.Errorf("Recommend.ExclusionMode = %q, want positional", cfg.Recommend.ExclusionMode)
	}
	if cfg.Summarize.Provider != "huggingface" {
		t.Errorf("Summarize.Provider = %q, want huggingface", cfg.Summarize.Provider)
	}
	if cfg.Cache.Backend != "redis" {
		t.Errorf("Cache.Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Summarize.HuggingFace.MaxLength != 130 {
		t.Errorf("Summarize.HuggingFace.MaxLength = %d, want 130 (default)", cfg.Summarize.HuggingFace.MaxLength)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	isolateEnv(t)

	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("logging:\n  level: warn\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, configPath)
	t.Setenv("LOG_LEVEL", "error")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Logging.Level != "error" {
		t.Errorf("Logging.Level = %q, want error (env beats file)", cfg.Logging.Level)
	}
}

func TestLoadValidationFailure(t *testing.T) {
	isolateEnv(t)
	t.Setenv("SUMMARIZE_PROVIDER", "openai")

	_, err := Load()
	if err == nil {
		t.Fatal("Load() error = nil, want validation error")
	}
	if !strings.Contains(err.Error(), "SUMMARIZE_PROVIDER") {
		t.Errorf("error = %v, want mention of SUMMARIZE_PROVIDER", err)
	}
}
