// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// DefaultConfigPaths lists config file locations in priority order.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/newsrec/config.yaml",
	"/etc/newsrec/config.yml",
}

// ConfigPathEnvVar overrides the config file location.
const ConfigPathEnvVar = "CONFIG_PATH"

func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port:            5000,
			Host:            "0.0.0.0",
			Timeout:         30 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			Environment:     "development",
		},
		Security: SecurityConfig{
			RateLimitReqs:     100,
			RateLimitWindow:   time.Minute,
			RateLimitDisabled: false,
			CORSOrigins:       []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Recommend: RecommendConfig{
			TopN:            3,
			MaxTopN:         50,
			MaxArticles:     500,
			AuthorBonus:     0.10,
			SourceBonus:     0.02,
			RecencyWeight:   0.05,
			ExclusionMode:   "index",
			DiversityLambda: 1.0,
		},
		Summarize: SummarizeConfig{
			Provider:       "gemini",
			Timeout:        30 * time.Second,
			MaxWords:       130,
			ChunkWords:     0,
			MaxConcurrency: 4,
			CacheTTL:       time.Hour,
			Gemini: GeminiConfig{
				Model: "gemini-2.5-flash",
			},
			HuggingFace: HuggingFaceConfig{
				URL:               "https://api-inference.huggingface.co/models/sshleifer/distilbart-cnn-12-6",
				MaxLength:         130,
				MinLength:         60,
				RequestsPerSecond: 5,
			},
		},
		NewsAPI: NewsAPIConfig{
			BaseURL:           "https://newsapi.org",
			Timeout:           10 * time.Second,
			DefaultQuery:      "Science+Health+education",
			DefaultCountry:    "us",
			DefaultPageSize:   30,
			RequestsPerSecond: 2,
			CacheTTL:          5 * time.Minute,
		},
		Scrape: ScrapeConfig{
			Timeout:      15 * time.Second,
			MaxBodyBytes: 2 << 20,
			UserAgent:    "newsrec/1.0 (+https://github.com/tomtom215/newsrec)",
		},
		Cache: CacheConfig{
			Backend:    "memory",
			MaxEntries: 1000,
			RedisURL:   "",
			KeyPrefix:  "newsrec:",
		},
	}
}

// Load reads configuration from defaults, the config file and the
// environment, then validates it.
func Load() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if configPath := findConfigFile(); configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
	}

	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := processSliceFields(k); err != nil {
		return nil, fmt.Errorf("failed to process slice fields: %w", err)
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// findConfigFile returns the first existing config file, or "".
func findConfigFile() string {
	if envPath := os.Getenv(ConfigPathEnvVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath
		}
	}
	for _, path := range DefaultConfigPaths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// sliceConfigPaths are split on commas when they arrive as strings from the environment.
var sliceConfigPaths = []string{
	"security.cors_origins",
}

func processSliceFields(k *koanf.Koanf) error {
	for _, path := range sliceConfigPaths {
		strVal, ok := k.Get(path).(string)
		if !ok || strVal == "" {
			continue
		}
		parts := strings.Split(strVal, ",")
		trimmed := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				trimmed = append(trimmed, p)
			}
		}
		if len(trimmed) == 0 {
			continue
		}
		if err := k.Set(path, trimmed); err != nil {
			return fmt.Errorf("failed to set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lower-cased environment variable names to koanf paths.
// Unmapped variables are ignored.
var envMappings = map[string]string{
	// Server
	"http_port":        "server.port",
	"port":             "server.port",
	"http_host":        "server.host",
	"http_timeout":     "server.timeout",
	"shutdown_timeout": "server.shutdown_timeout",
	"environment":      "server.environment",

	// Security
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
	"cors_origins":        "security.cors_origins",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Recommendation engine
	"recommend_top_n":            "recommend.top_n",
	"recommend_max_top_n":        "recommend.max_top_n",
	"recommend_max_articles":     "recommend.max_articles",
	"recommend_author_bonus":     "recommend.author_bonus",
	"recommend_source_bonus":     "recommend.source_bonus",
	"recommend_recency_weight":   "recommend.recency_weight",
	"recommend_exclusion_mode":   "recommend.exclusion_mode",
	"recommend_diversity_lambda": "recommend.diversity_lambda",

	// Summarization
	"summarize_provider":        "summarize.provider",
	"summarize_timeout":         "summarize.timeout",
	"summarize_max_words":       "summarize.max_words",
	"summarize_chunk_words":     "summarize.chunk_words",
	"summarize_max_concurrency": "summarize.max_concurrency",
	"summarize_cache_ttl":       "summarize.cache_ttl",
	"gemini_api_key":            "summarize.gemini.api_key",
	"gemini_model":              "summarize.gemini.model",
	"hf_api_key":                "summarize.huggingface.api_key",
	"hf_api_url":                "summarize.huggingface.url",
	"hf_max_length":             "summarize.huggingface.max_length",
	"hf_min_length":             "summarize.huggingface.min_length",
	"hf_requests_per_second":    "summarize.huggingface.requests_per_second",

	// NewsAPI
	"news_api_key":                 "newsapi.api_key",
	"news_api_url":                 "newsapi.base_url",
	"news_api_timeout":             "newsapi.timeout",
	"news_api_default_query":       "newsapi.default_query",
	"news_api_default_country":     "newsapi.default_country",
	"news_api_default_page_size":   "newsapi.default_page_size",
	"news_api_requests_per_second": "newsapi.requests_per_second",
	"news_api_cache_ttl":           "newsapi.cache_ttl",

	// Scrape
	"scrape_timeout":        "scrape.timeout",
	"scrape_max_body_bytes": "scrape.max_body_bytes",
	"scrape_user_agent":     "scrape.user_agent",

	// Cache
	"cache_backend":     "cache.backend",
	"cache_max_entries": "cache.max_entries",
	"cache_key_prefix":  "cache.key_prefix",
	"redis_url":         "cache.redis_url",
}

// envTransformFunc maps HTTP_PORT -> server.port and drops unknown keys.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
