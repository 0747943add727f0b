// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

// Package config loads newsrec configuration from defaults, an optional YAML
// file and environment variables, in that order of precedence (lowest first).
//
// Environment Variables:
//   - HTTP_PORT, HTTP_HOST, HTTP_TIMEOUT, ENVIRONMENT
//   - LOG_LEVEL, LOG_FORMAT, LOG_CALLER
//   - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT, CORS_ORIGINS
//   - RECOMMEND_TOP_N, RECOMMEND_MAX_ARTICLES, RECOMMEND_EXCLUSION_MODE, ...
//   - SUMMARIZE_PROVIDER, GEMINI_API_KEY, GEMINI_MODEL, HF_API_KEY, ...
//   - NEWS_API_KEY, NEWS_API_URL, NEWS_API_DEFAULT_QUERY, ...
//   - CACHE_BACKEND, REDIS_URL, CACHE_MAX_ENTRIES
//
// See envMappings in koanf.go for the complete list.
package config

import "time"

// Config is the root configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Recommend RecommendConfig `koanf:"recommend"`
	Summarize SummarizeConfig `koanf:"summarize"`
	NewsAPI   NewsAPIConfig   `koanf:"newsapi"`
	Scrape    ScrapeConfig    `koanf:"scrape"`
	Cache     CacheConfig     `koanf:"cache"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging, production
}

// SecurityConfig holds rate limiting and CORS settings.
type SecurityConfig struct {
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
	CORSOrigins       []string      `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes file:line in every event.
	Caller bool `koanf:"caller"`
}

// RecommendConfig tunes the recommendation engine.
type RecommendConfig struct {
	// TopN is the number of recommendations returned when the request does not ask for a count.
	TopN int `koanf:"top_n"`

	// MaxTopN caps the count a request may ask for.
	MaxTopN int `koanf:"max_top_n"`

	// MaxArticles bounds the batch size accepted per request.
	MaxArticles int `koanf:"max_articles"`

	AuthorBonus   float64 `koanf:"author_bonus"`
	SourceBonus   float64 `koanf:"source_bonus"`
	RecencyWeight float64 `koanf:"recency_weight"`

	// ExclusionMode is "index" (drop the target row) or "positional"
	// (drop the first entry after sorting).
	ExclusionMode string `koanf:"exclusion_mode"`

	// DiversityLambda enables MMR diversity re-ranking when below 1.
	// 1 keeps pure relevance order.
	DiversityLambda float64 `koanf:"diversity_lambda"`
}

// SummarizeConfig selects and tunes the summarization provider.
type SummarizeConfig struct {
	// Provider is gemini, huggingface, or none.
	Provider string        `koanf:"provider"`
	Timeout  time.Duration `koanf:"timeout"`
	MaxWords int           `koanf:"max_words"`

	// ChunkWords splits inputs longer than this many words into chunks that
	// are summarized in parallel. 0 disables chunking.
	ChunkWords     int `koanf:"chunk_words"`
	MaxConcurrency int `koanf:"max_concurrency"`

	CacheTTL time.Duration `koanf:"cache_ttl"`

	Gemini      GeminiConfig      `koanf:"gemini"`
	HuggingFace HuggingFaceConfig `koanf:"huggingface"`
}

// GeminiConfig holds Gemini API settings.
type GeminiConfig struct {
	APIKey string `koanf:"api_key"`
	Model  string `koanf:"model"`
}

// HuggingFaceConfig holds hosted inference settings.
type HuggingFaceConfig struct {
	APIKey            string  `koanf:"api_key"`
	URL               string  `koanf:"url"`
	MaxLength         int     `koanf:"max_length"`
	MinLength         int     `koanf:"min_length"`
	RequestsPerSecond float64 `koanf:"requests_per_second"`
}

// NewsAPIConfig holds newsapi.org settings.
type NewsAPIConfig struct {
	APIKey            string        `koanf:"api_key"`
	BaseURL           string        `koanf:"base_url"`
	Timeout           time.Duration `koanf:"timeout"`
	DefaultQuery      string        `koanf:"default_query"`
	DefaultCountry    string        `koanf:"default_country"`
	DefaultPageSize   int           `koanf:"default_page_size"`
	RequestsPerSecond float64       `koanf:"requests_per_second"`
	CacheTTL          time.Duration `koanf:"cache_ttl"`
}

// ScrapeConfig holds article extraction settings.
type ScrapeConfig struct {
	Timeout      time.Duration `koanf:"timeout"`
	MaxBodyBytes int64         `koanf:"max_body_bytes"`
	UserAgent    string        `koanf:"user_agent"`
}

// CacheConfig selects the summary cache backend.
type CacheConfig struct {
	// Backend is memory or redis.
	Backend    string `koanf:"backend"`
	MaxEntries int    `koanf:"max_entries"`
	RedisURL   string `koanf:"redis_url"`
	KeyPrefix  string `koanf:"key_prefix"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
