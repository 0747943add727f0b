// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package config

import (
	"fmt"
	"net/url"
	"strings"
)

var (
	validLogLevels = map[string]bool{
		"trace": true, "debug": true, "info": true, "warn": true, "error": true,
	}
	validLogFormats = map[string]bool{
		"json": true, "console": true,
	}
	validEnvironments = map[string]bool{
		"development": true, "staging": true, "production": true,
	}
	validProviders = map[string]bool{
		"gemini": true, "huggingface": true, "none": true,
	}
	validCacheBackends = map[string]bool{
		"memory": true, "redis": true,
	}
	validExclusionModes = map[string]bool{
		"index": true, "positional": true,
	}
)

// Validate checks that the configuration is complete and consistent.
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateServer,
		c.validateSecurity,
		c.validateLogging,
		c.validateRecommend,
		c.validateSummarize,
		c.validateNewsAPI,
		c.validateScrape,
		c.validateCache,
	}
	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %v", c.Server.Timeout)
	}
	if !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		if c.IsProduction() {
			return fmt.Errorf("DISABLE_RATE_LIMIT is not allowed in production")
		}
		return nil
	}
	if c.Security.RateLimitReqs < 1 || c.Security.RateLimitReqs > 100000 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between 1 and 100000, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.TopN < 1 {
		return fmt.Errorf("recommend.top_n must be positive, got %d", r.TopN)
	}
	if r.MaxTopN < r.TopN {
		return fmt.Errorf("recommend.max_top_n (%d) must be >= recommend.top_n (%d)", r.MaxTopN, r.TopN)
	}
	if r.MaxArticles < 2 {
		return fmt.Errorf("recommend.max_articles must be at least 2, got %d", r.MaxArticles)
	}
	if r.AuthorBonus < 0 || r.SourceBonus < 0 || r.RecencyWeight < 0 {
		return fmt.Errorf("recommend bonus weights must be non-negative")
	}
	if !validExclusionModes[r.ExclusionMode] {
		return fmt.Errorf("RECOMMEND_EXCLUSION_MODE must be one of: index, positional")
	}
	if r.DiversityLambda < 0 || r.DiversityLambda > 1 {
		return fmt.Errorf("recommend.diversity_lambda must be between 0 and 1, got %v", r.DiversityLambda)
	}
	return nil
}

func (c *Config) validateSummarize() error {
	s := c.Summarize
	if !validProviders[s.Provider] {
		return fmt.Errorf("SUMMARIZE_PROVIDER must be one of: gemini, huggingface, none")
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("SUMMARIZE_TIMEOUT must be positive, got %v", s.Timeout)
	}
	if s.MaxWords < 1 {
		return fmt.Errorf("SUMMARIZE_MAX_WORDS must be positive, got %d", s.MaxWords)
	}
	if s.ChunkWords < 0 {
		return fmt.Errorf("SUMMARIZE_CHUNK_WORDS must not be negative, got %d", s.ChunkWords)
	}
	if s.MaxConcurrency < 1 {
		return fmt.Errorf("SUMMARIZE_MAX_CONCURRENCY must be positive, got %d", s.MaxConcurrency)
	}
	if s.Provider == "gemini" && s.Gemini.Model == "" {
		return fmt.Errorf("GEMINI_MODEL is required when SUMMARIZE_PROVIDER=gemini")
	}
	if s.Provider == "huggingface" {
		if err := validateHTTPURL(s.HuggingFace.URL, "HF_API_URL", true); err != nil {
			return err
		}
		if s.HuggingFace.MinLength < 0 || s.HuggingFace.MaxLength < s.HuggingFace.MinLength {
			return fmt.Errorf("HF_MIN_LENGTH (%d) must be between 0 and HF_MAX_LENGTH (%d)",
				s.HuggingFace.MinLength, s.HuggingFace.MaxLength)
		}
	}
	return nil
}

func (c *Config) validateNewsAPI() error {
	n := c.NewsAPI
	if err := validateHTTPURL(n.BaseURL, "NEWS_API_URL", false); err != nil {
		return err
	}
	if n.Timeout <= 0 {
		return fmt.Errorf("NEWS_API_TIMEOUT must be positive, got %v", n.Timeout)
	}
	if n.DefaultPageSize < 1 || n.DefaultPageSize > 100 {
		return fmt.Errorf("NEWS_API_DEFAULT_PAGE_SIZE must be between 1 and 100, got %d", n.DefaultPageSize)
	}
	if n.RequestsPerSecond <= 0 {
		return fmt.Errorf("NEWS_API_REQUESTS_PER_SECOND must be positive, got %v", n.RequestsPerSecond)
	}
	return nil
}

func (c *Config) validateScrape() error {
	if c.Scrape.Timeout <= 0 {
		return fmt.Errorf("SCRAPE_TIMEOUT must be positive, got %v", c.Scrape.Timeout)
	}
	if c.Scrape.MaxBodyBytes < 1024 {
		return fmt.Errorf("SCRAPE_MAX_BODY_BYTES must be at least 1024, got %d", c.Scrape.MaxBodyBytes)
	}
	return nil
}

func (c *Config) validateCache() error {
	if !validCacheBackends[c.Cache.Backend] {
		return fmt.Errorf("CACHE_BACKEND must be one of: memory, redis")
	}
	if c.Cache.Backend == "redis" && c.Cache.RedisURL == "" {
		return fmt.Errorf("REDIS_URL is required when CACHE_BACKEND=redis")
	}
	if c.Cache.Backend == "memory" && c.Cache.MaxEntries < 1 {
		return fmt.Errorf("CACHE_MAX_ENTRIES must be positive, got %d", c.Cache.MaxEntries)
	}
	return nil
}

// validateHTTPURL checks scheme and host. Paths are rejected unless allowPath is set.
func validateHTTPURL(rawURL, fieldName string, allowPath bool) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%s failed to parse URL: %w", fieldName, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%s scheme must be http or https, got: %q", fieldName, parsed.Scheme)
	}
	if parsed.Host == "" {
		return fmt.Errorf("%s host is required", fieldName)
	}
	if !allowPath && strings.Trim(parsed.Path, "/") != "" {
		return fmt.Errorf("%s should be base URL only, remove path: %s", fieldName, parsed.Path)
	}
	return nil
}
