// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsrec/internal/cache"
	"github.com/tomtom215/newsrec/internal/config"
	"github.com/tomtom215/newsrec/internal/summarize"
)

// newProvider builds the configured summarization backend. A provider whose
// credentials are missing degrades to summarize.Disabled.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func newProvider(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (summarize.Summarizer, error) {
	sc := cfg.Summarize
	var provider summarize.Summarizer

	switch sc.Provider {
	case "gemini":
		g, err := summarize.NewGemini(ctx, sc.Gemini.APIKey, sc.Gemini.Model, sc.MaxWords)
		if errors.Is(err, summarize.ErrNotConfigured) {
			logger.Warn().Msg("GEMINI_API_KEY not set, summarization disabled")
			return summarize.Disabled{}, nil
		}
		if err != nil {
			return nil, err
		}
		provider = g
	case "huggingface":
		if sc.HuggingFace.APIKey == "" {
			logger.Warn().Msg("HUGGINGFACE_API_KEY not set, summarization disabled")
			return summarize.Disabled{}, nil
		}
		provider = summarize.NewHuggingFace(summarize.HuggingFaceOptions{
			URL:               sc.HuggingFace.URL,
			APIKey:            sc.HuggingFace.APIKey,
			MaxLength:         sc.HuggingFace.MaxLength,
			MinLength:         sc.HuggingFace.MinLength,
			RequestsPerSecond: sc.HuggingFace.RequestsPerSecond,
			HTTPClient:        &http.Client{Timeout: sc.Timeout},
		})
	case "none", "":
		return summarize.Disabled{}, nil
	default:
		return nil, fmt.Errorf("unknown summarize provider %q", sc.Provider)
	}

	if sc.ChunkWords > 0 {
		provider = summarize.NewChunked(provider, sc.ChunkWords, sc.MaxConcurrency)
	}
	return provider, nil
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initSummarizer(ctx context.Context, cfg *config.Config, store cache.Store, logger zerolog.Logger) (*summarize.Service, error) {
	provider, err := newProvider(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	svc := summarize.NewService(provider, summarize.ServiceOptions{
		Cache:    store,
		CacheTTL: cfg.Summarize.CacheTTL,
		Timeout:  cfg.Summarize.Timeout,
		Logger:   logger,
	})
	logger.Info().
		Str("provider", svc.Provider()).
		Int("chunk_words", cfg.Summarize.ChunkWords).
		Dur("cache_ttl", cfg.Summarize.CacheTTL).
		Msg("summarizer ready")
	return svc, nil
}
