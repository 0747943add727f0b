// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/newsrec/internal/breaker"
	"github.com/tomtom215/newsrec/internal/cache"
	"github.com/tomtom215/newsrec/internal/logging"
	"github.com/tomtom215/newsrec/internal/metrics"
)

// Result is a summary and how it was produced.
type Result struct {
	Summary  string `json:"summary"`
	Provider string `json:"provider"`
	Cached   bool   `json:"cached"`
}

// ServiceOptions configures a Service.
type ServiceOptions struct {
	// Cache stores results. nil disables caching.
	Cache cache.Store

	// CacheTTL is the lifetime of cached summaries.
	CacheTTL time.Duration

	// Timeout bounds one provider call. 0 means no extra bound.
	Timeout time.Duration

	// Breaker settings for the provider. nil uses breaker.DefaultSettings.
	Breaker *breaker.Settings

	Logger zerolog.Logger
}

// Service validates input and calls the provider behind a cache and a
// circuit breaker. It is safe for concurrent use.
type Service struct {
	provider Summarizer
	cache    *cache.Typed[Result]
	breaker  *breaker.Breaker[string]
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewService wraps provider.
//
//nolint:gocritic // options passed by value for immutability
func NewService(provider Summarizer, opts ServiceOptions) *Service {
	settings := breaker.DefaultSettings()
	if opts.Breaker != nil {
		settings = *opts.Breaker
	}
	settings.IsSuccessful = func(err error) bool {
		return err == nil || errors.Is(err, context.Canceled)
	}

	s := &Service{
		provider: provider,
		breaker:  breaker.New[string]("summarize-"+provider.Name(), settings),
		timeout:  opts.Timeout,
		logger:   opts.Logger.With().Str("component", "summarize").Str("provider", provider.Name()).Logger(),
	}
	if opts.Cache != nil {
		s.cache = cache.NewTyped[Result](opts.Cache, "summary", opts.CacheTTL)
	}
	return s
}

// Provider returns the provider name.
func (s *Service) Provider() string {
	return s.provider.Name()
}

// BreakerState reports the provider circuit state.
func (s *Service) BreakerState() string {
	return s.breaker.State()
}

// Summarize returns a summary of text.
func (s *Service) Summarize(ctx context.Context, text string) (*Result, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, ErrEmptyText
	}
	if _, disabled := s.provider.(Disabled); disabled {
		return nil, ErrNotConfigured
	}

	key := cache.GenerateKey("summary", []string{s.provider.Name(), text})
	if s.cache != nil {
		if res, ok := s.cache.Get(ctx, key); ok {
			res.Cached = true
			return &res, nil
		}
	}

	callCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	start := time.Now()
	summary, err := s.breaker.Execute(func() (string, error) {
		return s.provider.Summarize(callCtx, text)
	})
	metrics.RecordSummarize(s.provider.Name(), time.Since(start), err)

	logger := s.logger.With().Str("request_id", logging.RequestIDFromContext(ctx)).Logger()
	if err != nil {
		logger.Warn().Err(err).Int("words", wordCount(text)).Msg("summarization failed")
		if errors.Is(err, breaker.ErrCircuitOpen) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %w", ErrProviderFailed, err)
	}

	logger.Debug().
		Int("input_words", wordCount(text)).
		Int("summary_words", wordCount(summary)).
		Dur("duration", time.Since(start)).
		Msg("summary generated")

	res := Result{Summary: summary, Provider: s.provider.Name()}
	if s.cache != nil {
		s.cache.Set(ctx, key, res)
	}
	return &res, nil
}
