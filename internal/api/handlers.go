// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/newsrec/internal/cache"
	"github.com/tomtom215/newsrec/internal/newsapi"
	"github.com/tomtom215/newsrec/internal/recommend"
	"github.com/tomtom215/newsrec/internal/scrape"
	"github.com/tomtom215/newsrec/internal/summarize"
)

// Recommender ranks a batch of articles against a target.
type Recommender interface {
	Recommend(ctx context.Context, req recommend.Request) (*recommend.Response, error)
}

// Summarizer produces a short summary of free text.
type Summarizer interface {
	Summarize(ctx context.Context, text string) (*summarize.Result, error)
	Provider() string
	BreakerState() string
}

// NewsSource lists articles from a news provider.
type NewsSource interface {
	Everything(ctx context.Context, p newsapi.EverythingParams) (*newsapi.Response, error)
	TopHeadlines(ctx context.Context, p newsapi.HeadlinesParams) (*newsapi.Response, error)
	Configured() bool
	BreakerState() string
}

// ArticleFetcher downloads and extracts a single article.
type ArticleFetcher interface {
	Fetch(ctx context.Context, rawURL string) (*scrape.Result, error)
	BreakerState() string
}

// HandlerConfig holds request defaults and limits.
type HandlerConfig struct {
	Version string

	// MaxBodyBytes caps JSON request bodies.
	MaxBodyBytes int64

	// RecommendTimeout bounds a single recommendation request.
	RecommendTimeout time.Duration

	NewsDefaultQuery    string
	NewsDefaultCountry  string
	NewsDefaultPageSize int
}

// DefaultHandlerConfig returns the defaults used when a field is zero.
func DefaultHandlerConfig() HandlerConfig {
	return HandlerConfig{
		Version:             "dev",
		MaxBodyBytes:        10 << 20,
		RecommendTimeout:    10 * time.Second,
		NewsDefaultQuery:    "Science+Health+education",
		NewsDefaultCountry:  "us",
		NewsDefaultPageSize: 30,
	}
}

// Handler serves the newsrec HTTP API.
type Handler struct {
	cfg        HandlerConfig
	engine     Recommender
	summarizer Summarizer
	news       NewsSource
	scraper    ArticleFetcher
	cache      cache.Store
	startTime  time.Time
}

// Dependencies groups the collaborators a Handler calls. Any of them may be
// nil; the matching endpoints then answer 503.
type Dependencies struct {
	Engine     Recommender
	Summarizer Summarizer
	News       NewsSource
	Scraper    ArticleFetcher

	// Cache is pinged by the health endpoint.
	Cache cache.Store
}

// NewHandler creates a Handler. Zero fields in cfg take their defaults.
//
//nolint:gocritic // config passed by value for immutability
func NewHandler(cfg HandlerConfig, deps Dependencies) *Handler {
	def := DefaultHandlerConfig()
	if cfg.Version == "" {
		cfg.Version = def.Version
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = def.MaxBodyBytes
	}
	if cfg.RecommendTimeout <= 0 {
		cfg.RecommendTimeout = def.RecommendTimeout
	}
	if cfg.NewsDefaultQuery == "" {
		cfg.NewsDefaultQuery = def.NewsDefaultQuery
	}
	if cfg.NewsDefaultCountry == "" {
		cfg.NewsDefaultCountry = def.NewsDefaultCountry
	}
	if cfg.NewsDefaultPageSize <= 0 {
		cfg.NewsDefaultPageSize = def.NewsDefaultPageSize
	}

	return &Handler{
		cfg:        cfg,
		engine:     deps.Engine,
		summarizer: deps.Summarizer,
		news:       deps.News,
		scraper:    deps.Scraper,
		cache:      deps.Cache,
		startTime:  time.Now(),
	}
}

// Root answers GET / with a plain-text banner.
func (h *Handler) Root(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Backend is running ✅"))
}
