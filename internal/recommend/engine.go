// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Engine runs the recommendation pipeline. It holds no per-request state and
// is safe for concurrent use.
type Engine struct {
	config *Config
	logger zerolog.Logger

	rerankers []Reranker
	rrMu      sync.RWMutex

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
	errorCount    atomic.Int64
}

// Stats is a snapshot of engine counters.
type Stats struct {
	Requests int64 `json:"requests"`
	NotFound int64 `json:"not_found"`
	Errors   int64 `json:"errors"`
}

// NewEngine creates a recommendation engine. A nil config uses DefaultConfig.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &Engine{
		config: cfg.Clone(),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() *Config {
	return e.config.Clone()
}

// RegisterReranker appends a reranker to the post-processing chain.
func (e *Engine) RegisterReranker(rr Reranker) {
	e.rrMu.Lock()
	defer e.rrMu.Unlock()
	e.rerankers = append(e.rerankers, rr)
	e.logger.Info().Str("reranker", rr.Name()).Msg("registered reranker")
}

// Stats returns the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests: e.requestCount.Load(),
		NotFound: e.notFoundCount.Load(),
		Errors:   e.errorCount.Load(),
	}
}

// Recommend returns up to TopN articles related to the article titled
// req.Title within req.Articles.
//
// It returns ErrMissingData when the batch or title is empty, and
// ErrArticleNotFound when no normalized article matches the title.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if len(req.Articles) == 0 || strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingData
	}
	if e.config.MaxArticles > 0 && len(req.Articles) > e.config.MaxArticles {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("%w: batch of %d articles exceeds limit of %d",
			ErrBatchTooLarge, len(req.Articles), e.config.MaxArticles)
	}

	req = e.prepareRequest(req)
	logger := e.logger.With().Str("request_id", req.RequestID).Logger()

	articles := Normalize(req.Articles)
	features := BuildFeatures(articles)
	logger.Debug().
		Int("received", len(req.Articles)).
		Int("normalized", len(articles)).
		Msg("batch normalized")

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	vectorizer := NewVectorizer(nil)
	vectors := vectorizer.FitTransform(features.Text)
	sim := CosineSimilarity(vectors, len(articles))

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	idx := FindTarget(articles, req.Title)
	if idx < 0 {
		e.notFoundCount.Add(1)
		logger.Debug().Str("title", req.Title).Msg("target article not found")
		return nil, ErrArticleNotFound
	}

	candidates := Rank(articles, features, sim, idx, e.config.Weights, e.config.Exclusion)
	candidates, applied := e.applyRerankers(ctx, candidates, sim, req.TopN)
	if len(candidates) > req.TopN {
		candidates = candidates[:req.TopN]
	}

	recs := make([]Recommendation, len(candidates))
	for i := range candidates {
		recs[i] = toRecommendation(candidates[i], features)
	}

	resp := &Response{
		Recommendations: recs,
		Metadata: ResponseMetadata{
			RequestID:      req.RequestID,
			Received:       len(req.Articles),
			Normalized:     len(articles),
			VocabularySize: vectorizer.VocabularySize(),
			TargetIndex:    idx,
			Rerankers:      applied,
			LatencyMS:      time.Since(start).Milliseconds(),
			Timestamp:      time.Now(),
		},
	}

	logger.Debug().
		Int("target", idx).
		Int("vocabulary", vectorizer.VocabularySize()).
		Int("returned", len(recs)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if req.TopN <= 0 {
		req.TopN = e.config.DefaultTopN
	}
	if req.TopN > e.config.MaxTopN {
		req.TopN = e.config.MaxTopN
	}
	return req
}

func (e *Engine) applyRerankers(ctx context.Context, candidates []Candidate, sim *SimilarityMatrix, k int) ([]Candidate, []string) {
	e.rrMu.RLock()
	rerankers := make([]Reranker, len(e.rerankers))
	copy(rerankers, e.rerankers)
	e.rrMu.RUnlock()

	applied := make([]string, 0, len(rerankers))
	for _, rr := range rerankers {
		candidates = rr.Rerank(ctx, candidates, sim.At, k)
		applied = append(applied, rr.Name())
	}
	return candidates, applied
}
