// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func article(title, text, author, source, published string) map[string]any {
	return map[string]any{
		"title":       title,
		"description": text,
		"content":     text,
		"author":      author,
		"source":      map[string]any{"id": nil, "name": source},
		"publishedAt": published,
		"url":         "https://example.com/" + strings.ReplaceAll(strings.ToLower(title), " ", "-"),
		"urlToImage":  "https://example.com/img.jpg",
	}
}

func sampleBatch() []map[string]any {
	return []map[string]any{
		article("Mars Rover Finds Ice", "NASA rover discovers water ice beneath the Martian surface", "Jane Doe", "Space Daily", "2024-05-10T08:00:00Z"),
		article("Stocks Rally", "Markets climb after strong quarterly earnings reports", "John Roe", "Finance Wire", "2024-05-09T08:00:00Z"),
		article("Martian Ice Confirmed", "NASA confirms rover found water ice beneath Martian soil", "Jane Doe", "Science Post", "2024-05-08T08:00:00Z"),
		article("Election Results", "Voters turn out in record numbers for regional election", "Ann Poe", "Civic News", "not-a-date"),
		article("Rover Battery Update", "Engineers report the Mars rover battery remains healthy", "Sam Loe", "Space Daily", "2024-05-01T08:00:00Z"),
		{"title": "Dropped", "content": "no description"},
	}
}

func newTestEngine(t *testing.T, cfg *Config) *Engine {
	t.Helper()
	engine, err := NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

func TestNewEngineRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.DefaultTopN = 0
	if _, err := NewEngine(cfg, zerolog.Nop()); err == nil {
		t.Error("NewEngine() error = nil, want invalid config error")
	}
}

func TestRecommendMissingData(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	tests := []struct {
		name string
		req  Request
	}{
		{"no articles", Request{Title: "Mars Rover Finds Ice"}},
		{"no title", Request{Articles: sampleBatch()}},
		{"blank title", Request{Articles: sampleBatch(), Title: "   "}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			resp, err := engine.Recommend(context.Background(), tt.req)
			if !errors.Is(err, ErrMissingData) {
				t.Errorf("err = %v, want ErrMissingData", err)
			}
			if resp != nil {
				t.Errorf("resp = %+v, want nil", resp)
			}
		})
	}
}

func TestRecommendNotFound(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	resp, err := engine.Recommend(context.Background(), Request{
		Articles: sampleBatch(),
		Title:    "Dropped",
	})
	if !errors.Is(err, ErrArticleNotFound) {
		t.Fatalf("err = %v, want ErrArticleNotFound", err)
	}
	if resp != nil {
		t.Errorf("resp = %+v, want nil", resp)
	}
	if engine.Stats().NotFound != 1 {
		t.Errorf("Stats().NotFound = %d, want 1", engine.Stats().NotFound)
	}
}

func TestRecommendEndToEnd(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	resp, err := engine.Recommend(context.Background(), Request{
		Articles:  sampleBatch(),
		Title:     "  mars ROVER finds ice  ",
		RequestID: "req-1",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	recs := resp.Recommendations
	if len(recs) != 3 {
		t.Fatalf("len(recs) = %d, want 3", len(recs))
	}
	if recs[0].Title != "martian ice confirmed" {
		t.Errorf("top recommendation = %q, want martian ice confirmed", recs[0].Title)
	}
	for _, r := range recs {
		if r.Title == "mars rover finds ice" {
			t.Error("target article returned in its own recommendations")
		}
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Errorf("scores not descending: %v then %v", recs[i-1].Score, recs[i].Score)
		}
	}

	top := recs[0]
	if top.PublishedAt != "2024-05-08" {
		t.Errorf("PublishedAt = %q, want 2024-05-08", top.PublishedAt)
	}
	if top.Source != "Science Post" || top.Author != "Jane Doe" {
		t.Errorf("top = %+v", top)
	}
	if top.URL != "https://example.com/martian-ice-confirmed" {
		t.Errorf("URL = %q", top.URL)
	}

	md := resp.Metadata
	if md.RequestID != "req-1" || md.Received != 6 || md.Normalized != 5 || md.TargetIndex != 0 {
		t.Errorf("metadata = %+v", md)
	}
	if md.VocabularySize == 0 {
		t.Error("VocabularySize = 0")
	}
}

func TestRecommendInvalidDateOutput(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	resp, err := engine.Recommend(context.Background(), Request{
		Articles: sampleBatch(),
		Title:    "Stocks Rally",
		TopN:     10,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 4 {
		t.Fatalf("len = %d, want 4 (every other surviving article)", len(resp.Recommendations))
	}
	found := false
	for _, r := range resp.Recommendations {
		if r.Title == "election results" {
			found = true
			if r.PublishedAt != InvalidDate {
				t.Errorf("PublishedAt = %q, want %q", r.PublishedAt, InvalidDate)
			}
		}
	}
	if !found {
		t.Error("election results missing from recommendations")
	}
}

func TestRecommendTopNBound(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxTopN = 4
	engine := newTestEngine(t, cfg)

	tests := []struct {
		topN int
		want int
	}{
		{0, 3},
		{1, 1},
		{2, 2},
		{100, 4},
	}
	for _, tt := range tests {
		resp, err := engine.Recommend(context.Background(), Request{
			Articles: sampleBatch(),
			Title:    "Stocks Rally",
			TopN:     tt.topN,
		})
		if err != nil {
			t.Fatalf("Recommend(topN=%d) error = %v", tt.topN, err)
		}
		if got := len(resp.Recommendations); got != tt.want {
			t.Errorf("Recommend(topN=%d) returned %d, want %d", tt.topN, got, tt.want)
		}
	}
}

func TestRecommendFewerCandidates(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	resp, err := engine.Recommend(context.Background(), Request{
		Articles: sampleBatch()[:2],
		Title:    "Stocks Rally",
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Recommendations) != 1 {
		t.Errorf("len = %d, want 1", len(resp.Recommendations))
	}

	single, err := engine.Recommend(context.Background(), Request{
		Articles: sampleBatch()[:1],
		Title:    "Mars Rover Finds Ice",
	})
	if err != nil {
		t.Fatalf("Recommend(single) error = %v", err)
	}
	if len(single.Recommendations) != 0 {
		t.Errorf("single-article batch returned %d recommendations", len(single.Recommendations))
	}
}

func TestRecommendBatchTooLarge(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.MaxArticles = 3
	engine := newTestEngine(t, cfg)

	_, err := engine.Recommend(context.Background(), Request{Articles: sampleBatch(), Title: "Stocks Rally"})
	if !errors.Is(err, ErrBatchTooLarge) {
		t.Errorf("err = %v, want ErrBatchTooLarge", err)
	}
}

func TestRecommendCancelledContext(t *testing.T) {
	t.Parallel()

	engine := newTestEngine(t, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := engine.Recommend(ctx, Request{Articles: sampleBatch(), Title: "Stocks Rally"})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}

type reverseReranker struct{}

func (reverseReranker) Name() string { return "reverse" }

func (reverseReranker) Rerank(_ context.Context, c []Candidate, _ SimilarityFunc, k int) []Candidate {
	out := make([]Candidate, 0, len(c))
	for i := len(c) - 1; i >= 0; i-- {
		out = append(out, c[i])
	}
	return out
}

func TestRecommendAppliesRerankers(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	engine, err := NewEngine(nil, zerolog.New(&buf))
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	engine.RegisterReranker(reverseReranker{})

	resp, err := engine.Recommend(context.Background(), Request{
		Articles: sampleBatch(),
		Title:    "Mars Rover Finds Ice",
		TopN:     1,
	})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(resp.Metadata.Rerankers) != 1 || resp.Metadata.Rerankers[0] != "reverse" {
		t.Errorf("Rerankers = %v, want [reverse]", resp.Metadata.Rerankers)
	}
	if resp.Recommendations[0].Title == "martian ice confirmed" {
		t.Error("reranker output ignored")
	}
	if !strings.Contains(buf.String(), `"reranker":"reverse"`) {
		t.Errorf("registration not logged: %s", buf.String())
	}
}
