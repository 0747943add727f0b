// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsrec/internal/recommend"
)

func testArticles() []any {
	mk := func(title, text, author, source, published string) map[string]any {
		return map[string]any{
			"title":       title,
			"description": text,
			"content":     text,
			"author":      author,
			"source":      map[string]any{"id": nil, "name": source},
			"publishedAt": published,
			"url":         "https://example.com/" + strings.ToLower(strings.ReplaceAll(title, " ", "-")),
		}
	}
	return []any{
		mk("Mars Rover Finds Ice", "NASA rover discovers water ice beneath the Martian surface", "Jane Doe", "Space Daily", "2024-05-10T08:00:00Z"),
		mk("Stocks Rally", "Markets climb after strong quarterly earnings reports", "John Roe", "Finance Wire", "2024-05-09T08:00:00Z"),
		mk("Martian Ice Confirmed", "NASA confirms rover found water ice beneath Martian soil", "Jane Doe", "Science Post", "2024-05-08T08:00:00Z"),
		mk("Rover Battery Update", "Engineers report the Mars rover battery remains healthy", "Sam Loe", "Space Daily", "2024-05-01T08:00:00Z"),
		"not an object",
	}
}

func TestRecommend(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Dependencies{Engine: newTestEngine(t)})

	for _, path := range []string{"/api/v1/recommend", "/recommend"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			rec := doRequest(t, srv, http.MethodPost, path, map[string]any{
				"articles": testArticles(),
				"title":    "  mars rover FINDS ice ",
				"top_n":    2,
			})
			if rec.Code != http.StatusOK {
				t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
			}
			env := decodeEnvelope(t, rec)
			var resp recommend.Response
			if err := json.Unmarshal(env.Data, &resp); err != nil {
				t.Fatal(err)
			}
			if len(resp.Recommendations) != 2 {
				t.Fatalf("got %d recommendations, want 2", len(resp.Recommendations))
			}
			if resp.Recommendations[0].Title != "martian ice confirmed" {
				t.Errorf("top = %q", resp.Recommendations[0].Title)
			}
			if resp.Metadata.Received != 4 {
				t.Errorf("Received = %d, want 4 (non-objects dropped)", resp.Metadata.Received)
			}
			if env.Meta == nil || env.Meta.RequestID == "" {
				t.Error("missing request id in meta")
			}
		})
	}
}

func TestRecommendTopNCappedByEngine(t *testing.T) {
	t.Parallel()

	cfg := recommend.DefaultConfig()
	cfg.DefaultTopN = 1
	cfg.MaxTopN = 2
	engine, err := recommend.NewEngine(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	srv := newTestServer(t, Dependencies{Engine: engine})

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/recommend", map[string]any{
		"articles": testArticles(),
		"title":    "Mars rover finds ice",
		"top_n":    10,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var resp recommend.Response
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &resp); err != nil {
		t.Fatal(err)
	}
	if len(resp.Recommendations) != 2 {
		t.Errorf("got %d recommendations, want 2", len(resp.Recommendations))
	}
}

func TestRecommendErrors(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Dependencies{Engine: newTestEngine(t)})

	tests := []struct {
		name   string
		body   any
		status int
		code   string
		msg    string
	}{
		{"invalid json", "{not json", http.StatusBadRequest, ErrCodeValidation, "Invalid JSON"},
		{"missing title", map[string]any{"articles": testArticles()}, http.StatusBadRequest, ErrCodeValidation, "missing data"},
		{"missing articles", map[string]any{"title": "x"}, http.StatusBadRequest, ErrCodeValidation, "missing data"},
		{"only non-objects", map[string]any{"title": "x", "articles": []any{1, "two"}}, http.StatusBadRequest, ErrCodeValidation, "missing data"},
		{"negative top_n", map[string]any{"title": "x", "articles": testArticles(), "top_n": -1}, http.StatusBadRequest, ErrCodeValidation, "top_n"},
		{"unknown title", map[string]any{"title": "Venus Flyby", "articles": testArticles()}, http.StatusNotFound, ErrCodeNotFound, "article not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doRequest(t, srv, http.MethodPost, "/api/v1/recommend", tt.body)
			assertError(t, rec, tt.status, tt.code, tt.msg)
		})
	}
}

func TestRecommendBodyTooLarge(t *testing.T) {
	t.Parallel()

	h := NewHandler(HandlerConfig{MaxBodyBytes: 64}, Dependencies{Engine: newTestEngine(t)})
	srv := NewRouter(h, nil).Setup()

	rec := doRequest(t, srv, http.MethodPost, "/api/v1/recommend", map[string]any{
		"title":    "Mars Rover Finds Ice",
		"articles": testArticles(),
	})
	assertError(t, rec, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, "exceeds")
}

func TestRecommendNotConfigured(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Dependencies{})
	rec := doRequest(t, srv, http.MethodPost, "/api/v1/recommend", map[string]any{"title": "x"})
	assertError(t, rec, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "not configured")
}
