// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package summarize

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestHuggingFace_Summarize(t *testing.T) {
	t.Parallel()

	var got hfRequest
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(body, &got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[{"summary_text":" The gist. "}]`))
	}))
	t.Cleanup(srv.Close)

	hf := NewHuggingFace(HuggingFaceOptions{
		URL:       srv.URL,
		APIKey:    "hf-key",
		MaxLength: 130,
		MinLength: 60,
	})

	summary, err := hf.Summarize(context.Background(), "some long text")
	if err != nil {
		t.Fatalf("Summarize() error = %v", err)
	}
	if summary != "The gist." {
		t.Errorf("summary = %q", summary)
	}
	if auth != "Bearer hf-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.Inputs != "some long text" || got.Parameters.MaxLength != 130 || got.Parameters.MinLength != 60 {
		t.Errorf("request = %+v", got)
	}
}

func TestHuggingFace_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"model loading", http.StatusServiceUnavailable, `{"error":"Model is currently loading"}`, "status 503: Model is currently loading"},
		{"plain failure", http.StatusInternalServerError, `oops`, "status 500"},
		{"empty array", http.StatusOK, `[]`, "empty response"},
		{"bad json", http.StatusOK, `{"summary_text":"x"}`, "decode response"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			t.Cleanup(srv.Close)

			_, err := NewHuggingFace(HuggingFaceOptions{URL: srv.URL}).Summarize(context.Background(), "text")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want containing %q", err, tt.want)
			}
		})
	}
}

func TestHuggingFace_RateLimiterHonoursContext(t *testing.T) {
	t.Parallel()

	hf := NewHuggingFace(HuggingFaceOptions{URL: "http://127.0.0.1:0", RequestsPerSecond: 0.001})
	// Drain the single burst token.
	hf.limiter.Allow()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := hf.Summarize(ctx, "text"); err == nil || !strings.Contains(err.Error(), "rate limiter") {
		t.Errorf("err = %v, want rate limiter error", err)
	}
}
