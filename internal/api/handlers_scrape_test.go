// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/newsrec/internal/scrape"
)

func TestScrape(t *testing.T) {
	t.Parallel()

	fake := &fakeScraper{result: &scrape.Result{Title: "Mars", Content: "Ice found.", HTML: "<p>Ice found.</p>"}}
	srv := newTestServer(t, Dependencies{Scraper: fake})

	rec := doRequest(t, srv, http.MethodGet, "/api/v1/scrape?url=https://example.com/mars", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	var res scrape.Result
	if err := json.Unmarshal(decodeEnvelope(t, rec).Data, &res); err != nil {
		t.Fatal(err)
	}
	if res.Content != "Ice found." || res.Title != "Mars" {
		t.Errorf("result = %+v", res)
	}
}

func TestScrapeErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		target string
		err    error
		status int
		code   string
		msg    string
	}{
		{"missing url", "/api/v1/scrape", nil, http.StatusBadRequest, ErrCodeValidation, "URL parameter is required."},
		{"not http", "/api/v1/scrape?url=ftp://example.com/a", nil, http.StatusBadRequest, ErrCodeValidation, "url"},
		{"blocked host", "/api/v1/scrape?url=http://169.254.169.254/latest", fmt.Errorf("%w: %w", scrape.ErrFetchFailed, scrape.ErrBlockedAddress), http.StatusBadRequest, ErrCodeValidation, "URL host is not allowed."},
		{"no content", "/api/v1/scrape?url=https://example.com/a", scrape.ErrNoContent, http.StatusUnprocessableEntity, ErrCodeUnprocessable, "Unable to extract article content."},
		{"fetch failed", "/api/v1/scrape?url=https://example.com/a", fmt.Errorf("%w: timeout", scrape.ErrFetchFailed), http.StatusBadGateway, ErrCodeExternalService, "Failed to load article."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := newTestServer(t, Dependencies{Scraper: &fakeScraper{err: tt.err, result: &scrape.Result{}}})
			rec := doRequest(t, srv, http.MethodGet, tt.target, nil)
			assertError(t, rec, tt.status, tt.code, tt.msg)
		})
	}
}
