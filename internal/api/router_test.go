// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestRouterRoot(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Dependencies{})
	rec := doRequest(t, srv, http.MethodGet, "/", nil)
	if rec.Code != http.StatusOK || !strings.HasPrefix(rec.Body.String(), "Backend is running") {
		t.Errorf("GET / = %d %q", rec.Code, rec.Body.String())
	}
}

func TestRouterNotFoundAndMethod(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Dependencies{})

	assertError(t, doRequest(t, srv, http.MethodGet, "/api/v1/nope", nil), http.StatusNotFound, ErrCodeNotFound, "Route not found")
	assertError(t, doRequest(t, srv, http.MethodGet, "/api/v1/recommend", nil), http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed")
}

func TestRouterMetrics(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Dependencies{})
	_ = doRequest(t, srv, http.MethodGet, "/health", nil)

	rec := doRequest(t, srv, http.MethodGet, "/metrics", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Error("API request counter not exposed")
	}
}

func TestRouterRequestIDAndSecurityHeaders(t *testing.T) {
	t.Parallel()

	srv := newTestServer(t, Dependencies{})
	req := httptest.NewRequest(http.MethodGet, "/health", http.NoBody)
	req.Header.Set("X-Request-ID", "req-123")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-123" {
		t.Errorf("X-Request-ID = %q", got)
	}
	if env := decodeEnvelope(t, rec); env.Meta == nil || env.Meta.RequestID != "req-123" {
		t.Errorf("meta = %+v", env.Meta)
	}
	for _, h := range []string{"X-Content-Type-Options", "X-Frame-Options", "Referrer-Policy"} {
		if rec.Header().Get(h) == "" {
			t.Errorf("missing %s", h)
		}
	}
	if rec.Header().Get("Strict-Transport-Security") != "" {
		t.Error("HSTS set on plain HTTP")
	}
}

func TestRouterCORS(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.CORSAllowedOrigins = []string{"https://app.example.com"}
	cfg.RateLimitDisabled = true
	srv := NewRouter(NewHandler(HandlerConfig{}, Dependencies{}), NewChiMiddleware(cfg)).Setup()

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/recommend", http.NoBody)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Errorf("Allow-Origin = %q", got)
	}

	req = httptest.NewRequest(http.MethodOptions, "/api/v1/recommend", http.NoBody)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Errorf("disallowed origin got Allow-Origin = %q", got)
	}
}

func TestRouterRateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	srv := NewRouter(NewHandler(HandlerConfig{}, Dependencies{}), NewChiMiddleware(cfg)).Setup()

	var last *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		last = doRequest(t, srv, http.MethodGet, "/api/v1/news", nil)
	}
	assertError(t, last, http.StatusTooManyRequests, ErrCodeRateLimitExceeded, "Too many requests")
}

func TestRateLimitDisabled(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 1
	cfg.RateLimitDisabled = true
	srv := NewRouter(NewHandler(HandlerConfig{}, Dependencies{}), NewChiMiddleware(cfg)).Setup()

	for i := 0; i < 5; i++ {
		if rec := doRequest(t, srv, http.MethodGet, "/api/v1/news", nil); rec.Code == http.StatusTooManyRequests {
			t.Fatal("rate limited while disabled")
		}
	}
}
