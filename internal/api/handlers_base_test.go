// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsrec/internal/newsapi"
	"github.com/tomtom215/newsrec/internal/recommend"
	"github.com/tomtom215/newsrec/internal/scrape"
	"github.com/tomtom215/newsrec/internal/summarize"
)

type fakeSummarizer struct {
	result *summarize.Result
	err    error
	state  string
	got    string
}

func (f *fakeSummarizer) Summarize(_ context.Context, text string) (*summarize.Result, error) {
	f.got = text
	return f.result, f.err
}

func (f *fakeSummarizer) Provider() string { return "fake" }

func (f *fakeSummarizer) BreakerState() string {
	if f.state == "" {
		return "closed"
	}
	return f.state
}

type fakeNews struct {
	configured bool
	resp       *newsapi.Response
	err        error
	everything newsapi.EverythingParams
	headlines  newsapi.HeadlinesParams
}

func (f *fakeNews) Everything(_ context.Context, p newsapi.EverythingParams) (*newsapi.Response, error) {
	f.everything = p
	return f.resp, f.err
}

func (f *fakeNews) TopHeadlines(_ context.Context, p newsapi.HeadlinesParams) (*newsapi.Response, error) {
	f.headlines = p
	return f.resp, f.err
}

func (f *fakeNews) Configured() bool     { return f.configured }
func (f *fakeNews) BreakerState() string { return "closed" }

type fakeScraper struct {
	result *scrape.Result
	err    error
}

func (f *fakeScraper) Fetch(context.Context, string) (*scrape.Result, error) {
	return f.result, f.err
}

func (f *fakeScraper) BreakerState() string { return "closed" }

func newTestEngine(t *testing.T) *recommend.Engine {
	t.Helper()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return engine
}

// newTestServer returns the full router with rate limiting disabled.
func newTestServer(t *testing.T, deps Dependencies) http.Handler {
	t.Helper()
	mwCfg := DefaultChiMiddlewareConfig()
	mwCfg.RateLimitDisabled = true
	h := NewHandler(HandlerConfig{Version: "test"}, deps)
	return NewRouter(h, NewChiMiddleware(mwCfg)).Setup()
}

func doRequest(t *testing.T, srv http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case nil:
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

// envelope decodes an APIResponse with Data left raw.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return env
}

func assertError(t *testing.T, rec *httptest.ResponseRecorder, status int, code, msgContains string) {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Success || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
	if !strings.Contains(env.Error.Message, msgContains) {
		t.Errorf("error message = %q, want it to contain %q", env.Error.Message, msgContains)
	}
}
