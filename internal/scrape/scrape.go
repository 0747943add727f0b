// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

// Package scrape fetches a web page and extracts its main article with
// go-readability. The extracted HTML is sanitized with bluemonday before it
// leaves the package.
package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsrec/internal/breaker"
	"github.com/tomtom215/newsrec/internal/metrics"
)

var (
	// ErrInvalidURL is returned for empty, relative or non-http(s) URLs.
	ErrInvalidURL = errors.New("invalid article URL")

	// ErrNoContent means the page was fetched but held no readable text.
	ErrNoContent = errors.New("unable to extract article content")

	// ErrFetchFailed wraps transport errors and non-2xx responses.
	ErrFetchFailed = errors.New("failed to load article")
)

const (
	DefaultMaxBodyBytes = 2 << 20
	DefaultUserAgent    = "newsrec/1.0 (+https://github.com/tomtom215/newsrec)"
)

// Result is an extracted article.
type Result struct {
	URL      string `json:"url"`
	Title    string `json:"title"`
	Byline   string `json:"byline"`
	SiteName string `json:"site_name,omitempty"`
	Excerpt  string `json:"excerpt,omitempty"`
	Content  string `json:"content"`
	HTML     string `json:"html"`
	Length   int    `json:"length"`
}

// Options configures a Fetcher. Without an HTTPClient the fetcher dials
// public addresses only.
type Options struct {
	Timeout      time.Duration
	MaxBodyBytes int64
	UserAgent    string
	HTTPClient   *http.Client
	Breaker      *breaker.Settings
	Logger       zerolog.Logger
}

// Fetcher downloads and extracts articles.
type Fetcher struct {
	client    *http.Client
	maxBytes  int64
	userAgent string
	policy    *bluemonday.Policy
	breaker   *breaker.Breaker[*Result]
	logger    zerolog.Logger
}

// NewFetcher creates a Fetcher.
//
//nolint:gocritic // options passed by value for immutability
func NewFetcher(opts Options) *Fetcher {
	client := opts.HTTPClient
	if client == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		client = newGuardedClient(timeout)
	}
	maxBytes := opts.MaxBodyBytes
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodyBytes
	}
	ua := opts.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}

	settings := breaker.DefaultSettings()
	if opts.Breaker != nil {
		settings = *opts.Breaker
	}
	// Only transport failures and server errors count against the circuit.
	settings.IsSuccessful = func(err error) bool {
		var se *StatusError
		if errors.As(err, &se) {
			return se.StatusCode < 500
		}
		return err == nil ||
			errors.Is(err, ErrNoContent) ||
			errors.Is(err, ErrBlockedAddress) ||
			errors.Is(err, context.Canceled)
	}

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &Fetcher{
		client:    client,
		maxBytes:  maxBytes,
		userAgent: ua,
		policy:    policy,
		breaker:   breaker.New[*Result]("scrape", settings),
		logger:    opts.Logger.With().Str("component", "scrape").Logger(),
	}
}

// BreakerState reports the circuit state.
func (f *Fetcher) BreakerState() string {
	return f.breaker.State()
}

// StatusError is a non-2xx response from the article host.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return "unexpected status " + strconv.Itoa(e.StatusCode)
}

// ParseURL checks that raw is an absolute http or https URL.
func ParseURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidURL)
	}
	u, err := url.Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: scheme %q not allowed", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("%w: missing host", ErrInvalidURL)
	}
	return u, nil
}

// Fetch downloads rawURL and extracts its article.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (*Result, error) {
	u, err := ParseURL(rawURL)
	if err != nil {
		return nil, err
	}
	return f.breaker.Execute(func() (*Result, error) {
		return f.fetch(ctx, u)
	})
}

func (f *Fetcher) fetch(ctx context.Context, u *url.URL) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	start := time.Now()
	resp, err := f.client.Do(req)
	if err != nil {
		metrics.RecordUpstream("scrape", "error", time.Since(start))
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	defer resp.Body.Close()
	metrics.RecordUpstream("scrape", strconv.Itoa(resp.StatusCode), time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %w", ErrFetchFailed, &StatusError{StatusCode: resp.StatusCode})
	}

	body := io.LimitReader(resp.Body, f.maxBytes)
	article, err := readability.FromReader(body, u)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNoContent, err)
	}

	text := strings.TrimSpace(article.TextContent)
	if text == "" {
		return nil, ErrNoContent
	}

	f.logger.Debug().
		Str("host", u.Host).
		Int("length", article.Length).
		Dur("duration", time.Since(start)).
		Msg("article extracted")

	return &Result{
		URL:      u.String(),
		Title:    strings.TrimSpace(article.Title),
		Byline:   strings.TrimSpace(article.Byline),
		SiteName: article.SiteName,
		Excerpt:  article.Excerpt,
		Content:  text,
		HTML:     f.policy.Sanitize(article.Content),
		Length:   article.Length,
	}, nil
}
