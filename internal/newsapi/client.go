// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

// Package newsapi is a client for the newsapi.org v2 REST API.
//
// Articles are returned as raw JSON objects so they can be passed unchanged
// to the recommendation engine, which owns article normalization.
package newsapi

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

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"github.com/tomtom215/newsrec/internal/breaker"
	"github.com/tomtom215/newsrec/internal/cache"
	"github.com/tomtom215/newsrec/internal/metrics"
)

// ErrNotConfigured means no API key was supplied.
var ErrNotConfigured = errors.New("news API key not configured")

const maxResponseBytes = 8 << 20

// Response is a NewsAPI article listing.
type Response struct {
	Status       string           `json:"status"`
	TotalResults int              `json:"totalResults"`
	Articles     []map[string]any `json:"articles"`
}

// APIError is an error reported by NewsAPI.
type APIError struct {
	StatusCode int    `json:"-"`
	Status     string `json:"status"`
	Code       string `json:"code"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("newsapi: %d %s: %s", e.StatusCode, e.Code, e.Message)
}

// Temporary reports whether retrying later may succeed.
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// Options configures a Client.
type Options struct {
	APIKey            string
	BaseURL           string
	Timeout           time.Duration
	RequestsPerSecond float64

	// Cache stores responses for CacheTTL. nil disables caching.
	Cache    cache.Store
	CacheTTL time.Duration

	HTTPClient *http.Client
	Breaker    *breaker.Settings
	Logger     zerolog.Logger
}

// Client calls NewsAPI. It is safe for concurrent use.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *breaker.Breaker[*Response]
	cache      *cache.Typed[Response]
	logger     zerolog.Logger
}

// NewClient creates a client. A client without an API key is valid but
// every call returns ErrNotConfigured.
//
//nolint:gocritic // options passed by value for immutability
func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	settings := breaker.DefaultSettings()
	if opts.Breaker != nil {
		settings = *opts.Breaker
	}
	settings.IsSuccessful = func(err error) bool {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			return !apiErr.Temporary()
		}
		return err == nil || errors.Is(err, context.Canceled)
	}

	c := &Client{
		apiKey:     opts.APIKey,
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		breaker:    breaker.New[*Response]("newsapi", settings),
		logger:     opts.Logger.With().Str("component", "newsapi").Logger(),
	}
	if opts.Cache != nil {
		c.cache = cache.NewTyped[Response](opts.Cache, "news", opts.CacheTTL)
	}
	return c
}

// Configured reports whether an API key is set.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// BreakerState reports the upstream circuit state.
func (c *Client) BreakerState() string {
	return c.breaker.State()
}

// EverythingParams selects articles from /v2/everything.
type EverythingParams struct {
	// Query terms. A "+" separates terms, as in a raw query string.
	Query    string
	Language string
	SortBy   string
	PageSize int
	Page     int
}

// Everything searches all articles.
func (c *Client) Everything(ctx context.Context, p EverythingParams) (*Response, error) {
	q := url.Values{}
	q.Set("q", strings.ReplaceAll(p.Query, "+", " "))
	setIfNotEmpty(q, "language", p.Language)
	setIfNotEmpty(q, "sortBy", p.SortBy)
	setIfPositive(q, "pageSize", p.PageSize)
	setIfPositive(q, "page", p.Page)
	return c.get(ctx, "/v2/everything", q)
}

// HeadlinesParams selects articles from /v2/top-headlines.
type HeadlinesParams struct {
	Country  string
	Category string
	PageSize int
	Page     int
}

// TopHeadlines lists breaking headlines.
func (c *Client) TopHeadlines(ctx context.Context, p HeadlinesParams) (*Response, error) {
	q := url.Values{}
	setIfNotEmpty(q, "country", strings.ToLower(p.Country))
	setIfNotEmpty(q, "category", p.Category)
	setIfPositive(q, "pageSize", p.PageSize)
	setIfPositive(q, "page", p.Page)
	return c.get(ctx, "/v2/top-headlines", q)
}

func (c *Client) get(ctx context.Context, path string, q url.Values) (*Response, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	endpoint := c.baseURL + path + "?" + q.Encode()
	key := cache.GenerateKey("news", endpoint)
	if c.cache != nil {
		if resp, ok := c.cache.Get(ctx, key); ok {
			return &resp, nil
		}
	}

	resp, err := c.breaker.Execute(func() (*Response, error) {
		return c.do(ctx, path, endpoint)
	})
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		c.cache.Set(ctx, key, *resp)
	}
	return resp, nil
}

func (c *Client) do(ctx context.Context, path, endpoint string) (*Response, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("newsapi: rate limiter: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("newsapi: build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream("newsapi", "error", time.Since(start))
		return nil, fmt.Errorf("newsapi: %w", err)
	}
	defer resp.Body.Close()
	metrics.RecordUpstream("newsapi", strconv.Itoa(resp.StatusCode), time.Since(start))

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("newsapi: read response: %w", err)
	}

	c.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("newsapi request")

	if resp.StatusCode != http.StatusOK {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if json.Unmarshal(body, apiErr) != nil || apiErr.Message == "" {
			apiErr.Code = "unexpectedStatus"
			apiErr.Message = http.StatusText(resp.StatusCode)
		}
		return nil, apiErr
	}

	var out Response
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, fmt.Errorf("newsapi: decode response: %w", err)
	}
	if out.Status != "ok" {
		return nil, &APIError{StatusCode: resp.StatusCode, Status: out.Status, Code: "unexpectedStatus", Message: "status " + out.Status}
	}
	if out.Articles == nil {
		out.Articles = []map[string]any{}
	}
	return &out, nil
}

func setIfNotEmpty(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}

func setIfPositive(q url.Values, key string, value int) {
	if value > 0 {
		q.Set(key, strconv.Itoa(value))
	}
}
