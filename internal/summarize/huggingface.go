// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package summarize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/newsrec/internal/metrics"
)

// maxResponseBytes bounds the inference response read.
const maxResponseBytes = 1 << 20

// HuggingFaceOptions configures a HuggingFace client.
type HuggingFaceOptions struct {
	URL               string
	APIKey            string
	MaxLength         int
	MinLength         int
	RequestsPerSecond float64
	HTTPClient        *http.Client
}

// HuggingFace summarizes with a hosted inference endpoint.
type HuggingFace struct {
	url        string
	apiKey     string
	params     hfParameters
	limiter    *rate.Limiter
	httpClient *http.Client
}

type hfRequest struct {
	Inputs     string       `json:"inputs"`
	Parameters hfParameters `json:"parameters"`
}

type hfParameters struct {
	MaxLength int `json:"max_length"`
	MinLength int `json:"min_length"`
}

type hfSummary struct {
	SummaryText string `json:"summary_text"`
}

type hfError struct {
	Error string `json:"error"`
}

// NewHuggingFace creates an inference client.
func NewHuggingFace(opts HuggingFaceOptions) *HuggingFace {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	return &HuggingFace{
		url:        opts.URL,
		apiKey:     opts.APIKey,
		params:     hfParameters{MaxLength: opts.MaxLength, MinLength: opts.MinLength},
		limiter:    rate.NewLimiter(limit, 1),
		httpClient: httpClient,
	}
}

// Name implements Summarizer.
func (h *HuggingFace) Name() string { return "huggingface" }

// Summarize posts text to the inference endpoint.
func (h *HuggingFace) Summarize(ctx context.Context, text string) (string, error) {
	if err := h.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("huggingface: rate limiter: %w", err)
	}

	body, err := json.Marshal(hfRequest{Inputs: text, Parameters: h.params})
	if err != nil {
		return "", fmt.Errorf("huggingface: encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("huggingface: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if h.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+h.apiKey)
	}

	start := time.Now()
	resp, err := h.httpClient.Do(req)
	if err != nil {
		metrics.RecordUpstream("huggingface", "error", time.Since(start))
		return "", fmt.Errorf("huggingface: %w", err)
	}
	defer resp.Body.Close()
	metrics.RecordUpstream("huggingface", strconv.Itoa(resp.StatusCode), time.Since(start))

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("huggingface: read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr hfError
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error != "" {
			return "", fmt.Errorf("huggingface: status %d: %s", resp.StatusCode, apiErr.Error)
		}
		return "", fmt.Errorf("huggingface: status %d", resp.StatusCode)
	}

	var summaries []hfSummary
	if err := json.Unmarshal(data, &summaries); err != nil {
		return "", fmt.Errorf("huggingface: decode response: %w", err)
	}
	if len(summaries) == 0 || strings.TrimSpace(summaries[0].SummaryText) == "" {
		return "", errors.New("huggingface: empty response")
	}
	return strings.TrimSpace(summaries[0].SummaryText), nil
}

var _ Summarizer = (*HuggingFace)(nil)
