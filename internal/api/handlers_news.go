// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/newsrec/internal/newsapi"
)

// News handles GET /api/v1/news, a search over all NewsAPI articles.
func (h *Handler) News(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.news == nil || !h.news.Configured() {
		rw.ServiceUnavailable("News API key not configured")
		return
	}

	q := r.URL.Query()
	pageSize, ok := getIntParam(r, "page_size", h.cfg.NewsDefaultPageSize)
	if !ok {
		rw.BadRequest("page_size must be a number")
		return
	}
	page, ok := getIntParam(r, "page", 0)
	if !ok {
		rw.BadRequest("page must be a number")
		return
	}
	req := NewsRequest{
		Query:    strings.TrimSpace(q.Get("q")),
		Language: strings.ToLower(q.Get("language")),
		SortBy:   q.Get("sort_by"),
		PageSize: pageSize,
		Page:     page,
	}
	if req.Query == "" {
		req.Query = h.cfg.NewsDefaultQuery
	}
	if !validateRequest(rw, &req) {
		return
	}

	resp, err := h.news.Everything(r.Context(), newsapi.EverythingParams{
		Query:    req.Query,
		Language: req.Language,
		SortBy:   req.SortBy,
		PageSize: req.PageSize,
		Page:     req.Page,
	})
	if err != nil {
		h.respondNewsError(rw, "Failed to fetch news", err)
		return
	}
	rw.Success(resp)
}

// Trending handles GET /api/v1/news/trending.
func (h *Handler) Trending(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.news == nil || !h.news.Configured() {
		rw.ServiceUnavailable("News API key not configured")
		return
	}

	q := r.URL.Query()
	limit, ok := getIntParam(r, "limit", h.cfg.NewsDefaultPageSize)
	if !ok {
		rw.BadRequest("limit must be a number")
		return
	}
	req := TrendingRequest{
		Country:  strings.ToUpper(strings.TrimSpace(q.Get("country"))),
		Category: strings.ToLower(q.Get("category")),
		Limit:    limit,
	}
	if req.Country == "" {
		req.Country = strings.ToUpper(h.cfg.NewsDefaultCountry)
	}
	if !validateRequest(rw, &req) {
		return
	}

	resp, err := h.news.TopHeadlines(r.Context(), newsapi.HeadlinesParams{
		Country:  req.Country,
		Category: req.Category,
		PageSize: req.Limit,
	})
	if err != nil {
		h.respondNewsError(rw, "Failed to fetch trending news", err)
		return
	}
	rw.Success(resp)
}

func (h *Handler) respondNewsError(rw *ResponseWriter, message string, err error) {
	if errors.Is(err, newsapi.ErrNotConfigured) {
		rw.ServiceUnavailable("News API key not configured")
		return
	}
	var apiErr *newsapi.APIError
	if errors.As(err, &apiErr) {
		rw.ErrorWithDetails(http.StatusBadGateway, ErrCodeExternalService, message, map[string]any{
			"upstream_status": apiErr.StatusCode,
			"upstream_code":   apiErr.Code,
		})
		return
	}
	respondUpstreamError(rw, "newsapi", message, err)
}
