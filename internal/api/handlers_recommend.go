// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/newsrec/internal/logging"
	"github.com/tomtom215/newsrec/internal/metrics"
	"github.com/tomtom215/newsrec/internal/recommend"
)

// Recommend handles POST /api/v1/recommend.
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.engine == nil {
		rw.ServiceUnavailable("Recommendation engine not configured")
		return
	}

	var body RecommendRequest
	if !h.decodeJSON(rw, w, r, &body) {
		return
	}
	if !validateRequest(rw, &body) {
		return
	}

	articles := make([]map[string]any, 0, len(body.Articles))
	for _, a := range body.Articles {
		if m, ok := a.(map[string]any); ok {
			articles = append(articles, m)
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.cfg.RecommendTimeout)
	defer cancel()

	start := time.Now()
	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Articles:  articles,
		Title:     body.Title,
		TopN:      body.TopN,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	metrics.RecordRecommendation(recommendResult(err), len(body.Articles), time.Since(start))

	switch {
	case err == nil:
		rw.Success(resp)
	case errors.Is(err, recommend.ErrMissingData):
		rw.BadRequest("missing data")
	case errors.Is(err, recommend.ErrArticleNotFound):
		rw.NotFound("article not found")
	case errors.Is(err, recommend.ErrBatchTooLarge):
		rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Recommendation timed out")
	default:
		rw.InternalError(err)
	}
}

func recommendResult(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, recommend.ErrMissingData):
		return "missing_data"
	case errors.Is(err, recommend.ErrArticleNotFound):
		return "not_found"
	case errors.Is(err, recommend.ErrBatchTooLarge):
		return "too_large"
	default:
		return "error"
	}
}
