// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/newsrec/internal/scrape"
)

// Scrape handles GET /api/v1/scrape?url=.
func (h *Handler) Scrape(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.scraper == nil {
		rw.ServiceUnavailable("Article extraction not configured")
		return
	}

	req := ScrapeRequest{URL: strings.TrimSpace(r.URL.Query().Get("url"))}
	if req.URL == "" {
		rw.BadRequest("URL parameter is required.")
		return
	}
	if !validateRequest(rw, &req) {
		return
	}

	res, err := h.scraper.Fetch(r.Context(), req.URL)
	switch {
	case err == nil:
		rw.Success(res)
	case errors.Is(err, scrape.ErrInvalidURL):
		rw.BadRequest(err.Error())
	case errors.Is(err, scrape.ErrBlockedAddress):
		rw.BadRequest("URL host is not allowed.")
	case errors.Is(err, scrape.ErrNoContent):
		rw.Error(http.StatusUnprocessableEntity, ErrCodeUnprocessable, "Unable to extract article content.")
	default:
		respondUpstreamError(rw, "scrape", "Failed to load article.", err)
	}
}
