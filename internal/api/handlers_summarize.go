// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/tomtom215/newsrec/internal/summarize"
)

const msgTextRequired = "Valid text parameter is required."

// Summarize handles POST /api/v1/summarize.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if h.summarizer == nil {
		rw.ServiceUnavailable("Summarization not configured")
		return
	}

	var body SummarizeRequest
	if !h.decodeJSON(rw, w, r, &body) {
		return
	}
	text, ok := body.Text.(string)
	if !ok || strings.TrimSpace(text) == "" {
		rw.BadRequest(msgTextRequired)
		return
	}

	res, err := h.summarizer.Summarize(r.Context(), text)
	switch {
	case err == nil:
		rw.Success(res)
	case errors.Is(err, summarize.ErrEmptyText):
		rw.BadRequest(msgTextRequired)
	case errors.Is(err, summarize.ErrNotConfigured):
		rw.ServiceUnavailable("Summarization not configured")
	default:
		respondUpstreamError(rw, "summarizer", "Summarization failed: "+err.Error(), err)
	}
}
