// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/newsrec/internal/breaker"
	"github.com/tomtom215/newsrec/internal/validation"
)

// sanitizeLogValue escapes control characters so request data cannot forge
// log lines.
func sanitizeLogValue(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&b, "\\x%02x", r)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// decodeJSON reads a size-limited JSON body into v. On failure it writes the
// error response and returns false.
func (h *Handler) decodeJSON(rw *ResponseWriter, w http.ResponseWriter, r *http.Request, v any) bool {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge,
				"Request body exceeds "+strconv.FormatInt(tooLarge.Limit, 10)+" bytes")
			return false
		}
		rw.BadRequest("Unable to read request body")
		return false
	}
	if err := json.Unmarshal(data, v); err != nil {
		rw.BadRequest("Invalid JSON body")
		return false
	}
	return true
}

// validateRequest runs struct validation and writes a 400 on failure.
func validateRequest(rw *ResponseWriter, v any) bool {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return true
	}
	apiErr := verr.ToAPIError()
	rw.ValidationError(apiErr.Message, apiErr.Details)
	return false
}

// getIntParam parses an integer query parameter. A malformed value is
// reported as ok=false.
func getIntParam(r *http.Request, key string, defaultValue int) (int, bool) {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue, true
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, false
	}
	return n, true
}

// respondUpstreamError maps a collaborator failure to 503 when its circuit is
// open or the caller went away, and to 502 otherwise.
func respondUpstreamError(rw *ResponseWriter, service, message string, err error) {
	switch {
	case errors.Is(err, breaker.ErrCircuitOpen):
		rw.ServiceUnavailable(service + " temporarily unavailable")
	case errors.Is(err, context.Canceled):
		rw.Error(499, ErrCodeServiceUnavailable, "Request cancelled")
	default:
		rw.ExternalServiceError(service, message, err)
	}
}
