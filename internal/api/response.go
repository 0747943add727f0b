// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/newsrec/internal/logging"
)

// APIResponse is the envelope for every JSON response.
type APIResponse struct {
	Success bool      `json:"success"`
	Data    any       `json:"data,omitempty"`
	Error   *APIError `json:"error,omitempty"`
	Meta    *APIMeta  `json:"meta,omitempty"`
}

// APIError is the error half of the envelope.
type APIError struct {
	// Code is machine-readable, one of the ErrCode constants.
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

// APIMeta carries request tracing data.
type APIMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms"`
}

// Error codes
const (
	ErrCodeValidation         = "VALIDATION_ERROR"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodePayloadTooLarge    = "PAYLOAD_TOO_LARGE"
	ErrCodeUnprocessable      = "UNPROCESSABLE_CONTENT"
	ErrCodeRateLimitExceeded  = "RATE_LIMIT_EXCEEDED"
	ErrCodeExternalService    = "EXTERNAL_SERVICE_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeInternal           = "INTERNAL_ERROR"
)

// ResponseWriter writes enveloped responses for one request.
type ResponseWriter struct {
	w         http.ResponseWriter
	r         *http.Request
	startTime time.Time
}

// NewResponseWriter creates a response writer. Durations are measured from
// this call.
func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, startTime: time.Now()}
}

func (rw *ResponseWriter) meta() *APIMeta {
	return &APIMeta{
		RequestID:  logging.RequestIDFromContext(rw.r.Context()),
		Timestamp:  time.Now().UTC(),
		DurationMs: time.Since(rw.startTime).Milliseconds(),
	}
}

// Success writes a 200 response with data.
func (rw *ResponseWriter) Success(data any) {
	rw.writeJSON(http.StatusOK, APIResponse{Success: true, Data: data, Meta: rw.meta()})
}

// Error writes an error response.
func (rw *ResponseWriter) Error(status int, code, message string) {
	rw.ErrorWithDetails(status, code, message, nil)
}

// ErrorWithDetails writes an error response with structured details.
func (rw *ResponseWriter) ErrorWithDetails(status int, code, message string, details any) {
	rw.writeJSON(status, APIResponse{
		Success: false,
		Error:   &APIError{Code: code, Message: message, Details: details},
		Meta:    rw.meta(),
	})
}

// BadRequest writes a 400 validation error.
func (rw *ResponseWriter) BadRequest(message string) {
	rw.Error(http.StatusBadRequest, ErrCodeValidation, message)
}

// ValidationError writes a 400 with per-field details.
func (rw *ResponseWriter) ValidationError(message string, details any) {
	rw.ErrorWithDetails(http.StatusBadRequest, ErrCodeValidation, message, details)
}

// NotFound writes a 404.
func (rw *ResponseWriter) NotFound(message string) {
	rw.Error(http.StatusNotFound, ErrCodeNotFound, message)
}

// ServiceUnavailable writes a 503.
func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.Error(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message)
}

// InternalError logs err and writes a generic 500.
func (rw *ResponseWriter) InternalError(err error) {
	logging.Ctx(rw.r.Context()).Error().Err(err).Str("path", sanitizeLogValue(rw.r.URL.Path)).Msg("internal error")
	rw.Error(http.StatusInternalServerError, ErrCodeInternal, "Internal server error")
}

// ExternalServiceError logs err and writes a 502 with message.
func (rw *ResponseWriter) ExternalServiceError(service, message string, err error) {
	logging.Ctx(rw.r.Context()).Warn().Err(err).Str("service", service).Msg("upstream failure")
	rw.Error(http.StatusBadGateway, ErrCodeExternalService, message)
}

func (rw *ResponseWriter) writeJSON(status int, body APIResponse) {
	data, err := json.Marshal(body)
	if err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("failed to encode JSON response")
		rw.w.WriteHeader(http.StatusInternalServerError)
		return
	}
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.Header().Set("Cache-Control", "no-store")
	rw.w.WriteHeader(status)
	if _, err := rw.w.Write(data); err != nil {
		logging.Ctx(rw.r.Context()).Debug().Err(err).Msg("failed to write JSON response")
	}
}

// WriteError writes an error envelope without a ResponseWriter.
func WriteError(w http.ResponseWriter, r *http.Request, status int, code, message string) {
	NewResponseWriter(w, r).Error(status, code, message)
}
