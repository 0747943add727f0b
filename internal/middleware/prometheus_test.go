// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/newsrec/internal/metrics"
)

func TestPrometheusMetrics(t *testing.T) {
	t.Parallel()

	t.Run("propagates status code", func(t *testing.T) {
		t.Parallel()
		codes := []int{http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusInternalServerError}
		for _, code := range codes {
			handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(code)
			}))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/test", nil))
			if rec.Code != code {
				t.Errorf("Expected status %d, got %d", code, rec.Code)
			}
		}
	})

	t.Run("defaults to 200 when WriteHeader not called", func(t *testing.T) {
		t.Parallel()
		handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("OK"))
		}))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plain", nil))
		if rec.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", rec.Code)
		}
	})
}

func TestPrometheusMetrics_UsesRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/items/{id}", "204")
	before := testutil.ToFloat64(counter)

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/items/"+id, nil))
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("route pattern counter delta = %v, want 3", got)
	}
}

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := &statusRecorder{ResponseWriter: rec, statusCode: http.StatusOK}

	sr.WriteHeader(http.StatusAccepted)
	sr.WriteHeader(http.StatusTeapot)
	n, err := sr.Write([]byte("hello"))
	if err != nil || n != 5 {
		t.Fatalf("Write() = %d, %v", n, err)
	}

	if sr.statusCode != http.StatusAccepted {
		t.Errorf("statusCode = %d, want first written code 202", sr.statusCode)
	}
	if sr.bytes != 5 {
		t.Errorf("bytes = %d, want 5", sr.bytes)
	}
	if sr.Unwrap() != rec {
		t.Error("Unwrap did not return the underlying writer")
	}
}
