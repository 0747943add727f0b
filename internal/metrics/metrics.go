// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_duration_seconds",
			Help:    "Duration of recommendation requests in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		},
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"result"}, // "ok", "missing_data", "not_found", "too_large", "error"
	)

	RecommendBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommend_batch_articles",
			Help:    "Number of articles per recommendation batch after normalization",
			Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
		},
	)

	// Summarization Metrics
	SummarizeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "summarize_duration_seconds",
			Help:    "Duration of summarization provider calls in seconds",
			Buckets: []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
		[]string{"provider"},
	)

	SummarizeRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "summarize_requests_total",
			Help: "Total number of summarization calls by provider and outcome",
		},
		[]string{"provider", "result"}, // result: "success", "failure"
	)

	// Outbound HTTP Metrics
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of outbound requests by upstream and status",
		},
		[]string{"upstream", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Outbound request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"upstream"},
	)

	// Cache Metrics
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"cache"},
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_misses_total",
			Help: "Total number of cache misses",
		},
		[]string{"cache"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRateLimitHit counts a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// RecordRecommendation records the outcome of one recommendation request.
// batchSize is ignored unless result is "ok".
func RecordRecommendation(result string, batchSize int, duration time.Duration) {
	RecommendRequests.WithLabelValues(result).Inc()
	RecommendDuration.Observe(duration.Seconds())
	if result == "ok" {
		RecommendBatchSize.Observe(float64(batchSize))
	}
}

// RecordSummarize records a summarization provider call.
func RecordSummarize(provider string, duration time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	SummarizeRequests.WithLabelValues(provider, result).Inc()
	SummarizeDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

// RecordUpstream records an outbound HTTP call. status is the HTTP status
// code as a string, or "error" when no response was received.
func RecordUpstream(upstream, status string, duration time.Duration) {
	UpstreamRequests.WithLabelValues(upstream, status).Inc()
	UpstreamDuration.WithLabelValues(upstream).Observe(duration.Seconds())
}

// RecordCacheLookup counts a cache hit or miss for the named cache.
func RecordCacheLookup(cache string, hit bool) {
	if hit {
		CacheHits.WithLabelValues(cache).Inc()
		return
	}
	CacheMisses.WithLabelValues(cache).Inc()
}
