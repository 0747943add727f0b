// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

/*
Package metrics provides Prometheus metrics collection and export for observability.

Collectors are registered with the default registry at init via promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint, status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: Requests in flight (gauge)
  - api_rate_limit_hits_total: Rate limit rejections (counter)
    Labels: endpoint

Recommendation Metrics:
  - recommend_requests_total: Requests by outcome (counter)
    Labels: result (ok, missing_data, not_found, too_large, error)
  - recommend_duration_seconds: Pipeline latency (histogram)
  - recommend_batch_articles: Normalized batch size (histogram)

Summarization Metrics:
  - summarize_requests_total: Provider calls (counter)
    Labels: provider, result
  - summarize_duration_seconds: Provider latency (histogram)
    Labels: provider

Upstream Metrics:
  - upstream_requests_total: Outbound calls (counter)
    Labels: upstream (newsapi, huggingface, scrape), status
  - upstream_request_duration_seconds: Outbound latency (histogram)
    Labels: upstream

Cache Metrics:
  - cache_hits_total, cache_misses_total (counter)
    Labels: cache (summary, news)

Circuit Breaker Metrics:
  - circuit_breaker_state: 0=closed, 1=half-open, 2=open (gauge)
  - circuit_breaker_requests_total: Labels name, result (counter)
  - circuit_breaker_consecutive_failures (gauge)
  - circuit_breaker_state_transitions_total: Labels name, from_state, to_state

# Usage

	start := time.Now()
	resp, err := engine.Recommend(ctx, req)
	metrics.RecordRecommendation("ok", resp.Metadata.Normalized, time.Since(start))

# Thread Safety

All collectors are safe for concurrent use.
*/
package metrics
