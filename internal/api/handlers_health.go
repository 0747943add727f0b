// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

import (
	"context"
	"net/http"
	"time"
)

// HealthStatus is the body of GET /health.
type HealthStatus struct {
	Status    string                    `json:"status"`
	Version   string                    `json:"version"`
	Uptime    float64                   `json:"uptime"`
	Providers map[string]ProviderHealth `json:"providers"`
}

// ProviderHealth describes one collaborator.
type ProviderHealth struct {
	Enabled bool   `json:"enabled"`
	Name    string `json:"name,omitempty"`
	Circuit string `json:"circuit,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Health handles GET /health. It always answers 200; an open circuit or an
// unreachable cache reports "degraded".
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	providers := make(map[string]ProviderHealth, 4)
	degraded := false

	check := func(key string, p ProviderHealth) {
		if p.Circuit == "open" || p.Error != "" {
			degraded = true
		}
		providers[key] = p
	}

	if h.summarizer != nil {
		check("summarizer", ProviderHealth{
			Enabled: h.summarizer.Provider() != "none",
			Name:    h.summarizer.Provider(),
			Circuit: h.summarizer.BreakerState(),
		})
	} else {
		providers["summarizer"] = ProviderHealth{}
	}

	if h.news != nil {
		check("newsapi", ProviderHealth{Enabled: h.news.Configured(), Circuit: h.news.BreakerState()})
	} else {
		providers["newsapi"] = ProviderHealth{}
	}

	if h.scraper != nil {
		check("scrape", ProviderHealth{Enabled: true, Circuit: h.scraper.BreakerState()})
	} else {
		providers["scrape"] = ProviderHealth{}
	}

	if h.cache != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		p := ProviderHealth{Enabled: true}
		if err := h.cache.Ping(ctx); err != nil {
			p.Error = err.Error()
		}
		cancel()
		check("cache", p)
	}

	status := "healthy"
	if degraded {
		status = "degraded"
	}

	NewResponseWriter(w, r).Success(HealthStatus{
		Status:    status,
		Version:   h.cfg.Version,
		Uptime:    time.Since(h.startTime).Seconds(),
		Providers: providers,
	})
}
