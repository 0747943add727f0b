// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
)

// ExpiringCache drops expired entries on demand.
type ExpiringCache interface {
	CleanupExpired() int
}

// CacheJanitorService periodically evicts expired entries from in-memory
// caches, which otherwise only expire lazily on read.
type CacheJanitorService struct {
	caches   map[string]ExpiringCache
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService sweeps caches every interval (default 5m).
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(caches map[string]ExpiringCache, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheJanitorService{
		caches:   caches,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheJanitorService) sweep() {
	for name, c := range s.caches {
		if n := c.CleanupExpired(); n > 0 {
			s.logger.Debug().Str("cache", name).Int("removed", n).Msg("expired cache entries removed")
		}
	}
}

// String names the service in supervisor logs.
func (s *CacheJanitorService) String() string {
	return s.name
}
