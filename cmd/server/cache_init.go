// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package main

import (
	"errors"

	"github.com/tomtom215/newsrec/internal/cache"
	"github.com/tomtom215/newsrec/internal/config"
	"github.com/tomtom215/newsrec/internal/supervisor/services"
)

const newsCacheEntries = 256

// cacheSet holds the process caches.
type cacheSet struct {
	// Summaries is the configured backend (memory or redis).
	Summaries cache.Store

	// News is always in-memory; listings are short-lived.
	News *cache.LRUCache
}

func initCaches(cfg *config.Config) (*cacheSet, error) {
	summaries, err := cache.NewStore(cache.Options{
		Backend:    cfg.Cache.Backend,
		MaxEntries: cfg.Cache.MaxEntries,
		DefaultTTL: cfg.Summarize.CacheTTL,
		RedisURL:   cfg.Cache.RedisURL,
		KeyPrefix:  cfg.Cache.KeyPrefix,
	})
	if err != nil {
		return nil, err
	}
	return &cacheSet{
		Summaries: summaries,
		News:      cache.NewLRUCache(newsCacheEntries, cfg.NewsAPI.CacheTTL),
	}, nil
}

// Expiring returns the in-memory caches the janitor should sweep.
func (c *cacheSet) Expiring() map[string]services.ExpiringCache {
	out := map[string]services.ExpiringCache{"news": c.News}
	if lru, ok := c.Summaries.(*cache.LRUCache); ok {
		out["summary"] = lru
	}
	return out
}

func (c *cacheSet) Close() error {
	return errors.Join(c.Summaries.Close(), c.News.Close())
}
