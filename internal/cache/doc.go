// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

/*
Package cache provides the byte-oriented key/value stores used for summary
and news caching.

Two backends implement Store:

  - LRUCache: in-process, bounded, least-recently-used eviction with TTL
  - RedisStore: shared across replicas, TTL enforced by Redis

Typed layers JSON encoding on top of any Store and records hit/miss metrics:

	store, err := cache.NewStore(cache.Options{Backend: "memory", MaxEntries: 1000})
	summaries := cache.NewTyped[Summary](store, "summary", time.Hour)

	if s, ok := summaries.Get(ctx, key); ok {
	    return s
	}
	summaries.Set(ctx, key, s)

Backend errors never surface from Typed: a failed read is a miss and a
failed write is logged and dropped, so a cache outage degrades to
recomputation.
*/
package cache
