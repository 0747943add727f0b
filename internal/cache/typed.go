// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package cache

import (
	"context"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/newsrec/internal/logging"
	"github.com/tomtom215/newsrec/internal/metrics"
)

// Typed stores JSON-encoded values of type T in a Store.
type Typed[T any] struct {
	store Store
	name  string
	ttl   time.Duration
}

// NewTyped wraps store. name labels metrics and logs; ttl applies to every Set.
func NewTyped[T any](store Store, name string, ttl time.Duration) *Typed[T] {
	return &Typed[T]{store: store, name: name, ttl: ttl}
}

// Get returns the cached value for key. Backend and decode errors are
// logged and reported as a miss.
func (t *Typed[T]) Get(ctx context.Context, key string) (T, bool) {
	var zero T
	data, ok, err := t.store.Get(ctx, key)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("cache", t.name).Msg("cache read failed")
	}
	if !ok || err != nil {
		metrics.RecordCacheLookup(t.name, false)
		return zero, false
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("cache", t.name).Msg("cache entry corrupt, dropping")
		_ = t.store.Delete(ctx, key)
		metrics.RecordCacheLookup(t.name, false)
		return zero, false
	}

	metrics.RecordCacheLookup(t.name, true)
	return value, true
}

// Set stores value under key. Failures are logged, not returned.
func (t *Typed[T]) Set(ctx context.Context, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("cache", t.name).Msg("cache encode failed")
		return
	}
	if err := t.store.Set(ctx, key, data, t.ttl); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("cache", t.name).Msg("cache write failed")
	}
}
