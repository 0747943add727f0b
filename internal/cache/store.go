// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package cache

import (
	"context"
	"crypto/sha256"
	"fmt"
	"strings"
	"time"

	"github.com/goccy/go-json"
)

// Store is a key/value store with per-entry expiration.
type Store interface {
	// Get returns the value and true if the key exists and has not expired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores value under key. A ttl <= 0 uses the store default.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Ping reports whether the backend is reachable.
	Ping(ctx context.Context) error

	// Close releases backend resources.
	Close() error
}

// Options selects and configures a Store.
type Options struct {
	// Backend is "memory" or "redis".
	Backend string

	// MaxEntries bounds the memory backend.
	MaxEntries int

	// DefaultTTL applies when Set is called with ttl <= 0.
	DefaultTTL time.Duration

	// RedisURL is a redis:// or rediss:// URL for the redis backend.
	RedisURL string

	// KeyPrefix namespaces keys in a shared redis.
	KeyPrefix string
}

// NewStore creates the backend named by opts.Backend.
func NewStore(opts Options) (Store, error) {
	switch strings.ToLower(opts.Backend) {
	case "", "memory":
		return NewLRUCache(opts.MaxEntries, opts.DefaultTTL), nil
	case "redis":
		return NewRedisStore(opts.RedisURL, opts.KeyPrefix, opts.DefaultTTL)
	default:
		return nil, fmt.Errorf("unknown cache backend %q", opts.Backend)
	}
}

// GenerateKey builds a compact key from a namespace and any JSON-encodable
// parameters.
//
//	key := cache.GenerateKey("summary", []string{provider, text})
func GenerateKey(namespace string, params any) string {
	data, err := json.Marshal(params)
	if err != nil {
		data = []byte(fmt.Sprintf("%v", params))
	}
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%s:%x", namespace, hash[:16])
}
