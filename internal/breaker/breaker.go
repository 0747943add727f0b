// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

// Package breaker wraps sony/gobreaker with logging and Prometheus metrics
// for outbound calls to summarization providers and NewsAPI.
//
// The breaker uses real time for its interval and timeout. Tests drive it
// with failing functions rather than a fake clock.
package breaker

import (
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/newsrec/internal/logging"
	"github.com/tomtom215/newsrec/internal/metrics"
)

// ErrCircuitOpen is returned when a call is rejected without being attempted.
var ErrCircuitOpen = errors.New("circuit breaker open")

// Settings tunes a Breaker.
type Settings struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32

	// Interval resets counts while closed.
	Interval time.Duration

	// Timeout is how long the breaker stays open before probing.
	Timeout time.Duration

	// MinRequests must be seen before the failure ratio is considered.
	MinRequests uint32

	// FailureRatio at or above which the breaker opens.
	FailureRatio float64

	// IsSuccessful classifies errors. Errors it accepts do not count as
	// failures. nil treats every error as a failure.
	IsSuccessful func(err error) bool
}

// DefaultSettings opens after 60% failures over at least 10 requests and
// probes again after 2 minutes.
func DefaultSettings() Settings {
	return Settings{
		MaxRequests:  3,
		Interval:     time.Minute,
		Timeout:      2 * time.Minute,
		MinRequests:  10,
		FailureRatio: 0.6,
	}
}

// Breaker guards calls returning T.
type Breaker[T any] struct {
	cb   *gobreaker.CircuitBreaker[T]
	name string
}

// New creates a named breaker. The name labels metrics and log events.
func New[T any](name string, s Settings) *Breaker[T] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	logger := logging.WithComponent("breaker").With().Str("breaker", name).Logger()

	cb := gobreaker.NewCircuitBreaker[T](gobreaker.Settings{
		Name:         name,
		MaxRequests:  s.MaxRequests,
		Interval:     s.Interval,
		Timeout:      s.Timeout,
		IsSuccessful: s.IsSuccessful,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < s.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio < s.FailureRatio {
				return false
			}
			logger.Warn().
				Uint32("failures", counts.TotalFailures).
				Float64("failure_rate", failureRatio*100).
				Msg("opening circuit")
			return true
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().Str("from", from.String()).Str("to", to.String()).Msg("circuit state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &Breaker[T]{cb: cb, name: name}
}

// Name returns the breaker name.
func (b *Breaker[T]) Name() string {
	return b.name
}

// State returns the current state as "closed", "half-open" or "open".
func (b *Breaker[T]) State() string {
	return b.cb.State().String()
}

// Execute runs fn unless the circuit is open. A rejected call returns an
// error wrapping ErrCircuitOpen.
func (b *Breaker[T]) Execute(fn func() (T, error)) (T, error) {
	result, err := b.cb.Execute(fn)
	if err == nil {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
		return result, nil
	}

	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
		var zero T
		return zero, fmt.Errorf("%w: %s: %v", ErrCircuitOpen, b.name, err)
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
	counts := b.cb.Counts()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
	return result, err
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
