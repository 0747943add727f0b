// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyText means the input was empty after trimming.
	ErrEmptyText = errors.New("valid text parameter is required")

	// ErrProviderFailed wraps any error from the underlying provider.
	ErrProviderFailed = errors.New("summarization failed")

	// ErrNotConfigured means no provider is available.
	ErrNotConfigured = errors.New("summarization provider not configured")
)

// Summarizer turns text into a short summary.
type Summarizer interface {
	// Name identifies the provider in metrics, logs and cache keys.
	Name() string

	// Summarize returns a summary of text.
	Summarize(ctx context.Context, text string) (string, error)
}

// Prompt builds the instruction sent to prompt-driven models.
func Prompt(text string, maxWords int) string {
	return fmt.Sprintf("Summarize the following text in %d words or less:\n\n%s", maxWords, text)
}

// Disabled is the Summarizer used when no provider is configured.
type Disabled struct{}

// Name implements Summarizer.
func (Disabled) Name() string { return "none" }

// Summarize always returns ErrNotConfigured.
func (Disabled) Summarize(context.Context, string) (string, error) {
	return "", ErrNotConfigured
}

// wordCount counts whitespace-separated words.
func wordCount(text string) int {
	return len(strings.Fields(text))
}
