// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package summarize

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
)

// fakeSummarizer records calls and returns a canned or derived summary.
type fakeSummarizer struct {
	name  string
	err   error
	calls atomic.Int32

	mu     sync.Mutex
	inputs []string
}

func (f *fakeSummarizer) Name() string {
	if f.name == "" {
		return "fake"
	}
	return f.name
}

func (f *fakeSummarizer) Summarize(ctx context.Context, text string) (string, error) {
	f.calls.Add(1)
	f.mu.Lock()
	f.inputs = append(f.inputs, text)
	f.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if f.err != nil {
		return "", f.err
	}
	words := strings.Fields(text)
	return "summary of " + words[0], nil
}

func (f *fakeSummarizer) recorded() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.inputs...)
}

var errFake = errors.New("upstream exploded")
