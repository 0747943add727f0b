// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package summarize

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Chunked summarizes long input by splitting it into word chunks,
// summarizing them concurrently, then summarizing the joined partials.
// Input at or below the chunk size goes straight to the inner provider.
type Chunked struct {
	inner          Summarizer
	chunkWords     int
	maxConcurrency int
}

// NewChunked wraps inner. chunkWords <= 0 disables splitting.
func NewChunked(inner Summarizer, chunkWords, maxConcurrency int) *Chunked {
	if maxConcurrency < 1 {
		maxConcurrency = 1
	}
	return &Chunked{inner: inner, chunkWords: chunkWords, maxConcurrency: maxConcurrency}
}

// Name reports the inner provider name.
func (c *Chunked) Name() string { return c.inner.Name() }

// Summarize implements Summarizer.
func (c *Chunked) Summarize(ctx context.Context, text string) (string, error) {
	chunks := splitWords(text, c.chunkWords)
	if len(chunks) <= 1 {
		return c.inner.Summarize(ctx, text)
	}

	partials := make([]string, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.maxConcurrency)
	for i, chunk := range chunks {
		g.Go(func() error {
			s, err := c.inner.Summarize(gctx, chunk)
			if err != nil {
				return fmt.Errorf("chunk %d/%d: %w", i+1, len(chunks), err)
			}
			partials[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return "", err
	}

	return c.inner.Summarize(ctx, strings.Join(partials, "\n\n"))
}

// splitWords splits text into chunks of at most n words. n <= 0 returns the
// text unchanged as a single chunk.
func splitWords(text string, n int) []string {
	words := strings.Fields(text)
	if n <= 0 || len(words) <= n {
		return []string{text}
	}
	chunks := make([]string, 0, (len(words)+n-1)/n)
	for start := 0; start < len(words); start += n {
		end := min(start+n, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}

var _ Summarizer = (*Chunked)(nil)
