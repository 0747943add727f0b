// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

/*
Package summarize produces short summaries of article text through a hosted
language model.

Providers implement Summarizer:

  - Gemini: single-shot prompt to a Gemini model via google.golang.org/genai
  - HuggingFace: hosted inference endpoint for a summarization model
  - Chunked: splits long input, summarizes chunks in parallel, then
    summarizes the joined partials

Service adds input validation, a result cache, a circuit breaker and
metrics around one Summarizer:

	provider, _ := summarize.NewGemini(ctx, apiKey, "gemini-2.5-flash", 130)
	svc := summarize.NewService(provider, summarize.ServiceOptions{
	    Cache:   cache.NewLRUCache(1000, time.Hour),
	    Timeout: 30 * time.Second,
	})
	res, err := svc.Summarize(ctx, text)

Errors from Service wrap ErrEmptyText, ErrNotConfigured, ErrProviderFailed
or breaker.ErrCircuitOpen.
*/
package summarize
