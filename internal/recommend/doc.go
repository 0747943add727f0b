// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

// Package recommend implements content-based recommendations over a batch of
// news articles supplied with each request.
//
// # Pipeline
//
// Every call to Engine.Recommend runs the same four stages from scratch:
//
//   - Normalize: raw JSON records become typed Article values. Records
//     without a title, description or content are dropped; author and source
//     default to "Unknown"; a source object is flattened to its name.
//   - BuildFeatures: recency in days relative to the newest article in the
//     batch, and the composite text used for similarity.
//   - Similarity: TF-IDF vectors (English stop words removed, smoothed IDF,
//     L2-normalized rows) and the pairwise cosine similarity matrix.
//   - Rank: the target row is scored against every row with author, source
//     and recency bonuses, stably sorted, and the top N are returned.
//
// Nothing is cached between requests. The engine is safe for concurrent use.
//
// # Scoring
//
// For target t and candidate j:
//
//	score(j) = sim(t, j)
//	         + AuthorBonus   if author(j) == author(t)
//	         + SourceBonus   if source(j) == source(t)
//	         + RecencyWeight / (1 + recency(j))
//
// The defaults are 0.10, 0.02 and 0.05.
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	resp, err := engine.Recommend(ctx, recommend.Request{
//	    Articles: articles,
//	    Title:    "Big News",
//	})
//	if errors.Is(err, recommend.ErrArticleNotFound) { ... }
//
// Optional rerankers (see the reranking subpackage) run after scoring.
package recommend
