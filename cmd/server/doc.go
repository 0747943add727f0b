// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

// Package main is the newsrec server.
//
// Newsrec ranks a batch of news articles by similarity to a target article,
// summarizes text through a pluggable provider, and proxies NewsAPI listings
// and article extraction for its web client.
//
// # Startup
//
//  1. Configuration: defaults, config.yaml, environment (koanf v2)
//  2. Logging: zerolog, plus a slog bridge for the supervisor
//  3. Recommendation engine, with MMR diversity when RECOMMEND_DIVERSITY_LAMBDA < 1
//  4. Cache: in-memory LRU or redis for summaries
//  5. Summarizer: gemini, huggingface or none, optionally chunked
//  6. NewsAPI client and article fetcher
//  7. HTTP server and cache janitor under a suture tree
//
// # Example
//
//	export GEMINI_API_KEY=...
//	export NEWS_API_KEY=...
//	./newsrec
//
// SIGINT and SIGTERM stop the tree; in-flight requests get
// SERVER_SHUTDOWN_TIMEOUT to finish.
package main
