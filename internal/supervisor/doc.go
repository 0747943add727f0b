// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

// Package supervisor runs newsrec's long-lived services under a suture tree.
//
// The tree has two layers so a crashing background job cannot take the API
// down with it:
//
//	newsrec
//	├── maintenance-layer   cache janitor
//	└── api-layer           HTTP server
//
// Lifecycle events are logged through sutureslog, bridged to zerolog by
// logging.NewSlogLogger.
package supervisor
