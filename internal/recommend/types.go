// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors returned by Engine.Recommend.
var (
	// ErrMissingData means the request carried no articles or no title.
	ErrMissingData = errors.New("missing data")

	// ErrArticleNotFound means no normalized article matches the requested title.
	ErrArticleNotFound = errors.New("article not found")

	// ErrBatchTooLarge means the batch exceeds Config.MaxArticles.
	ErrBatchTooLarge = errors.New("too many articles")
)

// UnknownValue is the default for a missing author or source.
const UnknownValue = "Unknown"

// InvalidDate is reported for a missing or unparseable publication date.
const InvalidDate = "Invalid Date"

// Article is a normalized news article. Title, Description and Content are
// always non-empty; Author and Source are never empty.
type Article struct {
	Title       string
	Description string
	Content     string
	URLToImage  string
	URL         string
	Source      string
	Author      string
	PublishedAt string // raw input value
}

// Features holds the derived per-article values for one batch. All slices are
// indexed by row position in the normalized table.
type Features struct {
	Published []time.Time // zero when the date is invalid
	Valid     []bool
	Recency   []float64
	Text      []string
}

// Candidate is a scored row of the normalized table.
type Candidate struct {
	Index   int
	Score   float64
	Article Article
}

// Recommendation is one returned article.
type Recommendation struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URLToImage  string  `json:"urlToImage"`
	URL         string  `json:"url"`
	Author      string  `json:"author"`
	PublishedAt string  `json:"publishedAt"`
	Source      string  `json:"source"`
	Score       float64 `json:"score"`
}

// Request is a single recommendation request.
type Request struct {
	// Articles is the raw batch, one JSON object per article.
	Articles []map[string]any

	// Title identifies the target article; matching ignores case and surrounding whitespace.
	Title string

	// TopN is the number of results; 0 uses Config.DefaultTopN.
	TopN int

	// RequestID is propagated into logs and metadata; generated when empty.
	RequestID string
}

// Response is the result of a successful recommendation request.
type Response struct {
	Recommendations []Recommendation `json:"recommendations"`
	Metadata        ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID      string    `json:"request_id"`
	Received       int       `json:"received"`
	Normalized     int       `json:"normalized"`
	VocabularySize int       `json:"vocabulary_size"`
	TargetIndex    int       `json:"target_index"`
	Rerankers      []string  `json:"rerankers,omitempty"`
	LatencyMS      int64     `json:"latency_ms"`
	Timestamp      time.Time `json:"timestamp"`
}

// SimilarityFunc reports the similarity of two rows of the normalized table.
type SimilarityFunc func(i, j int) float64

// Reranker post-processes scored candidates (target already excluded).
type Reranker interface {
	// Name identifies the reranker in logs and metadata.
	Name() string

	// Rerank returns at most k candidates.
	Rerank(ctx context.Context, candidates []Candidate, sim SimilarityFunc, k int) []Candidate
}
