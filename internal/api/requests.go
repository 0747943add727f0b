// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package api

// Request bodies and query parameters are validated with
// go-playground/validator tags before any work is done.

// RecommendRequest is the body of POST /api/v1/recommend.
//
// Articles is kept loosely typed: entries that are not JSON objects are
// dropped, and field-level problems are handled by the normalizer.
type RecommendRequest struct {
	Articles []any  `json:"articles"`
	Title    string `json:"title"`
	TopN     int    `json:"top_n" validate:"min=0"`
}

// SummarizeRequest is the body of POST /api/v1/summarize. Text is any so a
// non-string value can be rejected with the same message as a missing one.
type SummarizeRequest struct {
	Text any `json:"text"`
}

// NewsRequest holds the query parameters of GET /api/v1/news.
type NewsRequest struct {
	Query    string `query:"q" validate:"max=500"`
	Language string `query:"language" validate:"omitempty,len=2,alpha"`
	SortBy   string `query:"sort_by" validate:"omitempty,oneof=relevancy popularity publishedAt"`
	PageSize int    `query:"page_size" validate:"min=1,max=100"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
}

// TrendingRequest holds the query parameters of GET /api/v1/news/trending.
type TrendingRequest struct {
	Country  string `query:"country" validate:"iso3166_1_alpha2"`
	Category string `query:"category" validate:"omitempty,oneof=business entertainment general health science sports technology"`
	Limit    int    `query:"limit" validate:"min=1,max=100"`
}

// ScrapeRequest holds the query parameters of GET /api/v1/scrape.
type ScrapeRequest struct {
	URL string `query:"url" validate:"required,http_url"`
}
