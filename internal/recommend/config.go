// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import "fmt"

// ExclusionMode controls how the target article is removed from its own results.
type ExclusionMode string

const (
	// ExcludeByIndex filters out the matched row wherever it sorts.
	ExcludeByIndex ExclusionMode = "index"

	// ExcludePositional drops the first entry of the sorted list, assuming
	// the target always sorts first.
	ExcludePositional ExclusionMode = "positional"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights are the contextual bonuses added to text similarity.
	Weights Weights `json:"weights"`

	// DefaultTopN is used when a request does not specify a count.
	DefaultTopN int `json:"default_top_n"`

	// MaxTopN caps the count a request may ask for.
	MaxTopN int `json:"max_top_n"`

	// MaxArticles bounds the raw batch size. 0 disables the check.
	MaxArticles int `json:"max_articles"`

	// Exclusion selects how the target is removed from the ranking.
	Exclusion ExclusionMode `json:"exclusion"`
}

// Weights are the score bonuses applied by the re-ranker.
type Weights struct {
	// Author is added when the candidate shares the target's author.
	Author float64 `json:"author"`

	// Source is added when the candidate shares the target's source.
	Source float64 `json:"source"`

	// Recency is scaled by 1/(1+recency days).
	Recency float64 `json:"recency"`
}

// DefaultConfig returns the standard scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Author:  0.10,
			Source:  0.02,
			Recency: 0.05,
		},
		DefaultTopN: 3,
		MaxTopN:     50,
		MaxArticles: 500,
		Exclusion:   ExcludeByIndex,
	}
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Weights.Author < 0 {
		return fmt.Errorf("weights.author must be non-negative, got %f", c.Weights.Author)
	}
	if c.Weights.Source < 0 {
		return fmt.Errorf("weights.source must be non-negative, got %f", c.Weights.Source)
	}
	if c.Weights.Recency < 0 {
		return fmt.Errorf("weights.recency must be non-negative, got %f", c.Weights.Recency)
	}
	if c.DefaultTopN <= 0 {
		return fmt.Errorf("default_top_n must be positive, got %d", c.DefaultTopN)
	}
	if c.MaxTopN < c.DefaultTopN {
		return fmt.Errorf("max_top_n (%d) must be >= default_top_n (%d)", c.MaxTopN, c.DefaultTopN)
	}
	if c.MaxArticles < 0 {
		return fmt.Errorf("max_articles must not be negative, got %d", c.MaxArticles)
	}
	switch c.Exclusion {
	case ExcludeByIndex, ExcludePositional:
	default:
		return fmt.Errorf("exclusion must be %q or %q, got %q", ExcludeByIndex, ExcludePositional, c.Exclusion)
	}
	return nil
}

// Clone returns a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
