// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"sort"
	"strings"
)

// NormalizeTitle trims and lowercases a title for lookup and output.
func NormalizeTitle(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}

// FindTarget returns the first row whose normalized title equals the
// normalized query, or -1.
func FindTarget(articles []Article, title string) int {
	query := NormalizeTitle(title)
	for i := range articles {
		if NormalizeTitle(articles[i].Title) == query {
			return i
		}
	}
	return -1
}

// Score computes the composite score of row j against target row idx.
func (w Weights) Score(articles []Article, f Features, sim *SimilarityMatrix, idx, j int) float64 {
	score := sim.At(idx, j)
	if articles[j].Author == articles[idx].Author {
		score += w.Author
	}
	if articles[j].Source == articles[idx].Source {
		score += w.Source
	}
	score += w.Recency * (1 / (1 + f.Recency[j]))
	return score
}

// Rank scores every row against the target, sorts by score descending with
// ties kept in row order, and removes the target according to mode. The
// returned slice holds every remaining candidate.
func Rank(articles []Article, f Features, sim *SimilarityMatrix, idx int, w Weights, mode ExclusionMode) []Candidate {
	scored := make([]Candidate, len(articles))
	for j := range articles {
		scored[j] = Candidate{
			Index:   j,
			Score:   w.Score(articles, f, sim, idx, j),
			Article: articles[j],
		}
	}

	sort.SliceStable(scored, func(a, b int) bool {
		return scored[a].Score > scored[b].Score
	})

	if mode == ExcludePositional {
		if len(scored) == 0 {
			return scored
		}
		return scored[1:]
	}

	out := scored[:0]
	for _, c := range scored {
		if c.Index != idx {
			out = append(out, c)
		}
	}
	return out
}

// toRecommendation builds the output record for a candidate.
func toRecommendation(c Candidate, f Features) Recommendation {
	return Recommendation{
		Title:       NormalizeTitle(c.Article.Title),
		Description: c.Article.Description,
		URLToImage:  c.Article.URLToImage,
		URL:         c.Article.URL,
		Author:      c.Article.Author,
		PublishedAt: formatPublished(f.Published[c.Index], f.Valid[c.Index]),
		Source:      c.Article.Source,
		Score:       c.Score,
	}
}
