// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package reranking

import (
	"context"

	"github.com/tomtom215/newsrec/internal/recommend"
)

// MMR implements Maximal Marginal Relevance reranking over article text
// similarity. Each step picks the candidate maximizing
//
//	lambda * score(i) - (1-lambda) * max(sim(i, s)) for s in selected
//
// so near-duplicate stories from different outlets do not crowd the list.
// lambda = 1 keeps the original order.
type MMR struct {
	lambda float64
}

// NewMMR creates an MMR reranker; lambda is clamped to [0, 1].
func NewMMR(lambda float64) *MMR {
	if lambda < 0 {
		lambda = 0
	}
	if lambda > 1 {
		lambda = 1
	}
	return &MMR{lambda: lambda}
}

// Name returns the reranker identifier.
func (m *MMR) Name() string {
	return "mmr"
}

// Rerank selects up to k candidates greedily.
//
//nolint:gocritic // rangeValCopy: Candidate copied in range for clarity
func (m *MMR) Rerank(ctx context.Context, candidates []recommend.Candidate, sim recommend.SimilarityFunc, k int) []recommend.Candidate {
	if len(candidates) == 0 || k <= 0 {
		return candidates
	}
	if k > len(candidates) {
		k = len(candidates)
	}
	if m.lambda >= 1 || sim == nil {
		return candidates[:k]
	}

	selected := make([]recommend.Candidate, 0, k)
	taken := make([]bool, len(candidates))

	for len(selected) < k {
		if ctx.Err() != nil {
			break
		}
		best := -1
		var bestScore float64
		for i, c := range candidates {
			if taken[i] {
				continue
			}
			maxSim := 0.0
			for _, s := range selected {
				if v := sim(c.Index, s.Index); v > maxSim {
					maxSim = v
				}
			}
			score := m.lambda*c.Score - (1-m.lambda)*maxSim
			if best < 0 || score > bestScore {
				best, bestScore = i, score
			}
		}
		if best < 0 {
			break
		}
		taken[best] = true
		selected = append(selected, candidates[best])
	}
	return selected
}

var _ recommend.Reranker = (*MMR)(nil)
