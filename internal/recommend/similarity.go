// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// SimilarityMatrix is the symmetric pairwise cosine similarity of a batch.
type SimilarityMatrix struct {
	n    int
	data *mat.SymDense // nil when there is nothing to compare
}

// CosineSimilarity computes pairwise cosine similarity over rows of an
// L2-normalized matrix with n rows. Entries are clamped to [0, 1] and the
// diagonal is exactly 1 for every row with a non-zero vector. A nil matrix
// yields an all-zero n×n result.
func CosineSimilarity(vectors *mat.Dense, n int) *SimilarityMatrix {
	if vectors == nil || n == 0 {
		return &SimilarityMatrix{n: n}
	}

	sym := mat.NewSymDense(n, nil)
	sym.SymRankK(sym, 1, vectors)

	for i := 0; i < n; i++ {
		row := vectors.RowView(i)
		nonZero := mat.Dot(row, row) > 0
		for j := i; j < n; j++ {
			switch {
			case i == j && nonZero:
				sym.SetSym(i, j, 1)
			default:
				sym.SetSym(i, j, math.Max(0, math.Min(1, sym.At(i, j))))
			}
		}
	}
	return &SimilarityMatrix{n: n, data: sym}
}

// Size returns the number of rows.
func (s *SimilarityMatrix) Size() int {
	return s.n
}

// At returns the similarity of rows i and j.
func (s *SimilarityMatrix) At(i, j int) float64 {
	if s.data == nil {
		return 0
	}
	return s.data.At(i, j)
}

// Row returns a copy of row i.
func (s *SimilarityMatrix) Row(i int) []float64 {
	row := make([]float64, s.n)
	for j := range row {
		row[j] = s.At(i, j)
	}
	return row
}
