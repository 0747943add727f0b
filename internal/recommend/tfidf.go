// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// tokenPattern matches runs of two or more word characters.
var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}_]{2,}`)

// Tokenize lowercases text and splits it into word tokens of at least two characters.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(strings.ToLower(text), -1)
}

// Vectorizer builds TF-IDF vectors for one corpus. A Vectorizer is built per
// request and never shared.
type Vectorizer struct {
	stopWords map[string]struct{}
	vocab     map[string]int
	terms     []string
	idf       []float64
}

// NewVectorizer returns a vectorizer that drops the given stop words from the
// vocabulary. A nil set means EnglishStopWords.
func NewVectorizer(stopWords map[string]struct{}) *Vectorizer {
	if stopWords == nil {
		stopWords = EnglishStopWords
	}
	return &Vectorizer{stopWords: stopWords}
}

// VocabularySize returns the number of distinct terms seen by FitTransform.
func (v *Vectorizer) VocabularySize() int {
	return len(v.terms)
}

// Terms returns the vocabulary in column order.
func (v *Vectorizer) Terms() []string {
	return v.terms
}

// FitTransform learns the vocabulary and IDF weights from docs and returns
// the document-term matrix with L2-normalized rows. IDF is smoothed:
//
//	idf(t) = ln((1 + n) / (1 + df(t))) + 1
//
// It returns nil when docs is empty or the vocabulary is empty.
func (v *Vectorizer) FitTransform(docs []string) *mat.Dense {
	counts := make([]map[string]int, len(docs))
	df := make(map[string]int)
	for i, doc := range docs {
		tf := make(map[string]int)
		for _, tok := range Tokenize(doc) {
			if _, stop := v.stopWords[tok]; stop {
				continue
			}
			tf[tok]++
		}
		for term := range tf {
			df[term]++
		}
		counts[i] = tf
	}

	v.terms = make([]string, 0, len(df))
	for term := range df {
		v.terms = append(v.terms, term)
	}
	sort.Strings(v.terms)

	v.vocab = make(map[string]int, len(v.terms))
	v.idf = make([]float64, len(v.terms))
	n := float64(len(docs))
	for col, term := range v.terms {
		v.vocab[term] = col
		v.idf[col] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}

	if len(docs) == 0 || len(v.terms) == 0 {
		return nil
	}

	m := mat.NewDense(len(docs), len(v.terms), nil)
	for row, tf := range counts {
		var norm float64
		for term, c := range tf {
			w := float64(c) * v.idf[v.vocab[term]]
			m.Set(row, v.vocab[term], w)
			norm += w * w
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for term := range tf {
			col := v.vocab[term]
			m.Set(row, col, m.At(row, col)/norm)
		}
	}
	return m
}
