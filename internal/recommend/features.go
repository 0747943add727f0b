// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

const secondsPerDay = 24 * 60 * 60

// dateLayout is the output format for PublishedAt in recommendations.
const dateLayout = "2006-01-02"

// BuildFeatures derives recency and composite text for each article.
//
// Recency is the whole number of days between the newest valid publication
// date in the batch and each article's date. Articles with an invalid date
// get the mean recency of the valid ones. When no article has a valid date,
// every recency is 0.
func BuildFeatures(articles []Article) Features {
	n := len(articles)
	f := Features{
		Published: make([]time.Time, n),
		Valid:     make([]bool, n),
		Recency:   make([]float64, n),
		Text:      make([]string, n),
	}

	var newest time.Time
	validCount := 0
	for i := range articles {
		a := &articles[i]
		if t, ok := parsePublished(a.PublishedAt); ok {
			f.Published[i] = t
			f.Valid[i] = true
			if validCount == 0 || t.After(newest) {
				newest = t
			}
			validCount++
		}
		f.Text[i] = strings.Join([]string{a.Title, a.Description, a.Content, a.Author, a.Source}, " ")
	}

	if validCount == 0 {
		return f
	}

	var sum float64
	for i := range articles {
		if !f.Valid[i] {
			continue
		}
		// Unix seconds, since time.Sub saturates beyond ~292 years.
		f.Recency[i] = float64((newest.Unix() - f.Published[i].Unix()) / secondsPerDay)
		sum += f.Recency[i]
	}

	mean := sum / float64(validCount)
	for i := range articles {
		if !f.Valid[i] {
			f.Recency[i] = mean
		}
	}
	return f
}

// Years outside the range of nanosecond Unix timestamps count as invalid.
const (
	minPublishedYear = 1678
	maxPublishedYear = 2262
)

// parsePublished parses a publication timestamp leniently and normalizes it to UTC.
func parsePublished(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		t, err = dateparse.ParseIn(raw, time.UTC)
		if err != nil {
			return time.Time{}, false
		}
	}
	t = t.UTC()
	if y := t.Year(); y < minPublishedYear || y > maxPublishedYear {
		return time.Time{}, false
	}
	return t, true
}

// formatPublished renders a publication date for output.
func formatPublished(t time.Time, valid bool) string {
	if !valid {
		return InvalidDate
	}
	return t.Format(dateLayout)
}
