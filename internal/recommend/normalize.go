// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package recommend

import (
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// Normalize converts a raw article batch into typed articles. It is the only
// place that tolerates loosely typed input.
//
// Records missing a title, description or content (absent, null or blank)
// are dropped. A blank author or source becomes UnknownValue. A source object
// is flattened to its "name" field. Fields other than the eight known ones
// are ignored. Order of the surviving records is preserved.
func Normalize(raw []map[string]any) []Article {
	articles := make([]Article, 0, len(raw))
	for _, record := range raw {
		if record == nil {
			continue
		}
		title, ok1 := textField(record, "title")
		description, ok2 := textField(record, "description")
		content, ok3 := textField(record, "content")
		if !ok1 || !ok2 || !ok3 {
			continue
		}

		author, ok := textField(record, "author")
		if !ok {
			author = UnknownValue
		}

		urlToImage, _ := textField(record, "urlToImage")
		url, _ := textField(record, "url")
		publishedAt, _ := textField(record, "publishedAt")

		articles = append(articles, Article{
			Title:       title,
			Description: description,
			Content:     content,
			URLToImage:  urlToImage,
			URL:         url,
			Source:      sourceName(record["source"]),
			Author:      author,
			PublishedAt: publishedAt,
		})
	}
	return articles
}

// textField returns the string form of record[key]. ok is false when the
// value is absent, null or blank.
func textField(record map[string]any, key string) (string, bool) {
	value, present := record[key]
	if !present || value == nil {
		return "", false
	}
	s := stringify(value)
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}

// sourceName flattens "source" which may be a plain string or an object
// like {"id": "bbc-news", "name": "BBC News"}.
func sourceName(value any) string {
	if value == nil {
		return UnknownValue
	}
	if obj, ok := value.(map[string]any); ok {
		if name, present := obj["name"]; present {
			if name == nil {
				return UnknownValue
			}
			value = name
		}
	}
	s := stringify(value)
	if strings.TrimSpace(s) == "" {
		return UnknownValue
	}
	return s
}

// stringify renders any decoded JSON value as a string.
func stringify(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(encoded)
	}
}
