// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// contentGenerator is the subset of *genai.Models used here.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini summarizes with a Gemini model.
type Gemini struct {
	models   contentGenerator
	model    string
	maxWords int
}

// NewGemini creates a Gemini API client.
func NewGemini(ctx context.Context, apiKey, model string, maxWords int) (*Gemini, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini: %w: GEMINI_API_KEY is empty", ErrNotConfigured)
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}
	return newGeminiWithModels(client.Models, model, maxWords), nil
}

func newGeminiWithModels(models contentGenerator, model string, maxWords int) *Gemini {
	return &Gemini{models: models, model: model, maxWords: maxWords}
}

// Name implements Summarizer.
func (g *Gemini) Name() string { return "gemini" }

// Summarize sends a single summarization prompt.
func (g *Gemini) Summarize(ctx context.Context, text string) (string, error) {
	resp, err := g.models.GenerateContent(ctx, g.model, genai.Text(Prompt(text, g.maxWords)), nil)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	summary := strings.TrimSpace(resp.Text())
	if summary == "" {
		return "", errors.New("gemini: empty response")
	}
	return summary, nil
}

var _ Summarizer = (*Gemini)(nil)
