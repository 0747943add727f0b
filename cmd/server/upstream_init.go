// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsrec/internal/cache"
	"github.com/tomtom215/newsrec/internal/config"
	"github.com/tomtom215/newsrec/internal/newsapi"
	"github.com/tomtom215/newsrec/internal/scrape"
)

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initNewsAPI(cfg *config.Config, store cache.Store, logger zerolog.Logger) *newsapi.Client {
	client := newsapi.NewClient(newsapi.Options{
		APIKey:            cfg.NewsAPI.APIKey,
		BaseURL:           cfg.NewsAPI.BaseURL,
		Timeout:           cfg.NewsAPI.Timeout,
		RequestsPerSecond: cfg.NewsAPI.RequestsPerSecond,
		Cache:             store,
		CacheTTL:          cfg.NewsAPI.CacheTTL,
		Logger:            logger,
	})
	if !client.Configured() {
		logger.Warn().Msg("NEWS_API_KEY not set, news endpoints will answer 503")
	}
	return client
}

//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initScraper(cfg *config.Config, logger zerolog.Logger) *scrape.Fetcher {
	return scrape.NewFetcher(scrape.Options{
		Timeout:      cfg.Scrape.Timeout,
		MaxBodyBytes: cfg.Scrape.MaxBodyBytes,
		UserAgent:    cfg.Scrape.UserAgent,
		Logger:       logger,
	})
}
