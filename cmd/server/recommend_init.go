// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package main

import (
	"github.com/rs/zerolog"

	"github.com/tomtom215/newsrec/internal/config"
	"github.com/tomtom215/newsrec/internal/recommend"
	"github.com/tomtom215/newsrec/internal/recommend/reranking"
)

// buildEngineConfig maps the recommend config section onto the engine config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	engineCfg := recommend.DefaultConfig()
	engineCfg.Weights = recommend.Weights{
		Author:  cfg.Recommend.AuthorBonus,
		Source:  cfg.Recommend.SourceBonus,
		Recency: cfg.Recommend.RecencyWeight,
	}
	engineCfg.DefaultTopN = cfg.Recommend.TopN
	engineCfg.MaxTopN = cfg.Recommend.MaxTopN
	engineCfg.MaxArticles = cfg.Recommend.MaxArticles
	engineCfg.Exclusion = recommend.ExclusionMode(cfg.Recommend.ExclusionMode)
	return engineCfg
}

// initRecommend creates the engine and registers the diversity re-ranker
// when configured.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initRecommend(cfg *config.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	engine, err := recommend.NewEngine(buildEngineConfig(cfg), logger)
	if err != nil {
		return nil, err
	}

	if lambda := cfg.Recommend.DiversityLambda; lambda < 1 {
		engine.RegisterReranker(reranking.NewMMR(lambda))
		logger.Info().Float64("lambda", lambda).Msg("MMR diversity re-ranking enabled")
	}

	logger.Info().
		Int("top_n", cfg.Recommend.TopN).
		Int("max_articles", cfg.Recommend.MaxArticles).
		Str("exclusion", cfg.Recommend.ExclusionMode).
		Msg("recommendation engine ready")
	return engine, nil
}
