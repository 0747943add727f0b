// Newsrec - News Recommendation and Summarization Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/newsrec

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/newsrec/internal/api"
	"github.com/tomtom215/newsrec/internal/config"
	"github.com/tomtom215/newsrec/internal/logging"
	"github.com/tomtom215/newsrec/internal/supervisor"
	"github.com/tomtom215/newsrec/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
	})
	logger := logging.Logger()

	logger.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("summarizer", cfg.Summarize.Provider).
		Str("cache", cfg.Cache.Backend).
		Msg("starting newsrec")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logging.Error().Err(err).Msg("newsrec stopped with error")
		stop()
		os.Exit(1)
	}
	logging.Info().Msg("newsrec stopped")
}

func run(ctx context.Context, cfg *config.Config) error {
	logger := logging.Logger()

	engine, err := initRecommend(cfg, logger)
	if err != nil {
		return fmt.Errorf("recommendation engine: %w", err)
	}

	caches, err := initCaches(cfg)
	if err != nil {
		return fmt.Errorf("cache: %w", err)
	}
	defer caches.Close()

	summarizer, err := initSummarizer(ctx, cfg, caches.Summaries, logger)
	if err != nil {
		return fmt.Errorf("summarizer: %w", err)
	}

	news := initNewsAPI(cfg, caches.News, logger)
	scraper := initScraper(cfg, logger)

	handler := api.NewHandler(api.HandlerConfig{
		Version:             version,
		RecommendTimeout:    cfg.Server.Timeout,
		NewsDefaultQuery:    cfg.NewsAPI.DefaultQuery,
		NewsDefaultCountry:  cfg.NewsAPI.DefaultCountry,
		NewsDefaultPageSize: cfg.NewsAPI.DefaultPageSize,
	}, api.Dependencies{
		Engine:     engine,
		Summarizer: summarizer,
		News:       news,
		Scraper:    scraper,
		Cache:      caches.Summaries,
	})

	mwCfg := api.DefaultChiMiddlewareConfig()
	mwCfg.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mwCfg.RateLimitRequests = cfg.Security.RateLimitReqs
	mwCfg.RateLimitWindow = cfg.Security.RateLimitWindow
	mwCfg.RateLimitDisabled = cfg.Security.RateLimitDisabled
	router := api.NewRouter(handler, api.NewChiMiddleware(mwCfg))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		// Summaries and scrapes wait on upstreams, so writes get extra room.
		WriteTimeout: cfg.Server.Timeout + cfg.Summarize.Timeout,
		IdleTimeout:  60 * time.Second,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("supervisor: %w", err)
	}
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logger))
	if expiring := caches.Expiring(); len(expiring) > 0 {
		tree.AddMaintenanceService(services.NewCacheJanitorService(expiring, 5*time.Minute, logger))
	}

	err = <-tree.ServeBackground(ctx)

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logger.Warn().Str("service", svc.Name).Msg("service did not stop in time")
		}
	}
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
