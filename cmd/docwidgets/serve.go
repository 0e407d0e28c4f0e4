// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/olegiv/docwidgets/internal/cache"
	"github.com/olegiv/docwidgets/internal/docs"
	"github.com/olegiv/docwidgets/internal/handler"
	"github.com/olegiv/docwidgets/internal/logging"
	"github.com/olegiv/docwidgets/internal/markdown"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve widget fragments, the JSON API, and markdown docs over HTTP",
		Long: `Start the HTTP server.

Environment Variables:
  DOCW_SERVER_HOST       Listen host (default: localhost)
  DOCW_SERVER_PORT       Server port (default: 8080)
  DOCW_ENV               Environment: development|production (default: development)
  DOCW_LOG_LEVEL         debug|info|warn|error (default: info)
  DOCW_LOG_FORMAT        text|json (default: text in development, json otherwise)
  DOCW_DOCS_DIR          Markdown documentation directory (default: ./docs)
  DOCW_ICON_CDN          Base URL of the icon CDN
  DOCW_RATE_LIMIT_RPS    Requests per second per client IP (default: 20)
  DOCW_RATE_LIMIT_BURST  Burst size per client IP (default: 40)
  DOCW_CACHE_ENABLED     Cache rendered docs pages (default: true)
  DOCW_CACHE_TTL         Lifetime of a cached page (default: 10m)
  DOCW_CACHE_MAX_ENTRIES Maximum pages held in memory (default: 1000)
  DOCW_REDIS_URL         Redis URL for a shared page cache (optional)
  DOCW_WATCH_DOCS        Drop cached pages when their files change (default: true)`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServer(cmd.Context())
		},
	}
}

func runServer(parent context.Context) error {
	cfg, renderer, err := loadRenderer()
	if err != nil {
		return err
	}

	logger := logging.New(cfg.LogLevel, cfg.ResolvedLogFormat(), os.Stdout)
	slog.SetDefault(logger)

	info := versionInfo()
	library := docs.NewLibrary(cfg.DocsDir, markdown.New(renderer), cfg.IconCDN)
	docsAvailable := true
	if _, err := os.Stat(cfg.DocsDir); err != nil {
		docsAvailable = false
		slog.Warn("docs directory not accessible, /docs will be empty", "dir", cfg.DocsDir, "error", err)
	}

	var pageCache cache.Cache
	if cfg.CacheEnabled {
		pageCache, err = cache.New(parent, cache.Config{
			RedisURL:   cfg.RedisURL,
			DefaultTTL: cfg.CacheTTL,
			MaxSize:    cfg.CacheMaxEntries,
		})
		if err != nil {
			return fmt.Errorf("initializing cache: %w", err)
		}
		defer func() {
			if err := pageCache.Close(); err != nil {
				slog.Error("error closing cache", "error", err)
			}
		}()
		library.WithCache(pageCache)
		slog.Info("page cache enabled", "redis", cfg.RedisURL != "", "ttl", cfg.CacheTTL)

		if cfg.WatchDocs && docsAvailable {
			watcher, err := docs.NewWatcher(library, logger)
			if err != nil {
				slog.Warn("docs watcher disabled", "error", err)
			} else {
				defer func() { _ = watcher.Close() }()
			}
		}
	}

	r := handler.NewRouter(handler.Deps{
		Config:   cfg,
		Logger:   logger,
		Renderer: renderer,
		Library:  library,
		Cache:    pageCache,
		Version:  info,
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env, "version", info.Version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	slog.Info("shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
