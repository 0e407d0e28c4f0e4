// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package handler provides the HTTP handlers and router of the widget service.
package handler

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/olegiv/docwidgets/internal/cache"
	"github.com/olegiv/docwidgets/internal/config"
	"github.com/olegiv/docwidgets/internal/docs"
	"github.com/olegiv/docwidgets/internal/middleware"
	"github.com/olegiv/docwidgets/internal/render"
	"github.com/olegiv/docwidgets/internal/version"
)

// requestTimeout bounds the time spent rendering a single response.
const requestTimeout = 10 * time.Second

// Deps holds everything the router needs.
type Deps struct {
	Config   *config.Config
	Logger   *slog.Logger
	Renderer *render.Renderer
	Library  *docs.Library
	Cache    cache.Cache // optional, reported by /health
	Version  version.Info
}

// NewRouter builds the chi router with middleware and routes.
func NewRouter(d Deps) chi.Router {
	logger := d.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(middleware.SecurityHeaders(middleware.DefaultSecurityHeadersConfig(d.Config.IsDevelopment(), d.Renderer.IconCDN())))

	limiter := middleware.NewRateLimiter(d.Config.RateLimitRPS, d.Config.RateLimitBurst)
	health := NewHealthHandler(d.Version, d.Config.DocsDir, d.Cache)
	widgets := NewWidgetHandler(d.Renderer)
	guides := NewDocsHandler(d.Renderer, d.Library, d.Version)

	r.Get("/health", health.Health)

	r.Group(func(r chi.Router) {
		r.Use(limiter.HTMLMiddleware())
		r.Get("/widgets/menu-trail", widgets.MenuTrailHTML)
		r.Get("/widgets/shortcut", widgets.ShortcutHTML)
		r.Get("/docs/{slug}", guides.Guide)
	})

	r.Group(func(r chi.Router) {
		r.Use(limiter.Middleware())
		r.Get("/api/menu-trail", widgets.MenuTrailJSON)
		r.Get("/api/shortcut", widgets.ShortcutJSON)
		r.Get("/docs", guides.Index)
	})

	return r
}
