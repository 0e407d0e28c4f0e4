// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/olegiv/docwidgets/internal/cache"
	"github.com/olegiv/docwidgets/internal/version"
)

const cachePingTimeout = 2 * time.Second

// HealthHandler handles health check requests.
type HealthHandler struct {
	version   version.Info
	docsDir   string
	cache     cache.Cache
	startTime time.Time
}

// NewHealthHandler creates a new health handler.
// c may be nil when page caching is disabled.
func NewHealthHandler(info version.Info, docsDir string, c cache.Cache) *HealthHandler {
	return &HealthHandler{version: info, docsDir: docsDir, cache: c, startTime: time.Now()}
}

// HealthStatus is the /health response.
type HealthStatus struct {
	Status    string           `json:"status"`
	Timestamp time.Time        `json:"timestamp"`
	Uptime    string           `json:"uptime"`
	Version   version.Info     `json:"version"`
	Checks    map[string]Check `json:"checks"`
}

// Check represents a single health check result.
type Check struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Health handles GET /health. Widget endpoints depend on neither the docs
// directory nor the cache, so failing checks degrade the status while the
// response stays 200.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	checks := map[string]Check{"docs": h.checkDocsDir()}
	if h.cache != nil {
		checks["cache"] = h.checkCache(r.Context())
	}

	status := "healthy"
	for _, c := range checks {
		if c.Status != "healthy" {
			status = "degraded"
		}
	}

	writeJSON(w, http.StatusOK, HealthStatus{
		Status:    status,
		Timestamp: time.Now().UTC(),
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Version:   h.version,
		Checks:    checks,
	})
}

func (h *HealthHandler) checkCache(ctx context.Context) Check {
	p, ok := h.cache.(cache.Pinger)
	if !ok {
		return Check{Status: "healthy"}
	}
	ctx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()
	if err := p.Ping(ctx); err != nil {
		return Check{Status: "unhealthy", Message: "cache not reachable"}
	}
	return Check{Status: "healthy"}
}

func (h *HealthHandler) checkDocsDir() Check {
	info, err := os.Stat(h.docsDir)
	switch {
	case err != nil:
		return Check{Status: "unhealthy", Message: "docs directory not accessible"}
	case !info.IsDir():
		return Check{Status: "unhealthy", Message: "docs path is not a directory"}
	default:
		return Check{Status: "healthy"}
	}
}
