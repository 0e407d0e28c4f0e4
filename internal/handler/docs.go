// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/docwidgets/internal/docs"
	"github.com/olegiv/docwidgets/internal/platform"
	"github.com/olegiv/docwidgets/internal/render"
	"github.com/olegiv/docwidgets/internal/version"
)

// DocsHandler serves the markdown documentation pages.
type DocsHandler struct {
	renderer *render.Renderer
	library  *docs.Library
	version  version.Info
}

// NewDocsHandler creates a new DocsHandler.
func NewDocsHandler(renderer *render.Renderer, library *docs.Library, info version.Info) *DocsHandler {
	return &DocsHandler{renderer: renderer, library: library, version: info}
}

// Index handles GET /docs and lists the available pages as JSON.
func (h *DocsHandler) Index(w http.ResponseWriter, r *http.Request) {
	guides, err := h.library.List()
	if err != nil {
		logAndInternalError(w, r, "failed to list docs", "dir", h.library.Dir(), "error", err)
		return
	}
	if guides == nil {
		guides = []docs.Guide{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"docs": guides})
}

// Guide handles GET /docs/{slug}.
func (h *DocsHandler) Guide(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	page, err := h.library.RenderPage(r.Context(), slug, platform.FromRequest(r))
	if err != nil {
		if errors.Is(err, docs.ErrNotFound) || errors.Is(err, docs.ErrInvalidSlug) {
			http.NotFound(w, r)
			return
		}
		logAndInternalError(w, r, "failed to render doc", "slug", slug, "error", err)
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, render.PageData{
		Title:       page.Title,
		Description: page.Description,
		Content:     page.HTML,
		Version:     h.version.Version,
	}); err != nil {
		logAndInternalError(w, r, "failed to render page", "slug", slug, "error", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "User-Agent")
	_, _ = buf.WriteTo(w)
}
