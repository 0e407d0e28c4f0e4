// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/olegiv/docwidgets/internal/platform"
	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/render"
	"github.com/olegiv/docwidgets/internal/shortcut"
	"github.com/olegiv/docwidgets/internal/trail"
)

// WidgetHandler serves widgets whose props come from the query string.
type WidgetHandler struct {
	renderer *render.Renderer
}

// NewWidgetHandler creates a new WidgetHandler.
func NewWidgetHandler(renderer *render.Renderer) *WidgetHandler {
	return &WidgetHandler{renderer: renderer}
}

// WidgetResponse is the JSON form of a resolved widget. Render is false,
// and Model absent, when the widget renders nothing.
type WidgetResponse struct {
	Render bool   `json:"render"`
	Model  any    `json:"model,omitempty"`
	Text   string `json:"text,omitempty"`
	Icon   string `json:"iconUrl,omitempty"`
}

// MenuTrailHTML handles GET /widgets/menu-trail.
func (h *WidgetHandler) MenuTrailHTML(w http.ResponseWriter, r *http.Request) {
	m, ok := trail.Resolve(props.FromQuery(r.URL.Query()))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeFragment(w, r, "MenuTrail", func() (template.HTML, error) { return h.renderer.MenuTrail(m) })
}

// ShortcutHTML handles GET /widgets/shortcut. platform=auto uses the
// request's User-Agent.
func (h *WidgetHandler) ShortcutHTML(w http.ResponseWriter, r *http.Request) {
	m, ok := shortcut.Resolve(props.FromQuery(r.URL.Query()), platform.FromRequest(r))
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	h.writeFragment(w, r, "Shortcut", func() (template.HTML, error) { return h.renderer.Shortcut(m) })
}

// MenuTrailJSON handles GET /api/menu-trail.
func (h *WidgetHandler) MenuTrailJSON(w http.ResponseWriter, r *http.Request) {
	m, ok := trail.Resolve(props.FromQuery(r.URL.Query()))
	if !ok {
		writeJSON(w, http.StatusOK, WidgetResponse{})
		return
	}
	resp := WidgetResponse{Render: true, Model: m}
	if m.Icon.Present {
		resp.Icon = m.Icon.URL(h.renderer.IconCDN())
	}
	writeJSON(w, http.StatusOK, resp)
}

// ShortcutJSON handles GET /api/shortcut.
func (h *WidgetHandler) ShortcutJSON(w http.ResponseWriter, r *http.Request) {
	m, ok := shortcut.Resolve(props.FromQuery(r.URL.Query()), platform.FromRequest(r))
	if !ok {
		writeJSON(w, http.StatusOK, WidgetResponse{})
		return
	}
	writeJSON(w, http.StatusOK, WidgetResponse{Render: true, Model: m, Text: m.Text()})
}

func (h *WidgetHandler) writeFragment(w http.ResponseWriter, r *http.Request, component string, fn func() (template.HTML, error)) {
	out, err := fn()
	if err != nil {
		logAndInternalError(w, r, "failed to render widget", "component", component, "error", err)
		return
	}
	slog.DebugContext(r.Context(), "rendered widget", "component", component, "bytes", len(out))
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "User-Agent")
	_, _ = w.Write([]byte(out))
}
