// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package render turns resolved widget models into HTML markup using the
// embedded html/template set.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"regexp"

	"github.com/olegiv/docwidgets/internal/icon"
	"github.com/olegiv/docwidgets/internal/shortcut"
	"github.com/olegiv/docwidgets/internal/trail"
)

// blankLinesRegex matches two or more consecutive newlines (with optional whitespace between).
var blankLinesRegex = regexp.MustCompile(`(\r?\n\s*){2,}`)

// Renderer executes the widget templates.
type Renderer struct {
	templates *template.Template
	iconCDN   string
}

// Config holds renderer configuration.
type Config struct {
	TemplatesFS fs.FS
	IconCDN     string
}

// New creates a Renderer with parsed templates.
func New(cfg Config) (*Renderer, error) {
	tmpl, err := template.New("").ParseFS(cfg.TemplatesFS, "widgets/*.html", "layouts/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	cdn := cfg.IconCDN
	if cdn == "" {
		cdn = icon.DefaultCDN
	}
	return &Renderer{templates: tmpl, iconCDN: cdn}, nil
}

// IconCDN returns the icon asset root the renderer points at.
func (r *Renderer) IconCDN() string {
	return r.iconCDN
}

// MenuTrail renders a resolved trail.
func (r *Renderer) MenuTrail(m trail.Model) (template.HTML, error) {
	v := newTrailView(m, r.iconCDN)
	body, err := r.execute("trail-body", v)
	if err != nil {
		return "", err
	}
	if !v.Block {
		v.Body = body
		return r.execute("trail-inline", v)
	}
	return r.execute("block", blockView{
		HasTitle:   m.HasTitle(),
		Title:      m.Title,
		HeaderIcon: "menu",
		InnerClass: blockInnerClass(m.HasTitle(), v.PadBlock+" font-mono"),
		Body:       body,
	})
}

// Shortcut renders a resolved shortcut.
func (r *Renderer) Shortcut(m shortcut.Model) (template.HTML, error) {
	v := newShortcutView(m)
	body, err := r.execute("shortcut-keys", v)
	if err != nil {
		return "", err
	}
	if !v.Block {
		return r.execute("shortcut-inline", struct{ Body template.HTML }{body})
	}
	return r.execute("block", blockView{
		HasTitle:   m.HasTitle(),
		Title:      m.Title,
		HeaderIcon: "keyboard",
		InnerClass: blockInnerClass(m.HasTitle(), "py-3.5 px-4 text-sm"),
		Body:       body,
	})
}

// PageData is the input of the documentation page layout.
type PageData struct {
	Title       string
	Description string
	Content     template.HTML
	Version     string
}

// Page writes a full documentation page to w. The output is not compacted:
// the content may hold preformatted blocks whose blank lines matter.
func (r *Renderer) Page(w io.Writer, data PageData) error {
	var buf bytes.Buffer
	if err := r.executeTo(&buf, "page", data); err != nil {
		return err
	}
	_, err := buf.WriteTo(w)
	return err
}

// execute renders a widget fragment and compacts its blank lines.
func (r *Renderer) execute(name string, data any) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.executeTo(&buf, name, data); err != nil {
		return "", err
	}
	compacted := blankLinesRegex.ReplaceAll(buf.Bytes(), []byte("\n"))
	return template.HTML(compacted), nil //nolint:gosec // produced by html/template
}

// executeTo renders to a buffer first so a failing template writes nothing.
func (r *Renderer) executeTo(buf *bytes.Buffer, name string, data any) error {
	if err := r.templates.ExecuteTemplate(buf, name, data); err != nil {
		return fmt.Errorf("executing template %s: %w", name, err)
	}
	return nil
}
