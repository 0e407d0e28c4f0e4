// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"log/slog"

	"github.com/microcosm-cc/bluemonday"

	"github.com/olegiv/docwidgets/internal/cache"
	"github.com/olegiv/docwidgets/internal/markdown"
	"github.com/olegiv/docwidgets/internal/platform"
)

// Page is a document rendered for one reader platform.
type Page struct {
	Slug        string        `json:"slug"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	HTML        template.HTML `json:"html"`
}

// Library renders pages from a docs directory.
type Library struct {
	dir    string
	conv   *markdown.Converter
	policy *bluemonday.Policy
	cache  cache.Cache
}

// NewLibrary creates a Library. iconCDN is the only origin allowed in icon
// mask styles.
func NewLibrary(dir string, conv *markdown.Converter, iconCDN string) *Library {
	return &Library{dir: dir, conv: conv, policy: NewPolicy(iconCDN)}
}

// WithCache makes RenderPage reuse rendered pages from c.
func (l *Library) WithCache(c cache.Cache) *Library {
	l.cache = c
	return l
}

// Dir returns the docs directory.
func (l *Library) Dir() string { return l.dir }

// Load reads a page from the library directory.
func (l *Library) Load(slug string) (*Doc, error) {
	return Load(l.dir, slug)
}

// List returns the pages in the library directory.
func (l *Library) List() ([]Guide, error) {
	return List(l.dir)
}

// Render converts doc to sanitised HTML, resolving platform="auto" shortcuts
// with hints.
func (l *Library) Render(doc *Doc, hints platform.HintProvider) (template.HTML, error) {
	out, err := l.conv.Convert(doc.Body, hints)
	if err != nil {
		return "", fmt.Errorf("rendering %s: %w", doc.Slug, err)
	}
	return template.HTML(l.policy.Sanitize(string(out))), nil //nolint:gosec // sanitised by bluemonday
}

// RenderPage loads and renders the page for slug. With a cache attached the
// result is stored per detected platform until the page is invalidated.
// Cache failures are logged and the page is rendered from disk.
func (l *Library) RenderPage(ctx context.Context, slug string, hints platform.HintProvider) (*Page, error) {
	if !IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}

	key := pageKey(slug, platform.Detect(hints))
	if page, ok := l.cached(ctx, key); ok {
		return page, nil
	}

	doc, err := l.Load(slug)
	if err != nil {
		return nil, err
	}
	content, err := l.Render(doc, hints)
	if err != nil {
		return nil, err
	}
	page := &Page{Slug: doc.Slug, Title: doc.Title, Description: doc.Description, HTML: content}

	if l.cache != nil {
		if data, err := json.Marshal(page); err == nil {
			if err := l.cache.Set(ctx, key, data, 0); err != nil {
				slog.WarnContext(ctx, "failed to cache rendered page", "slug", slug, "error", err)
			}
		}
	}
	return page, nil
}

func (l *Library) cached(ctx context.Context, key string) (*Page, bool) {
	if l.cache == nil {
		return nil, false
	}
	data, err := l.cache.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			slog.WarnContext(ctx, "page cache lookup failed", "key", key, "error", err)
		}
		return nil, false
	}
	var page Page
	if err := json.Unmarshal(data, &page); err != nil {
		slog.WarnContext(ctx, "discarding corrupt cached page", "key", key, "error", err)
		return nil, false
	}
	return &page, true
}

// Invalidate drops every cached rendering of slug.
func (l *Library) Invalidate(ctx context.Context, slug string) error {
	if l.cache == nil {
		return nil
	}
	return l.cache.DeleteByPrefix(ctx, pagePrefix(slug))
}

// InvalidateAll drops every cached page.
func (l *Library) InvalidateAll(ctx context.Context) error {
	if l.cache == nil {
		return nil
	}
	return l.cache.DeleteByPrefix(ctx, "doc:")
}

func pagePrefix(slug string) string { return "doc:" + slug + ":" }

func pageKey(slug string, p platform.Platform) string { return pagePrefix(slug) + string(p) }
