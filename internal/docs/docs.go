// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package docs loads markdown documentation pages from a directory and
// renders them, widgets included, to sanitised HTML.
package docs

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

var (
	// ErrNotFound is returned when no page exists for a slug.
	ErrNotFound = errors.New("document not found")
	// ErrInvalidSlug is returned for slugs that could escape the docs directory.
	ErrInvalidSlug = errors.New("invalid document slug")
)

// Doc is a parsed documentation page.
type Doc struct {
	Slug        string
	Title       string
	Description string
	Body        []byte
}

// Guide is a listing entry.
type Guide struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// IsValidSlug reports whether slug contains only [a-zA-Z0-9_-].
func IsValidSlug(slug string) bool {
	if slug == "" {
		return false
	}
	for _, c := range slug {
		if !((c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_') {
			return false
		}
	}
	return true
}

// SlugToTitle converts a filename slug to a human-readable title.
func SlugToTitle(slug string) string {
	words := strings.FieldsFunc(slug, func(r rune) bool { return r == '-' || r == '_' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// Load reads <slug>.md from dir.
func Load(dir, slug string) (*Doc, error) {
	if !IsValidSlug(slug) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlug, slug)
	}
	// slug is limited to [a-zA-Z0-9_-], so the path cannot leave dir.
	src, err := os.ReadFile(filepath.Join(dir, slug+".md"))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, slug)
		}
		return nil, fmt.Errorf("reading %s: %w", slug, err)
	}
	return Parse(slug, src)
}

// Parse splits front matter from src. Pages without a title get one derived
// from the slug.
func Parse(slug string, src []byte) (*Doc, error) {
	fm, body, err := splitFrontMatter(src)
	if err != nil {
		return nil, fmt.Errorf("parsing front matter of %s: %w", slug, err)
	}
	doc := &Doc{Slug: slug, Title: strings.TrimSpace(fm.Title), Description: strings.TrimSpace(fm.Description), Body: body}
	if doc.Title == "" {
		doc.Title = SlugToTitle(slug)
	}
	return doc, nil
}

// List returns the pages available in dir, sorted by title. A missing
// directory yields an empty list.
func List(dir string) ([]Guide, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("listing docs: %w", err)
	}

	var guides []Guide
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".md") {
			continue
		}
		slug := strings.TrimSuffix(name, ".md")
		if !IsValidSlug(slug) {
			continue
		}
		title := SlugToTitle(slug)
		if doc, err := Load(dir, slug); err == nil {
			title = doc.Title
		}
		guides = append(guides, Guide{Slug: slug, Title: title})
	}

	sort.Slice(guides, func(i, j int) bool {
		return guides[i].Title < guides[j].Title
	})
	return guides, nil
}
