// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package trail resolves MenuTrail props into a breadcrumb-style model.
package trail

import (
	"strings"

	"github.com/olegiv/docwidgets/internal/icon"
	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/style"
)

// Defaults.
const (
	DefaultJoiner    = "›"
	DefaultIconLabel = "Menu"
)

// Model is a fully resolved menu trail.
type Model struct {
	Segments  []string       `json:"segments"`
	Joiner    string         `json:"joiner"`
	Mode      style.Mode     `json:"mode"`
	Size      style.Size     `json:"size"`
	Emphasis  style.Emphasis `json:"emphasis"`
	Icon      icon.Icon      `json:"icon"`
	IconLabel string         `json:"iconLabel"`
	Title     string         `json:"title,omitempty"`
}

// HasTitle reports whether a block header should be shown.
func (m Model) HasTitle() bool {
	return m.Mode == style.ModeBlock && m.Title != ""
}

// Last returns the index of the emphasised segment, or -1 when there is none.
func (m Model) Last() int {
	return len(m.Segments) - 1
}

// Current reports whether segment i is marked as the current page.
func (m Model) Current(i int) bool {
	return i == m.Last() && m.Emphasis != style.EmphasisNone
}

// Normalize turns a segments prop into an ordered list of labels. Lists are
// taken entry by entry; strings are split on commas. Entries are trimmed and
// empty ones dropped.
func Normalize(raw props.Value) []string {
	var parts []string
	if raw.IsList() {
		parts = raw.Items()
	} else {
		parts = strings.Split(raw.Text(), ",")
	}
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Resolve builds the model for a MenuTrail. ok is false when there is
// nothing to render: no segments and no icon.
func Resolve(bag props.Bag) (m Model, ok bool) {
	mode := style.ResolveMode(bag.Get("mode"))
	segments := Normalize(bag.Get("segments"))
	ic := icon.Resolve(bag.Get("icon"), bag.Get("iconStyle", "icon-style"), mode)
	if len(segments) == 0 && !ic.Present {
		return Model{}, false
	}

	m = Model{
		Segments:  segments,
		Joiner:    bag.Get("joiner").Or(DefaultJoiner),
		Mode:      mode,
		Size:      style.TrailSizes.Resolve(bag.Get("size"), mode),
		Emphasis:  style.Emphases.Resolve(bag.Get("emphasise", "emphasize", "emphasis"), mode),
		Icon:      ic,
		IconLabel: bag.Get("iconLabel", "icon-label").Or(DefaultIconLabel),
	}
	if mode == style.ModeBlock {
		m.Title = strings.TrimSpace(bag.Get("title").Text())
	}
	return m, true
}
