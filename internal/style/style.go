// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package style resolves the small configuration surface shared by the
// widgets: layout mode, size, and emphasis. Each setting is a table-driven
// cascade: a valid explicit value wins, otherwise the mode picks the default.
package style

import (
	"strings"

	"github.com/olegiv/docwidgets/internal/props"
)

// Mode selects inline or block layout.
type Mode string

// Layout modes.
const (
	ModeInline Mode = "inline"
	ModeBlock  Mode = "block"
)

// Size is the widget scale.
type Size string

// Sizes.
const (
	SizeSmall  Size = "sm"
	SizeMedium Size = "md"
	SizeLarge  Size = "lg"
)

// Emphasis is the treatment of the final trail segment.
type Emphasis string

// Emphasis treatments.
const (
	EmphasisBold Emphasis = "bold"
	EmphasisPill Emphasis = "pill"
	EmphasisNone Emphasis = "none"
)

// Cascade resolves a string enum from an explicit value or a per-mode default.
type Cascade[T ~string] struct {
	valid    map[T]struct{}
	defaults map[Mode]T
	fallback T
}

// NewCascade builds a cascade over the given members. defaults maps each mode
// to its default; fallback covers modes missing from defaults.
func NewCascade[T ~string](members []T, defaults map[Mode]T, fallback T) Cascade[T] {
	valid := make(map[T]struct{}, len(members))
	for _, m := range members {
		valid[m] = struct{}{}
	}
	return Cascade[T]{valid: valid, defaults: defaults, fallback: fallback}
}

// Default returns the value used for mode when nothing valid was supplied.
func (c Cascade[T]) Default(mode Mode) T {
	if d, ok := c.defaults[mode]; ok {
		return d
	}
	return c.fallback
}

// Resolve returns the explicit value when it names a member, otherwise the
// mode default. Matching ignores case and surrounding whitespace.
func (c Cascade[T]) Resolve(raw props.Value, mode Mode) T {
	if raw.Present() {
		candidate := T(strings.ToLower(strings.TrimSpace(raw.Text())))
		if _, ok := c.valid[candidate]; ok {
			return candidate
		}
	}
	return c.Default(mode)
}

var modes = NewCascade([]Mode{ModeInline, ModeBlock}, nil, ModeInline)

// ResolveMode returns the layout mode; anything unrecognised is inline.
func ResolveMode(raw props.Value) Mode {
	return modes.Resolve(raw, ModeInline)
}

// TrailSizes defaults MenuTrail to sm inline and md in block mode.
var TrailSizes = NewCascade(
	[]Size{SizeSmall, SizeMedium, SizeLarge},
	map[Mode]Size{ModeInline: SizeSmall, ModeBlock: SizeMedium},
	SizeMedium,
)

// ShortcutSizes defaults Shortcut to md in every mode.
var ShortcutSizes = NewCascade(
	[]Size{SizeSmall, SizeMedium, SizeLarge},
	nil,
	SizeMedium,
)

// Emphases defaults to bold inline and a pill in block mode.
var Emphases = NewCascade(
	[]Emphasis{EmphasisBold, EmphasisPill, EmphasisNone},
	map[Mode]Emphasis{ModeInline: EmphasisBold, ModeBlock: EmphasisPill},
	EmphasisBold,
)
