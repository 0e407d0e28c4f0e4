// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package icon resolves the optional leading icon of a menu trail and builds
// the URL of its hosted SVG asset.
package icon

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/mozillazg/go-unidecode"

	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/style"
)

// DefaultName is shown when no icon is specified or icon is true.
const DefaultName = "bars-staggered"

// DefaultCDN is the root of the hosted icon set.
const DefaultCDN = "https://d3gk2c5xim1je2.cloudfront.net/v6.6.0"

// Style is an icon family within the icon set.
type Style string

// Icon styles.
const (
	StyleRegular    Style = "regular"
	StyleSolid      Style = "solid"
	StyleLight      Style = "light"
	StyleThin       Style = "thin"
	StyleSharpSolid Style = "sharp-solid"
	StyleDuotone    Style = "duotone"
	StyleBrands     Style = "brands"
)

var styleAliases = map[string]Style{
	"regular":     StyleRegular,
	"solid":       StyleSolid,
	"light":       StyleLight,
	"thin":        StyleThin,
	"sharp-solid": StyleSharpSolid,
	"sharpsolid":  StyleSharpSolid,
	"duotone":     StyleDuotone,
	"brands":      StyleBrands,
	"brand":       StyleBrands,
	"br":          StyleBrands,
}

var (
	separatorRun = regexp.MustCompile(`[_\s]+`)
	nonStyleByte = regexp.MustCompile(`[^a-z-]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// DefaultStyle is light for inline trails and solid for block trails.
func DefaultStyle(mode style.Mode) Style {
	if mode == style.ModeInline {
		return StyleLight
	}
	return StyleSolid
}

// NormalizeStyle maps a free-form style token onto a Style. Unknown or empty
// tokens resolve to the default for mode.
func NormalizeStyle(raw string, mode style.Mode) Style {
	k := strings.ToLower(strings.TrimSpace(raw))
	k = separatorRun.ReplaceAllString(k, "-")
	k = nonStyleByte.ReplaceAllString(k, "")
	if s, ok := styleAliases[k]; ok {
		return s
	}
	return DefaultStyle(mode)
}

// Icon is a resolved icon. The zero Icon is "no icon".
type Icon struct {
	Present bool   `json:"present"`
	Name    string `json:"name,omitempty"`
	Style   Style  `json:"style,omitempty"`
}

// Resolve applies the icon rules in order: a string names the icon (blank
// hides it), an absent value selects the default icon, and anything else is
// read as a boolean that shows the default icon or hides it.
func Resolve(raw, rawStyle props.Value, mode style.Mode) Icon {
	var name string
	switch {
	case raw.IsString():
		name = strings.TrimSpace(raw.Raw())
	case raw.Kind() == props.KindAbsent:
		name = DefaultName
	case raw.AsBool(true):
		name = DefaultName
	}
	if name == "" {
		return Icon{}
	}
	return Icon{
		Present: true,
		Name:    SafeName(name),
		Style:   NormalizeStyle(rawStyle.Text(), mode),
	}
}

// SafeName lower-cases an icon name and joins whitespace runs with dashes.
func SafeName(name string) string {
	return whitespace.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}

// AssetURL returns {base}/{style}/{name}.svg. The name is transliterated to
// ASCII and escaped as a single path segment.
func AssetURL(base string, s Style, name string) string {
	if base == "" {
		base = DefaultCDN
	}
	segment := SafeName(unidecode.Unidecode(name))
	return strings.TrimRight(base, "/") + "/" + string(s) + "/" + url.PathEscape(segment) + ".svg"
}

// URL is shorthand for AssetURL with the icon's own style and name.
func (i Icon) URL(base string) string {
	if !i.Present {
		return ""
	}
	return AssetURL(base, i.Style, i.Name)
}
