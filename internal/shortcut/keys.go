// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package shortcut

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// KeyToken is the canonical, platform-independent name of a key.
type KeyToken = string

// Canonical key names that display differently per platform.
const (
	KeyCommand KeyToken = "Command"
	KeyMeta    KeyToken = "Meta"
	KeyWin     KeyToken = "Win"
	KeyControl KeyToken = "Control"
	KeyOption  KeyToken = "Option"
	KeyAlt     KeyToken = "Alt"
	KeyShift   KeyToken = "Shift"
)

var keyAliases = map[string]KeyToken{
	"cmd": KeyCommand, "command": KeyCommand, "⌘": KeyCommand,
	"meta": KeyMeta,
	"win":  KeyWin, "windows": KeyWin, "super": KeyWin,
	"ctrl": KeyControl, "control": KeyControl, "⌃": KeyControl,
	"alt": KeyAlt, "option": KeyOption, "⌥": KeyOption,
	"shift": KeyShift, "⇧": KeyShift,
	"enter": "Enter", "return": "Return", "↩": "Return",
	"esc": "Esc", "escape": "Esc", "⎋": "Esc",
	"tab": "Tab", "⇥": "Tab",
	"backspace": "Backspace", "⌫": "Backspace",
	"delete": "Delete", "del": "Delete", "⌦": "Delete",
	"space": "Space", "spacebar": "Space",
	"up": "Up", "↑": "Up",
	"down": "Down", "↓": "Down",
	"left": "Left", "←": "Left",
	"right": "Right", "→": "Right",
	"pgup": "Page Up", "page up": "Page Up", "pageup": "Page Up",
	"pgdn": "Page Down", "page down": "Page Down", "pagedown": "Page Down",
	"home": "Home",
	"end":  "End",
}

var (
	functionKey = regexp.MustCompile(`^F[0-9]{1,2}$`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// NormalizeKey maps a raw key token onto its canonical name. It never fails:
// known aliases and glyphs map through the alias table, F1..F99 are
// upper-cased, single characters are upper-cased, and anything else is kept
// as a free-form name with its first ASCII letter capitalised.
//
// Runs of whitespace are collapsed to one space before the alias lookup, so
// "page   up" is "Page Up" and free-form names come back single-spaced. This
// keeps NormalizeKey idempotent.
func NormalizeKey(raw string) KeyToken {
	s := strings.ToLower(strings.TrimSpace(norm.NFC.String(raw)))
	s = spaceRun.ReplaceAllString(s, " ")
	if k, ok := keyAliases[s]; ok {
		return k
	}
	if f := strings.ToUpper(s); functionKey.MatchString(f) {
		return f
	}
	if utf8.RuneCountInString(s) == 1 {
		return strings.ToUpper(s)
	}
	if s != "" && s[0] >= 'a' && s[0] <= 'z' {
		s = string(s[0]-'a'+'A') + s[1:]
	}
	return s
}
