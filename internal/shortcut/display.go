// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package shortcut

import (
	"strings"
	"unicode/utf8"

	"github.com/olegiv/docwidgets/internal/platform"
)

// Display controls whether keys are shown as glyphs or short names.
type Display string

// Display modes.
const (
	DisplayAuto    Display = "auto"
	DisplaySymbols Display = "symbols"
	DisplayNames   Display = "names"
)

// ParseDisplay maps a raw display value; anything unrecognised is auto.
func ParseDisplay(raw string) Display {
	switch d := Display(strings.ToLower(strings.TrimSpace(raw))); d {
	case DisplaySymbols, DisplayNames:
		return d
	default:
		return DisplayAuto
	}
}

// macSymbols holds the glyph for each key that has one.
var macSymbols = map[KeyToken]string{
	KeyCommand:  "⌘",
	KeyOption:   "⌥",
	KeyControl:  "⌃",
	KeyShift:    "⇧",
	"Return":    "↩",
	"Esc":       "⎋",
	"Tab":       "⇥",
	"Backspace": "⌫",
	"Delete":    "⌦",
	"Up":        "↑",
	"Down":      "↓",
	"Left":      "←",
	"Right":     "→",
	"Page Up":   "⇞",
	"Page Down": "⇟",
	"Home":      "↖",
	"End":       "↘",
}

// Symbol returns the glyph for token, if it has one.
func Symbol(token KeyToken) (string, bool) {
	s, ok := macSymbols[token]
	return s, ok
}

// DisplayToken returns the text shown for token on plt in display mode d.
// Every combination yields exactly one string.
func DisplayToken(token KeyToken, plt platform.Platform, d Display) string {
	mac := plt == platform.Mac
	switch d {
	case DisplayNames:
		switch token {
		case KeyCommand, KeyMeta:
			if mac {
				return "Cmd"
			}
			return "Win"
		case KeyOption:
			if mac {
				return "Option"
			}
			return "Alt"
		case KeyControl:
			return "Ctrl"
		}
	case DisplaySymbols:
		if s, ok := macSymbols[token]; ok {
			return s
		}
		if token == KeyMeta || token == KeyWin {
			return macSymbols[KeyCommand]
		}
	default:
		if mac {
			if s, ok := macSymbols[token]; ok {
				return s
			}
			if token == KeyMeta || token == KeyWin {
				return macSymbols[KeyCommand]
			}
			break
		}
		switch token {
		case KeyCommand, KeyMeta:
			return "Win"
		case KeyOption:
			return "Alt"
		case KeyControl:
			return "Ctrl"
		}
	}
	return plain(token)
}

func plain(token KeyToken) string {
	if utf8.RuneCountInString(token) == 1 {
		return strings.ToUpper(token)
	}
	return token
}
