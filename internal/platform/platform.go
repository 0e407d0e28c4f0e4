// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package platform decides which keyboard platform a shortcut is shown for.
// Environment state enters only through a HintProvider, so detection stays a
// pure function of its inputs.
package platform

import (
	"regexp"
	"strings"
)

// Platform is a keyboard platform.
type Platform string

// Platforms. Auto is an input value only and never the result of Resolve.
const (
	Auto  Platform = "auto"
	Mac   Platform = "mac"
	Win   Platform = "win"
	Linux Platform = "linux"
)

// Fallback is used when no environment hint is available.
const Fallback = Win

var aliases = map[string]Platform{
	"mac":     Mac,
	"macos":   Mac,
	"osx":     Mac,
	"darwin":  Mac,
	"win":     Win,
	"windows": Win,
	"linux":   Linux,
}

var (
	macHint     = regexp.MustCompile(`(?i)Macintosh|Mac OS X|Mac_PowerPC`)
	windowsHint = regexp.MustCompile(`(?i)Windows`)
)

// HintProvider supplies a user-agent-like description of the reader's
// environment. ok is false when no such signal exists.
type HintProvider interface {
	PlatformHint() (hint string, ok bool)
}

// HintFunc adapts a function to HintProvider.
type HintFunc func() (string, bool)

// PlatformHint implements HintProvider.
func (f HintFunc) PlatformHint() (string, bool) { return f() }

// Static always reports the same hint.
type Static string

// PlatformHint implements HintProvider.
func (s Static) PlatformHint() (string, bool) { return string(s), true }

// None reports that no hint is available.
var None HintProvider = HintFunc(func() (string, bool) { return "", false })

// Parse maps an explicit platform value onto a Platform. Empty, "auto", and
// unknown values yield Auto.
func Parse(raw string) Platform {
	if p, ok := aliases[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return p
	}
	return Auto
}

// FromHint classifies a user-agent-like string.
func FromHint(hint string) Platform {
	switch {
	case macHint.MatchString(hint):
		return Mac
	case windowsHint.MatchString(hint):
		return Win
	default:
		return Linux
	}
}

// Detect classifies the hint from p, falling back when none is available.
func Detect(p HintProvider) Platform {
	if p == nil {
		return Fallback
	}
	hint, ok := p.PlatformHint()
	if !ok {
		return Fallback
	}
	return FromHint(hint)
}

// Resolve returns explicit unless it is Auto, in which case the platform is
// detected from p.
func Resolve(explicit Platform, p HintProvider) Platform {
	if explicit != Auto && explicit != "" {
		return explicit
	}
	return Detect(p)
}
