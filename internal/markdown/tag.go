// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package markdown

import (
	"bytes"

	"github.com/olegiv/docwidgets/internal/platform"
	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/shortcut"
	"github.com/olegiv/docwidgets/internal/trail"
)

// Component names recognised in markdown.
const (
	ComponentMenuTrail = "MenuTrail"
	ComponentShortcut  = "Shortcut"
)

var components = []string{ComponentMenuTrail, ComponentShortcut}

// tag is a self-closing component tag found at the start of a line.
type tag struct {
	Component string
	Attrs     string
	Len       int
}

// scanTag matches `<Component attrs />` at the start of line. Quotes and
// braces may contain "/>" without closing the tag.
func scanTag(line []byte) (tag, bool) {
	if len(line) == 0 || line[0] != '<' {
		return tag{}, false
	}
	var name string
	for _, c := range components {
		if bytes.HasPrefix(line[1:], []byte(c)) {
			name = c
			break
		}
	}
	if name == "" {
		return tag{}, false
	}
	start := 1 + len(name)
	if start >= len(line) {
		return tag{}, false
	}
	if next := line[start]; next != ' ' && next != '\t' && next != '/' {
		return tag{}, false
	}

	depth := 0
	var quote byte
	for i := start; i < len(line); i++ {
		c := line[i]
		if quote != 0 {
			if c == '\\' && depth > 0 {
				i++
			} else if c == quote {
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'':
			quote = c
		case '`':
			if depth > 0 {
				quote = c
			}
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			}
		case '\n':
			return tag{}, false
		case '/':
			if depth == 0 && i+1 < len(line) && line[i+1] == '>' {
				return tag{Component: name, Attrs: string(line[start:i]), Len: i + 2}, true
			}
		}
	}
	return tag{}, false
}

// Resolved is a component after props resolution. Empty means the component
// renders nothing.
type Resolved struct {
	Component string
	Trail     trail.Model
	Shortcut  shortcut.Model
	Empty     bool
}

// resolve parses the tag's attributes and resolves the model. ok is false
// when the attributes cannot be parsed, in which case the tag is left to the
// regular markdown parsers.
func resolve(t tag, hints platform.HintProvider) (Resolved, bool) {
	bag, err := props.ParseAttrs(t.Attrs)
	if err != nil {
		return Resolved{}, false
	}
	res := Resolved{Component: t.Component}
	switch t.Component {
	case ComponentMenuTrail:
		m, ok := trail.Resolve(bag)
		res.Trail, res.Empty = m, !ok
	case ComponentShortcut:
		m, ok := shortcut.Resolve(bag, hints)
		res.Shortcut, res.Empty = m, !ok
	}
	return res, true
}
