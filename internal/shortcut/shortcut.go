// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package shortcut parses keyboard combos and resolves how each key is shown
// for the reader's platform.
package shortcut

import (
	"regexp"
	"strings"

	"github.com/olegiv/docwidgets/internal/platform"
	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/style"
)

// Defaults.
const (
	DefaultJoiner     = " + "
	DefaultStepJoiner = ", then "
)

// Step is one chord: keys pressed together, in order.
type Step []KeyToken

var (
	stepSeparator = regexp.MustCompile(`\s*,\s*`)
	keySeparator  = regexp.MustCompile(`\s*\+\s*`)
)

// ParseCombo splits a combo into steps of canonical keys. A string combo is
// split on commas into steps; a list supplies one step per entry. Each step
// is split on "+". Empty keys are dropped before canonicalisation and steps
// left without keys are dropped.
func ParseCombo(raw props.Value) []Step {
	var rawSteps []string
	if raw.IsList() {
		rawSteps = raw.Items()
	} else {
		rawSteps = stepSeparator.Split(raw.Text(), -1)
	}

	steps := make([]Step, 0, len(rawSteps))
	for _, rs := range rawSteps {
		var step Step
		for _, rk := range keySeparator.Split(rs, -1) {
			if strings.TrimSpace(rk) == "" {
				continue
			}
			step = append(step, NormalizeKey(rk))
		}
		if len(step) > 0 {
			steps = append(steps, step)
		}
	}
	return steps
}

// Model is a fully resolved shortcut.
type Model struct {
	Steps      []Step            `json:"steps"`
	Keys       [][]string        `json:"keys"`
	Platform   platform.Platform `json:"platform"`
	Display    Display           `json:"display"`
	Mode       style.Mode        `json:"mode"`
	Size       style.Size        `json:"size"`
	Joiner     string            `json:"joiner"`
	StepJoiner string            `json:"stepJoiner"`
	Title      string            `json:"title,omitempty"`
}

// HasTitle reports whether a block header should be shown.
func (m Model) HasTitle() bool {
	return m.Mode == style.ModeBlock && m.Title != ""
}

// Resolve builds the model for a Shortcut, detecting the platform through
// hints when the platform prop is auto. ok is false when the combo has no
// keys. The deprecated copy and copySymbols props are ignored.
func Resolve(bag props.Bag, hints platform.HintProvider) (m Model, ok bool) {
	steps := ParseCombo(bag.Get("combo"))
	if len(steps) == 0 {
		return Model{}, false
	}

	mode := style.ResolveMode(bag.Get("mode"))
	plt := platform.Resolve(platform.Parse(bag.Get("platform").Text()), hints)
	display := ParseDisplay(bag.Get("display").Text())

	keys := make([][]string, len(steps))
	for i, step := range steps {
		keys[i] = make([]string, len(step))
		for j, token := range step {
			keys[i][j] = DisplayToken(token, plt, display)
		}
	}

	m = Model{
		Steps:      steps,
		Keys:       keys,
		Platform:   plt,
		Display:    display,
		Mode:       mode,
		Size:       style.ShortcutSizes.Resolve(bag.Get("size"), mode),
		Joiner:     bag.Get("joiner").Or(DefaultJoiner),
		StepJoiner: bag.Get("stepJoiner", "step-joiner").Or(DefaultStepJoiner),
	}
	if mode == style.ModeBlock {
		m.Title = strings.TrimSpace(bag.Get("title").Text())
	}
	return m, true
}

// Text joins the displayed keys with the model's joiners.
func (m Model) Text() string {
	parts := make([]string, len(m.Keys))
	for i, keys := range m.Keys {
		parts[i] = strings.Join(keys, m.Joiner)
	}
	return strings.Join(parts, m.StepJoiner)
}
