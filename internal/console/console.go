// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package console renders menu trails and shortcuts for terminals.
package console

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/olegiv/docwidgets/internal/shortcut"
	"github.com/olegiv/docwidgets/internal/style"
	"github.com/olegiv/docwidgets/internal/trail"
)

// IconGlyph stands in for the menu icon, which has no terminal form.
const IconGlyph = "≡"

var (
	accent   = lipgloss.AdaptiveColor{Light: "#030712", Dark: "#F9FAFB"}
	muted    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	pillBg   = lipgloss.AdaptiveColor{Light: "#E5E7EB", Dark: "#374151"}
	border   = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
	keycapBg = lipgloss.AdaptiveColor{Light: "#F3F4F6", Dark: "#1F2937"}
)

// Renderer holds the lipgloss styles bound to one output.
type Renderer struct {
	segment lipgloss.Style
	bold    lipgloss.Style
	pill    lipgloss.Style
	sep     lipgloss.Style
	title   lipgloss.Style
	frame   lipgloss.Style
	keycap  lipgloss.Style
}

// New returns a Renderer whose color profile is detected from w.
func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		segment: r.NewStyle(),
		bold:    r.NewStyle().Bold(true).Foreground(accent),
		pill:    r.NewStyle().Foreground(accent).Background(pillBg).Padding(0, 1),
		sep:     r.NewStyle().Foreground(muted),
		title:   r.NewStyle().Bold(true).Foreground(muted),
		frame:   r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border),
		keycap:  r.NewStyle().Foreground(accent).Background(keycapBg),
	}
}

func framePadding(s style.Size) int {
	switch s {
	case style.SizeSmall:
		return 1
	case style.SizeLarge:
		return 3
	default:
		return 2
	}
}

// MenuTrail renders a resolved trail on one line, framed in block mode.
func (c *Renderer) MenuTrail(m trail.Model) string {
	sep := c.sep.Render(" " + strings.TrimSpace(m.Joiner) + " ")

	var parts []string
	if m.Icon.Present {
		parts = append(parts, c.sep.Render(IconGlyph))
	}
	for i, seg := range m.Segments {
		if !m.Current(i) {
			parts = append(parts, c.segment.Render(seg))
			continue
		}
		if m.Emphasis == style.EmphasisPill {
			parts = append(parts, c.pill.Render(seg))
		} else {
			parts = append(parts, c.bold.Render(seg))
		}
	}
	line := strings.Join(parts, sep)

	if m.Mode != style.ModeBlock {
		return line
	}
	return c.block(m.HasTitle(), m.Title, line, framePadding(m.Size))
}

// Shortcut renders a resolved shortcut as keycaps, framed in block mode.
func (c *Renderer) Shortcut(m shortcut.Model) string {
	pad := 1
	if m.Size == style.SizeSmall {
		pad = 0
	}
	keycap := c.keycap.Padding(0, pad)
	plus := c.sep.Render(" " + strings.TrimSpace(m.Joiner) + " ")
	then := c.sep.Render(" " + strings.TrimSpace(strings.TrimLeft(m.StepJoiner, ", ")) + " ")

	steps := make([]string, 0, len(m.Keys))
	for _, keys := range m.Keys {
		caps := make([]string, 0, len(keys))
		for _, k := range keys {
			caps = append(caps, keycap.Render(k))
		}
		steps = append(steps, strings.Join(caps, plus))
	}
	line := strings.Join(steps, then)

	if m.Mode != style.ModeBlock {
		return line
	}
	return c.block(m.HasTitle(), m.Title, line, framePadding(m.Size))
}

func (c *Renderer) block(hasTitle bool, title, body string, pad int) string {
	framed := c.frame.Padding(0, pad).Render(body)
	if !hasTitle {
		return framed
	}
	return lipgloss.JoinVertical(lipgloss.Left, c.title.Render(title), framed)
}
