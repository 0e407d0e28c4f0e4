// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/olegiv/docwidgets/internal/shortcut"
	"github.com/olegiv/docwidgets/internal/style"
	"github.com/olegiv/docwidgets/internal/trail"
)

// trailSizing holds the class tokens for one trail size.
type trailSizing struct {
	Text      string
	Sep       string
	PadInline string
	PadBlock  string
	IconPx    int
	IconGap   string
}

var trailSizes = map[style.Size]trailSizing{
	style.SizeLarge:  {Text: "text-base", Sep: "mx-2.5", PadInline: "px-2.5 py-1.5", PadBlock: "py-3.5 px-5", IconPx: 18, IconGap: "mr-2.5"},
	style.SizeSmall:  {Text: "text-xs", Sep: "mx-1", PadInline: "px-2 py-0.5", PadBlock: "py-2.5 px-3.5", IconPx: 14, IconGap: "mr-1.5"},
	style.SizeMedium: {Text: "text-sm", Sep: "mx-1.5", PadInline: "px-2.5 py-1", PadBlock: "py-3.5 px-4", IconPx: 16, IconGap: "mr-2"},
}

const (
	lastBold       = "font-semibold text-gray-950 dark:text-gray-50"
	lastPillInline = "font-medium text-gray-950 dark:text-gray-50 bg-gray-950/5 dark:bg-white/10 rounded px-1.5 py-0.5"
	lastPillBlock  = "font-medium text-gray-950 dark:text-gray-50 bg-gray-950/5 dark:bg-white/10 rounded-md px-2 py-1"
)

type iconView struct {
	Style template.CSS
	Label string
}

type segmentView struct {
	Label   string
	Class   string
	Current bool
	Sep     bool
}

type trailView struct {
	trailSizing
	Block    bool
	Joiner   string
	Icon     *iconView
	Segments []segmentView
	Body     template.HTML
}

func emphasisClass(e style.Emphasis, mode style.Mode) string {
	switch e {
	case style.EmphasisBold:
		return lastBold
	case style.EmphasisPill:
		if mode == style.ModeInline {
			return lastPillInline
		}
		return lastPillBlock
	default:
		return ""
	}
}

func iconStyle(url string, px int) template.CSS {
	css := fmt.Sprintf(
		`background-color: currentColor; mask-image: url("%[1]s"); -webkit-mask-image: url("%[1]s"); `+
			`mask-repeat: no-repeat; -webkit-mask-repeat: no-repeat; mask-position: center; -webkit-mask-position: center; `+
			`width: %[2]dpx; height: %[2]dpx; display: inline-block; vertical-align: middle`,
		url, px)
	return template.CSS(css) //nolint:gosec // url is built from a path-escaped icon name
}

func newTrailView(m trail.Model, cdn string) trailView {
	sizing, ok := trailSizes[m.Size]
	if !ok {
		sizing = trailSizes[style.SizeMedium]
	}
	v := trailView{
		trailSizing: sizing,
		Block:       m.Mode == style.ModeBlock,
		Joiner:      m.Joiner,
	}
	if m.Icon.Present {
		v.Icon = &iconView{Style: iconStyle(m.Icon.URL(cdn), sizing.IconPx), Label: m.IconLabel}
	}
	last := m.Last()
	for i, label := range m.Segments {
		seg := segmentView{Label: label, Sep: i < last, Current: m.Current(i)}
		if i == last {
			seg.Class = emphasisClass(m.Emphasis, m.Mode)
		}
		v.Segments = append(v.Segments, seg)
	}
	return v
}

// shortcutSizing holds the class tokens for one shortcut size.
type shortcutSizing struct {
	Kbd  string
	Plus string
	Then string
}

var shortcutSizes = map[style.Size]shortcutSizing{
	style.SizeLarge:  {Kbd: "h-9 min-w-[2.1rem] px-3 text-sm", Plus: "mx-2.5", Then: "ml-2.5 mr-1 text-sm"},
	style.SizeSmall:  {Kbd: "h-6 min-w-[1.5rem] px-2 text-[11px]", Plus: "mx-1", Then: "ml-1.5 mr-1 text-[11px]"},
	style.SizeMedium: {Kbd: "h-7 min-w-[1.7rem] px-2.5 text-xs", Plus: "mx-1.5", Then: "ml-2 mr-1 text-xs"},
}

type keyView struct {
	Text string
	Sep  bool
}

type stepView struct {
	Keys []keyView
	Then bool
}

type shortcutView struct {
	shortcutSizing
	Block      bool
	Label      string
	Joiner     string
	StepJoiner string
	Steps      []stepView
}

// visibleJoiner trims the padding and leading punctuation a plain-text joiner
// carries, so ", then " is shown as "then" between keycaps.
func visibleJoiner(j string) string {
	return strings.TrimSpace(strings.TrimLeft(j, ", "))
}

func newShortcutView(m shortcut.Model) shortcutView {
	sizing, ok := shortcutSizes[m.Size]
	if !ok {
		sizing = shortcutSizes[style.SizeMedium]
	}
	v := shortcutView{
		shortcutSizing: sizing,
		Block:          m.Mode == style.ModeBlock,
		Label:          m.Text(),
		Joiner:         strings.TrimSpace(m.Joiner),
		StepJoiner:     visibleJoiner(m.StepJoiner),
	}
	for si, keys := range m.Keys {
		step := stepView{Then: si < len(m.Keys)-1}
		for ki, k := range keys {
			step.Keys = append(step.Keys, keyView{Text: k, Sep: ki < len(keys)-1})
		}
		v.Steps = append(v.Steps, step)
	}
	return v
}

type blockView struct {
	HasTitle   bool
	Title      string
	HeaderIcon string
	InnerClass string
	Body       template.HTML
}

func blockInnerClass(hasTitle bool, pad string) string {
	rounded := "rounded-2xl"
	if hasTitle {
		rounded = "rounded-[14px]"
	}
	return "w-0 min-w-full max-w-full " + pad + " h-full relative leading-6 " + rounded +
		" bg-white dark:bg-codeblock overflow-x-auto children:!my-0 children:!shadow-none children:!bg-transparent transition-[height] duration-300 ease-in-out"
}
