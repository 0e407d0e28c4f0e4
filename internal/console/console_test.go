// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package console

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/docwidgets/internal/platform"
	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/shortcut"
	"github.com/olegiv/docwidgets/internal/trail"
)

// A bytes.Buffer is not a terminal, so lipgloss renders without escape codes.
func newPlain() *Renderer {
	return New(&bytes.Buffer{})
}

func TestMenuTrail_Inline(t *testing.T) {
	m, ok := trail.Resolve(props.Bag{"segments": props.String("Settings, Account")})
	require.True(t, ok)
	assert.Equal(t, "≡ › Settings › Account", newPlain().MenuTrail(m))
}

func TestMenuTrail_NoIconCustomJoiner(t *testing.T) {
	m, ok := trail.Resolve(props.Bag{
		"segments": props.Strings("File", "Save"),
		"icon":     props.Bool(false),
		"joiner":   props.String("/"),
	})
	require.True(t, ok)
	assert.Equal(t, "File / Save", newPlain().MenuTrail(m))
}

func TestMenuTrail_BlockPill(t *testing.T) {
	m, ok := trail.Resolve(props.Bag{
		"segments": props.Strings("View", "Zoom"),
		"mode":     props.String("block"),
		"title":    props.String("Zoom in"),
		"icon":     props.Bool(false),
	})
	require.True(t, ok)

	out := newPlain().MenuTrail(m)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4, out)
	assert.Equal(t, "Zoom in", strings.TrimSpace(lines[0]))
	assert.True(t, strings.HasPrefix(lines[1], "╭"))
	assert.Contains(t, lines[2], "View ›  Zoom ", "pill pads the current segment")
	assert.True(t, strings.HasPrefix(lines[3], "╰"))
}

func TestShortcut_Inline(t *testing.T) {
	m, ok := shortcut.Resolve(props.Bag{
		"combo":    props.String("Cmd+Shift+P"),
		"platform": props.String("mac"),
	}, platform.None)
	require.True(t, ok)
	assert.Equal(t, " ⌘  +  ⇧  +  P ", newPlain().Shortcut(m))
}

func TestShortcut_StepsSmall(t *testing.T) {
	m, ok := shortcut.Resolve(props.Bag{
		"combo":    props.Strings("Ctrl+K", "Ctrl+S"),
		"platform": props.String("linux"),
		"size":     props.String("sm"),
	}, platform.None)
	require.True(t, ok)
	assert.Equal(t, "Ctrl + K then Ctrl + S", newPlain().Shortcut(m))
}

func TestShortcut_BlockWithoutTitle(t *testing.T) {
	m, ok := shortcut.Resolve(props.Bag{
		"combo":    props.String("F5"),
		"platform": props.String("win"),
		"mode":     props.String("block"),
	}, platform.None)
	require.True(t, ok)

	out := newPlain().Shortcut(m)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3, out)
	assert.Contains(t, lines[1], " F5 ")
}
