// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/docwidgets/internal/platform"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DOCW_ICON_CDN", "https://icons.example.com/v6")

	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTrailCommand(t *testing.T) {
	out, err := execute(t, "trail", `segments="Settings, Account"`)
	require.NoError(t, err)
	assert.Equal(t, "≡ › Settings › Account\n", out)
}

func TestTrailCommand_HTML(t *testing.T) {
	out, err := execute(t, "trail", `segments={["File", "Save"]}`, "--html")
	require.NoError(t, err)
	assert.Contains(t, out, `aria-current="page"`)
	assert.Contains(t, out, "https://icons.example.com/v6/light/bars-staggered.svg")
}

func TestTrailCommand_RendersNothing(t *testing.T) {
	out, err := execute(t, "trail", `segments=" , "`, "icon={false}")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestTrailCommand_MalformedAttributes(t *testing.T) {
	_, err := execute(t, "trail", "segments=Settings")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing attributes")
}

func TestShortcutCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"mac hint", []string{`combo="Cmd+Shift+P"`, "--hint", "Macintosh"}, " ⌘  +  ⇧  +  P \n"},
		{"explicit platform beats hint", []string{`combo="Ctrl+K, Ctrl+S" platform="linux" size="sm"`, "--hint", "Macintosh"}, "Ctrl + K then Ctrl + S\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append([]string{"shortcut"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestShortcutCommand_HTML(t *testing.T) {
	out, err := execute(t, "shortcut", `combo="Option+Up"`, `platform="mac"`, "--html")
	require.NoError(t, err)
	assert.Contains(t, out, `aria-label="Key ⌥"`)
	assert.Contains(t, out, `aria-label="Key ↑"`)
}

func TestPageCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keyboard.md")
	src := "---\ntitle: Keyboard\n---\nSave with <Shortcut combo=\"Cmd+S\" />.\n\n<script>alert(1)</script>\n"
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	out, err := execute(t, "page", path, "--hint", "Macintosh")
	require.NoError(t, err)
	assert.Contains(t, out, "⌘")
	assert.NotContains(t, out, "<script>")

	full, err := execute(t, "page", path, "--full", "--hint", "Windows")
	require.NoError(t, err)
	assert.Contains(t, full, "<title>Keyboard</title>")
	assert.Contains(t, full, "Win")
}

func TestPageCommand_MissingFile(t *testing.T) {
	_, err := execute(t, "page", filepath.Join(t.TempDir(), "nope.md"))
	require.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "docwidgets dev (commit unknown, built unknown)\n", out)
}

func TestHostHint(t *testing.T) {
	tests := map[string]platform.Platform{
		"darwin":  platform.Mac,
		"windows": platform.Win,
		"linux":   platform.Linux,
		"freebsd": platform.Linux,
	}
	for goos, want := range tests {
		t.Run(goos, func(t *testing.T) {
			assert.Equal(t, want, platform.Detect(hostHint(goos)))
		})
	}
}

func TestRootCommand_Help(t *testing.T) {
	out, err := execute(t, "--help")
	require.NoError(t, err)
	for _, sub := range []string{"serve", "trail", "shortcut", "page", "version"} {
		assert.True(t, strings.Contains(out, sub), sub)
	}
}
