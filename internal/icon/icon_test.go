// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package icon

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/style"
)

func TestNormalizeStyle(t *testing.T) {
	tests := []struct {
		raw  string
		mode style.Mode
		want Style
	}{
		{"", style.ModeInline, StyleLight},
		{"", style.ModeBlock, StyleSolid},
		{"regular", style.ModeInline, StyleRegular},
		{"  Solid ", style.ModeInline, StyleSolid},
		{"SHARP_SOLID", style.ModeInline, StyleSharpSolid},
		{"sharp solid", style.ModeInline, StyleSharpSolid},
		{"sharpsolid", style.ModeBlock, StyleSharpSolid},
		{"brand", style.ModeInline, StyleBrands},
		{"br", style.ModeInline, StyleBrands},
		{"duo-tone", style.ModeBlock, StyleSolid},
		{"thin!", style.ModeBlock, StyleThin},
		{"neon", style.ModeInline, StyleLight},
		{"⌘", style.ModeBlock, StyleSolid},
	}

	for _, tt := range tests {
		if got := NormalizeStyle(tt.raw, tt.mode); got != tt.want {
			t.Errorf("NormalizeStyle(%q, %s) = %q, want %q", tt.raw, tt.mode, got, tt.want)
		}
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name        string
		raw         props.Value
		wantPresent bool
		wantName    string
	}{
		{"absent shows default", props.Absent(), true, DefaultName},
		{"null shows default", props.Null(), true, DefaultName},
		{"true shows default", props.Bool(true), true, DefaultName},
		{"non-zero shows default", props.Number(1), true, DefaultName},
		{"false hides", props.Bool(false), false, ""},
		{"zero hides", props.Number(0), false, ""},
		{"empty string hides", props.String(""), false, ""},
		{"blank string hides", props.String("   "), false, ""},
		{"named icon", props.String("Folder-Open"), true, "folder-open"},
		{"spaces become dashes", props.String(" Folder  Open "), true, "folder-open"},
		{"string false is a name", props.String("false"), true, "false"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.raw, props.Absent(), style.ModeInline)
			if got.Present != tt.wantPresent {
				t.Fatalf("Present = %v, want %v", got.Present, tt.wantPresent)
			}
			if got.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", got.Name, tt.wantName)
			}
		})
	}
}

func TestResolve_ScenarioD(t *testing.T) {
	got := Resolve(props.String("Folder-Open"), props.String("SHARP_SOLID"), style.ModeInline)
	want := Icon{Present: true, Name: "folder-open", Style: StyleSharpSolid}
	if got != want {
		t.Errorf("Resolve = %+v, want %+v", got, want)
	}
}

func TestResolve_StyleDefaultsByMode(t *testing.T) {
	if got := Resolve(props.Absent(), props.Absent(), style.ModeInline).Style; got != StyleLight {
		t.Errorf("inline style = %q, want light", got)
	}
	if got := Resolve(props.Absent(), props.Absent(), style.ModeBlock).Style; got != StyleSolid {
		t.Errorf("block style = %q, want solid", got)
	}
}

func TestAssetURL(t *testing.T) {
	tests := []struct {
		base  string
		style Style
		name  string
		want  string
	}{
		{"", StyleLight, "bars-staggered", DefaultCDN + "/light/bars-staggered.svg"},
		{"https://cdn.example.com/icons/", StyleSolid, "Folder Open", "https://cdn.example.com/icons/solid/folder-open.svg"},
		{"https://cdn.example.com", StyleBrands, "café", "https://cdn.example.com/brands/cafe.svg"},
		{"https://cdn.example.com", StyleSolid, `a"b(c)`, "https://cdn.example.com/solid/a%22b%28c%29.svg"},
	}

	for _, tt := range tests {
		if got := AssetURL(tt.base, tt.style, tt.name); got != tt.want {
			t.Errorf("AssetURL(%q, %q, %q) = %q, want %q", tt.base, tt.style, tt.name, got, tt.want)
		}
	}
}

func TestIcon_URLWhenAbsent(t *testing.T) {
	if got := (Icon{}).URL(""); got != "" {
		t.Errorf("URL of absent icon = %q, want empty", got)
	}
}

func TestNormalizeStyle_Total(t *testing.T) {
	valid := map[Style]bool{}
	for _, s := range styleAliases {
		valid[s] = true
	}
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.String().Draw(t, "raw")
		mode := rapid.SampledFrom([]style.Mode{style.ModeInline, style.ModeBlock}).Draw(t, "mode")
		got := NormalizeStyle(raw, mode)
		if !valid[got] {
			t.Fatalf("NormalizeStyle(%q) = %q, not a known style", raw, got)
		}
		if again := NormalizeStyle(string(got), mode); again != got {
			t.Fatalf("not idempotent: %q -> %q", got, again)
		}
	})
}
