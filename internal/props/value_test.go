// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package props

import (
	"net/url"
	"testing"

	"pgregory.net/rapid"
)

func TestValue_AsBool(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		dflt bool
		want bool
	}{
		{"absent uses default true", Absent(), true, true},
		{"absent uses default false", Absent(), false, false},
		{"null uses default", Null(), true, true},
		{"native true", Bool(true), false, true},
		{"native false", Bool(false), true, false},
		{"zero", Number(0), true, false},
		{"non-zero", Number(-2.5), false, true},
		{"string false", String("false"), true, false},
		{"string FALSE padded", String("  FALSE "), true, false},
		{"string 0", String("0"), true, false},
		{"string no", String("No"), true, false},
		{"string off", String("off"), true, false},
		{"string n", String("n"), true, false},
		{"empty string", String(""), true, false},
		{"whitespace string", String("   "), true, false},
		{"string yes", String("yes"), false, true},
		{"string on", String("ON"), false, true},
		{"string y", String("y"), false, true},
		{"other string is true", String("folder"), false, true},
		{"list uses default", Strings("a"), false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.AsBool(tt.dflt); got != tt.want {
				t.Errorf("AsBool(%v) = %v, want %v", tt.dflt, got, tt.want)
			}
		})
	}
}

func TestValue_Text(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want string
	}{
		{"absent", Absent(), ""},
		{"null", Null(), ""},
		{"false", Bool(false), ""},
		{"true", Bool(true), "true"},
		{"zero", Number(0), ""},
		{"integer", Number(42), "42"},
		{"fraction", Number(1.5), "1.5"},
		{"string", String(" a "), " a "},
		{"list", Strings("a", "b"), "a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Text(); got != tt.want {
				t.Errorf("Text() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_PresentAndOr(t *testing.T) {
	if Absent().Present() || Null().Present() {
		t.Error("absent and null must not be present")
	}
	if !String("").Present() {
		t.Error("empty string is present")
	}
	if got := Absent().Or("›"); got != "›" {
		t.Errorf("Or on absent = %q", got)
	}
	if got := String("").Or("›"); got != "" {
		t.Errorf("Or on empty string = %q, want empty", got)
	}
}

func TestValue_Items(t *testing.T) {
	v := List(String("a"), Number(2), Null(), Bool(true))
	got := v.Items()
	want := []string{"a", "2", "", "true"}
	if len(got) != len(want) {
		t.Fatalf("Items() len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Items()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
	if String("a").Items() != nil {
		t.Error("Items() on a string should be nil")
	}
}

func TestList_CopiesInput(t *testing.T) {
	items := []Value{String("a")}
	v := List(items...)
	items[0] = String("b")
	if got := v.Items()[0]; got != "a" {
		t.Errorf("List aliased caller slice, got %q", got)
	}
}

func TestBag_GetAliases(t *testing.T) {
	bag := Bag{"emphasize": String("pill")}
	if got := bag.Get("emphasise", "emphasize").Text(); got != "pill" {
		t.Errorf("Get via alias = %q, want pill", got)
	}

	bag = Bag{"emphasise": Null(), "emphasize": String("bold")}
	if got := bag.Get("emphasise", "emphasize").Text(); got != "bold" {
		t.Errorf("null primary should fall through to alias, got %q", got)
	}

	if got := (Bag{}).Get("missing"); got.Kind() != KindAbsent {
		t.Errorf("missing kind = %v, want absent", got.Kind())
	}
}

func TestFromQuery(t *testing.T) {
	q := url.Values{
		"segments": {"Settings", "Account"},
		"icon":     {"false"},
		"mode":     {"block"},
	}
	bag := FromQuery(q)

	if !bag["segments"].IsList() {
		t.Fatalf("repeated key should be a list, got %v", bag["segments"].Kind())
	}
	if got := bag["icon"]; got.Kind() != KindBool || got.AsBool(true) {
		t.Errorf("icon = %v, want bool false", got.Kind())
	}
	if got := bag["mode"].Raw(); got != "block" {
		t.Errorf("mode = %q, want block", got)
	}
}

func TestAsBool_Total(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.String().Draw(t, "s")
		dflt := rapid.Bool().Draw(t, "dflt")
		// Strings never consult the default.
		a := String(s).AsBool(dflt)
		b := String(s).AsBool(!dflt)
		if a != b {
			t.Fatalf("string %q depended on default", s)
		}
	})
}
