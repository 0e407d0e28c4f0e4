// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package props decodes the loosely typed widget properties that arrive from
// markdown attributes, query strings, or CLI flags. Every decoder is total:
// unexpected kinds fall back to a caller-supplied or documented default.
package props

import (
	"strconv"
	"strings"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Value kinds.
const (
	KindAbsent Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindList
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	default:
		return "absent"
	}
}

// Value is a tagged union over the shapes a widget property can take.
// The zero Value is absent.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
	list []Value
}

// Absent returns the value of a property that was not supplied.
func Absent() Value { return Value{} }

// Null returns an explicit null.
func Null() Value { return Value{kind: KindNull} }

// Bool wraps a native boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a numeric literal.
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// String wraps a string literal.
func String(s string) Value { return Value{kind: KindString, s: s} }

// List wraps an ordered sequence of values.
func List(items ...Value) Value {
	cp := make([]Value, len(items))
	copy(cp, items)
	return Value{kind: KindList, list: cp}
}

// Strings wraps a sequence of string literals.
func Strings(items ...string) Value {
	vals := make([]Value, len(items))
	for i, s := range items {
		vals[i] = String(s)
	}
	return Value{kind: KindList, list: vals}
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind { return v.kind }

// Present reports whether v carries a value. Absent and null are not present.
func (v Value) Present() bool {
	return v.kind != KindAbsent && v.kind != KindNull
}

// IsString reports whether v holds a string literal.
func (v Value) IsString() bool { return v.kind == KindString }

// IsList reports whether v holds a sequence.
func (v Value) IsList() bool { return v.kind == KindList }

// Raw returns the underlying string for string values and "" otherwise.
func (v Value) Raw() string {
	if v.kind == KindString {
		return v.s
	}
	return ""
}

var (
	falseWords = map[string]struct{}{"false": {}, "0": {}, "no": {}, "off": {}, "n": {}, "": {}}
	trueWords  = map[string]struct{}{"true": {}, "1": {}, "yes": {}, "on": {}, "y": {}}
)

// AsBool interprets v as a boolean. Absent and null values return dflt.
// Numbers are true when non-zero. Strings are matched case-insensitively
// against the usual yes/no words; any other non-empty string is true.
// Lists are not boolean-ish and return dflt.
func (v Value) AsBool(dflt bool) bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n != 0
	case KindString:
		s := strings.ToLower(strings.TrimSpace(v.s))
		if _, ok := falseWords[s]; ok {
			return false
		}
		if _, ok := trueWords[s]; ok {
			return true
		}
		return true
	default:
		return dflt
	}
}

// Text coerces v to a string. Falsy scalars (absent, null, false, 0) become
// the empty string, so callers can treat "not supplied" and "blank" alike.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.s
	case KindBool:
		if v.b {
			return "true"
		}
		return ""
	case KindNumber:
		if v.n == 0 {
			return ""
		}
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindList:
		parts := make([]string, len(v.list))
		for i, item := range v.list {
			parts[i] = item.Text()
		}
		return strings.Join(parts, ",")
	default:
		return ""
	}
}

// Items returns the text of each list entry, or nil when v is not a list.
func (v Value) Items() []string {
	if v.kind != KindList {
		return nil
	}
	out := make([]string, len(v.list))
	for i, item := range v.list {
		out[i] = item.Text()
	}
	return out
}

// Or returns v when present and fallback otherwise.
func (v Value) Or(fallback string) string {
	if !v.Present() {
		return fallback
	}
	return v.Text()
}
