// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package props

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
)

// ErrMalformedAttrs is returned when an attribute list cannot be scanned.
var ErrMalformedAttrs = errors.New("malformed attributes")

// ParseAttrs parses a JSX-style attribute list such as
//
//	segments={["Settings", "Account"]} icon={false} mode="block" bold
//
// Supported values are double or single quoted strings, braced expressions
// (true, false, null, undefined, numbers, quoted strings, arrays), and bare
// names which mean true. Arrays may carry comments, trailing commas, and
// single-quoted or backtick strings.
func ParseAttrs(s string) (Bag, error) {
	sc := attrScanner{src: s}
	bag := make(Bag)
	for {
		sc.skipSpace()
		if sc.done() {
			return bag, nil
		}
		name := sc.name()
		if name == "" {
			return nil, fmt.Errorf("%w: unexpected %q at offset %d", ErrMalformedAttrs, sc.src[sc.pos], sc.pos)
		}
		sc.skipSpace()
		if sc.done() || sc.peek() != '=' {
			bag[name] = Bool(true)
			continue
		}
		sc.pos++ // '='
		sc.skipSpace()
		v, err := sc.value()
		if err != nil {
			return nil, fmt.Errorf("attribute %s: %w", name, err)
		}
		bag[name] = v
	}
}

type attrScanner struct {
	src string
	pos int
}

func (sc *attrScanner) done() bool { return sc.pos >= len(sc.src) }

func (sc *attrScanner) peek() byte { return sc.src[sc.pos] }

func (sc *attrScanner) skipSpace() {
	for !sc.done() {
		switch sc.peek() {
		case ' ', '\t', '\n', '\r':
			sc.pos++
		default:
			return
		}
	}
}

func isNameByte(c byte, first bool) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c == '_':
		return true
	case !first && (c >= '0' && c <= '9' || c == '-' || c == ':'):
		return true
	}
	return false
}

func (sc *attrScanner) name() string {
	start := sc.pos
	for !sc.done() && isNameByte(sc.peek(), sc.pos == start) {
		sc.pos++
	}
	return sc.src[start:sc.pos]
}

func (sc *attrScanner) value() (Value, error) {
	if sc.done() {
		return Value{}, fmt.Errorf("%w: missing value", ErrMalformedAttrs)
	}
	switch c := sc.peek(); c {
	case '"', '\'':
		end := strings.IndexByte(sc.src[sc.pos+1:], c)
		if end < 0 {
			return Value{}, fmt.Errorf("%w: unterminated string", ErrMalformedAttrs)
		}
		s := sc.src[sc.pos+1 : sc.pos+1+end]
		sc.pos += end + 2
		return String(s), nil
	case '{':
		end, err := matchBrace(sc.src, sc.pos)
		if err != nil {
			return Value{}, err
		}
		expr := sc.src[sc.pos+1 : end]
		sc.pos = end + 1
		return parseExpr(expr)
	default:
		return Value{}, fmt.Errorf("%w: unquoted value", ErrMalformedAttrs)
	}
}

// matchBrace returns the index of the brace closing the one at open,
// skipping over quoted strings.
func matchBrace(s string, open int) (int, error) {
	depth := 0
	var quote byte
	for i := open; i < len(s); i++ {
		c := s[i]
		if quote != 0 {
			switch c {
			case '\\':
				i++
			case quote:
				quote = 0
			}
			continue
		}
		switch c {
		case '"', '\'', '`':
			quote = c
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: unterminated expression", ErrMalformedAttrs)
}

func parseExpr(expr string) (Value, error) {
	expr = strings.TrimSpace(expr)
	switch expr {
	case "true":
		return Bool(true), nil
	case "false":
		return Bool(false), nil
	case "null":
		return Null(), nil
	case "undefined", "":
		return Absent(), nil
	}
	if n, err := strconv.ParseFloat(expr, 64); err == nil {
		return Number(n), nil
	}
	switch expr[0] {
	case '"':
		s, err := strconv.Unquote(expr)
		if err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrMalformedAttrs, err)
		}
		return String(s), nil
	case '\'', '`':
		if len(expr) < 2 || expr[len(expr)-1] != expr[0] {
			return Value{}, fmt.Errorf("%w: unterminated string", ErrMalformedAttrs)
		}
		return String(expr[1 : len(expr)-1]), nil
	case '[':
		var raw any
		if err := json.Unmarshal(jsonc.ToJSON([]byte(doubleQuoted(expr))), &raw); err != nil {
			return Value{}, fmt.Errorf("%w: %v", ErrMalformedAttrs, err)
		}
		return fromJSON(raw), nil
	}
	return Value{}, fmt.Errorf("%w: unsupported expression %q", ErrMalformedAttrs, expr)
}

// doubleQuoted rewrites single-quoted and backtick string literals in a JS
// array literal as JSON strings. Double-quoted strings and comments pass
// through untouched.
func doubleQuoted(expr string) string {
	var b strings.Builder
	b.Grow(len(expr))
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '"':
			end := i + 1
			for end < len(expr) && expr[end] != '"' {
				if expr[end] == '\\' {
					end++
				}
				end++
			}
			end = min(end, len(expr)-1)
			b.WriteString(expr[i : end+1])
			i = end
		case c == '/' && i+1 < len(expr) && (expr[i+1] == '/' || expr[i+1] == '*'):
			closer := "\n"
			if expr[i+1] == '*' {
				closer = "*/"
			}
			end := strings.Index(expr[i+2:], closer)
			if end < 0 {
				b.WriteString(expr[i:])
				return b.String()
			}
			end += i + 2 + len(closer)
			b.WriteString(expr[i:end])
			i = end - 1
		case c == '\'' || c == '`':
			var lit strings.Builder
			j := i + 1
			for ; j < len(expr) && expr[j] != c; j++ {
				if expr[j] == '\\' && j+1 < len(expr) {
					j++
					switch expr[j] {
					case 'n':
						lit.WriteByte('\n')
					case 't':
						lit.WriteByte('\t')
					default:
						lit.WriteByte(expr[j])
					}
					continue
				}
				lit.WriteByte(expr[j])
			}
			if j >= len(expr) {
				// Unterminated; leave it for the JSON decoder to reject.
				b.WriteString(expr[i:])
				return b.String()
			}
			quoted, _ := json.Marshal(lit.String())
			b.Write(quoted)
			i = j
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func fromJSON(raw any) Value {
	switch v := raw.(type) {
	case nil:
		return Null()
	case bool:
		return Bool(v)
	case float64:
		return Number(v)
	case string:
		return String(v)
	case []any:
		items := make([]Value, len(v))
		for i, item := range v {
			items[i] = fromJSON(item)
		}
		return Value{kind: KindList, list: items}
	default:
		return Null()
	}
}
