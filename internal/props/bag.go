// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package props

import (
	"net/url"
	"sort"
	"strings"
)

// Bag holds the properties supplied to a widget, keyed by property name.
type Bag map[string]Value

// Get returns the first present value among name and its aliases.
// When none is present the result for name is returned as is, which keeps an
// explicit null distinguishable from a missing property.
func (b Bag) Get(name string, aliases ...string) Value {
	if v, ok := b[name]; ok && v.Present() {
		return v
	}
	for _, alias := range aliases {
		if v, ok := b[alias]; ok && v.Present() {
			return v
		}
	}
	return b[name]
}

// Set stores v under name and returns the bag for chaining.
func (b Bag) Set(name string, v Value) Bag {
	b[name] = v
	return b
}

// Names returns the property names in sorted order.
func (b Bag) Names() []string {
	names := make([]string, 0, len(b))
	for name := range b {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FromQuery builds a Bag from URL query parameters. A key given once becomes
// a string, except the literals "true" and "false" which become booleans. A
// key repeated becomes a list of strings in the order given.
func FromQuery(q url.Values) Bag {
	bag := make(Bag, len(q))
	for name, values := range q {
		switch len(values) {
		case 0:
			bag[name] = String("")
		case 1:
			bag[name] = queryScalar(values[0])
		default:
			bag[name] = Strings(values...)
		}
	}
	return bag
}

func queryScalar(s string) Value {
	switch strings.TrimSpace(s) {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	default:
		return String(s)
	}
}
