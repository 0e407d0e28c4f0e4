// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docs

import (
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	lengthRegex  = regexp.MustCompile(`^\d{1,3}px$`)
	keywordRegex = regexp.MustCompile(`^[a-z-]{1,32}$`)
)

// NewPolicy extends bluemonday's UGC policy with the markup the widgets
// emit. Icon masks may only point at iconCDN.
func NewPolicy(iconCDN string) *bluemonday.Policy {
	p := bluemonday.UGCPolicy()

	p.AllowElements("span", "div", "kbd", "svg", "rect")
	p.AllowAttrs("class").Globally()
	p.AllowAttrs("role").Matching(regexp.MustCompile(`^(list|listitem)$`)).Globally()
	p.AllowAttrs("aria-label").Globally()
	p.AllowAttrs("aria-hidden").Matching(regexp.MustCompile(`^true$`)).Globally()
	p.AllowAttrs("aria-current").Matching(regexp.MustCompile(`^page$`)).Globally()
	p.AllowAttrs("data-component-part").Matching(regexp.MustCompile(`^[a-z-]+$`)).Globally()
	p.AllowAttrs("viewbox", "x", "y", "width", "height", "rx").OnElements("svg", "rect")

	mask := maskURLHandler(iconCDN)
	p.AllowStyles("mask-image", "-webkit-mask-image").MatchingHandler(mask).OnElements("span")
	p.AllowStyles("width", "height").Matching(lengthRegex).OnElements("span")
	p.AllowStyles(
		"background-color", "mask-repeat", "-webkit-mask-repeat", "mask-position",
		"-webkit-mask-position", "display", "vertical-align", "font-variant-ligatures",
		"line-height", "-webkit-font-smoothing",
	).MatchingHandler(func(v string) bool {
		return v == "1" || keywordRegex.MatchString(strings.ToLower(v))
	}).Globally()

	return p
}

func maskURLHandler(iconCDN string) func(string) bool {
	// bluemonday lower-cases style values before matching.
	prefix := `url("` + strings.ToLower(strings.TrimRight(iconCDN, "/")) + "/"
	return func(v string) bool {
		if !strings.HasPrefix(v, prefix) || !strings.HasSuffix(v, `")`) {
			return false
		}
		inner := v[len(prefix) : len(v)-2]
		return !strings.ContainsAny(inner, `"'()\ `) && !strings.Contains(inner, "..")
	}
}
