// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docs

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type frontMatter struct {
	Title       string `yaml:"title" toml:"title"`
	Description string `yaml:"description" toml:"description"`
}

// splitFrontMatter extracts a leading "---" (YAML) or "+++" (TOML) block.
// Sources without one are returned unchanged.
func splitFrontMatter(src []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	src = bytes.TrimPrefix(src, []byte("\ufeff"))

	var delim []byte
	switch {
	case hasDelimLine(src, "---"):
		delim = []byte("---")
	case hasDelimLine(src, "+++"):
		delim = []byte("+++")
	default:
		return fm, src, nil
	}

	rest := src[bytes.IndexByte(src, '\n')+1:]
	head, body, ok := cutDelim(rest, delim)
	if !ok {
		return fm, src, fmt.Errorf("unterminated %s block", delim)
	}

	var err error
	if delim[0] == '-' {
		err = yaml.Unmarshal(head, &fm)
	} else {
		err = toml.Unmarshal(head, &fm)
	}
	if err != nil {
		return fm, src, err
	}
	return fm, body, nil
}

func hasDelimLine(src []byte, delim string) bool {
	line, _, found := bytes.Cut(src, []byte("\n"))
	return found && string(bytes.TrimRight(line, " \t\r")) == delim
}

// cutDelim splits src at the first line consisting of delim.
func cutDelim(src, delim []byte) (head, body []byte, ok bool) {
	off := 0
	for off <= len(src) {
		end := bytes.IndexByte(src[off:], '\n')
		var line []byte
		next := len(src) + 1
		if end < 0 {
			line = src[off:]
		} else {
			line = src[off : off+end]
			next = off + end + 1
		}
		if bytes.Equal(bytes.TrimRight(line, " \t\r"), delim) {
			if next > len(src) {
				next = len(src)
			}
			return src[:off], src[next:], true
		}
		off = next
	}
	return nil, nil, false
}
