// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package platform

import (
	"net/http"

	"github.com/mileusna/useragent"
)

// RequestHint reads the platform hint from an HTTP request's User-Agent.
type RequestHint struct {
	UserAgent string
}

// FromRequest returns a HintProvider for r.
func FromRequest(r *http.Request) RequestHint {
	return RequestHint{UserAgent: r.UserAgent()}
}

// PlatformHint implements HintProvider. Empty agents and crawlers report no
// hint so they receive the fallback platform.
func (h RequestHint) PlatformHint() (string, bool) {
	if h.UserAgent == "" {
		return "", false
	}
	if useragent.Parse(h.UserAgent).Bot {
		return "", false
	}
	return h.UserAgent, true
}
