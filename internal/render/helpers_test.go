// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"io/fs"
	"testing"

	"github.com/olegiv/docwidgets/web"
)

func templatesFS(t *testing.T) fs.FS {
	t.Helper()
	sub, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		t.Fatalf("fs.Sub: %v", err)
	}
	return sub
}
