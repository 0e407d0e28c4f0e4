// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package render

import (
	"bytes"
	"html/template"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/olegiv/docwidgets/internal/platform"
	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/shortcut"
	"github.com/olegiv/docwidgets/internal/trail"
	"github.com/olegiv/docwidgets/web"
)

func newTestRenderer(t *testing.T) *Renderer {
	t.Helper()
	r, err := New(Config{TemplatesFS: templatesFS(t), IconCDN: "https://icons.example.com/v6"})
	require.NoError(t, err)
	return r
}

func parse(t *testing.T, html template.HTML) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(html)))
	require.NoError(t, err)
	return doc
}

func resolveTrail(t *testing.T, bag props.Bag) trail.Model {
	t.Helper()
	m, ok := trail.Resolve(bag)
	require.True(t, ok)
	return m
}

func TestMenuTrail_Inline(t *testing.T) {
	r := newTestRenderer(t)
	out, err := r.MenuTrail(resolveTrail(t, props.Bag{"segments": props.String("Settings, Account, Security")}))
	require.NoError(t, err)

	doc := parse(t, out)
	current := doc.Find(`[aria-current="page"]`)
	require.Equal(t, 1, current.Length())
	assert.Equal(t, "Security", current.Text())
	assert.True(t, current.HasClass("font-semibold"), "inline default emphasis is bold")

	// icon + separator after it + two separators between segments
	seps := doc.Find(`span[aria-hidden="true"].select-none`)
	assert.Equal(t, 3, seps.Length())
	assert.Equal(t, "›", strings.TrimSpace(seps.First().Text()))

	iconSpan := doc.Find("span.icon")
	require.Equal(t, 1, iconSpan.Length())
	styleAttr, _ := iconSpan.Attr("style")
	assert.Contains(t, styleAttr, "https://icons.example.com/v6/light/bars-staggered.svg")
	assert.Contains(t, styleAttr, "width: 14px")
	assert.Equal(t, "Menu", doc.Find(".sr-only").Text())

	assert.Equal(t, 0, doc.Find(".code-block").Length())
}

func TestMenuTrail_IconOnly(t *testing.T) {
	r := newTestRenderer(t)
	out, err := r.MenuTrail(resolveTrail(t, props.Bag{"segments": props.Strings()}))
	require.NoError(t, err)

	doc := parse(t, out)
	assert.Equal(t, 1, doc.Find("span.icon").Length())
	assert.Equal(t, 0, doc.Find(`span.select-none`).Length(), "no separator without segments")
	assert.Equal(t, 0, doc.Find(`[aria-current]`).Length())
}

func TestMenuTrail_BlockWithTitle(t *testing.T) {
	r := newTestRenderer(t)
	out, err := r.MenuTrail(resolveTrail(t, props.Bag{
		"segments": props.Strings("File", "Export"),
		"mode":     props.String("block"),
		"title":    props.String("Export <menu>"),
		"icon":     props.Bool(false),
	}))
	require.NoError(t, err)

	doc := parse(t, out)
	assert.Equal(t, 1, doc.Find(".code-block").Length())
	header := doc.Find(`[data-component-part="code-block-header-filename"]`)
	assert.Contains(t, header.Text(), "Export <menu>")
	assert.NotContains(t, string(out), "<menu>", "title must be escaped")
	assert.True(t, doc.Find(`[aria-current="page"]`).HasClass("rounded-md"), "block pill")
	assert.Equal(t, 0, doc.Find("span.icon").Length())
	assert.Equal(t, 1, doc.Find(`[data-component-part="code-block-root"].font-mono`).Length())
}

func TestMenuTrail_EmphasisNone(t *testing.T) {
	r := newTestRenderer(t)
	out, err := r.MenuTrail(resolveTrail(t, props.Bag{
		"segments":  props.String("A,B"),
		"emphasise": props.String("none"),
	}))
	require.NoError(t, err)
	assert.Equal(t, 0, parse(t, out).Find(`[aria-current]`).Length())
}

func TestShortcut_Inline(t *testing.T) {
	r := newTestRenderer(t)
	m, ok := shortcut.Resolve(props.Bag{
		"combo":    props.String("Cmd+Shift+P"),
		"platform": props.String("mac"),
		"display":  props.String("symbols"),
	}, platform.None)
	require.True(t, ok)

	out, err := r.Shortcut(m)
	require.NoError(t, err)

	doc := parse(t, out)
	var keys []string
	doc.Find("kbd").Each(func(_ int, s *goquery.Selection) {
		keys = append(keys, s.Text())
	})
	assert.Equal(t, []string{"⌘", "⇧", "P"}, keys)
	label, _ := doc.Find("kbd").First().Attr("aria-label")
	assert.Equal(t, "Key ⌘", label)
	assert.Equal(t, 2, doc.Find(`span.opacity-60`).Length())
	assert.True(t, doc.Find("kbd").HasClass("h-7"), "md size by default")
}

func TestShortcut_StepsAndBlock(t *testing.T) {
	r := newTestRenderer(t)
	m, ok := shortcut.Resolve(props.Bag{
		"combo":    props.String("ctrl+k, ctrl+s"),
		"platform": props.String("win"),
		"mode":     props.String("block"),
		"title":    props.String("Save all"),
		"size":     props.String("sm"),
	}, platform.None)
	require.True(t, ok)

	out, err := r.Shortcut(m)
	require.NoError(t, err)

	doc := parse(t, out)
	assert.Equal(t, 2, doc.Find(`[role="listitem"]`).Length())
	assert.Equal(t, "then", strings.TrimSpace(doc.Find(".text-gray-500").Last().Text()))
	label, _ := doc.Find(`[role="list"]`).Attr("aria-label")
	assert.Equal(t, "Ctrl + K, then Ctrl + S", label)
	assert.Contains(t, doc.Find(`[data-component-part="code-block-header-filename"]`).Text(), "Save all")
	assert.True(t, doc.Find("kbd").HasClass("h-6"))
}

func TestVisibleJoiner(t *testing.T) {
	assert.Equal(t, "then", visibleJoiner(", then "))
	assert.Equal(t, "→", visibleJoiner(" → "))
	assert.Equal(t, "", visibleJoiner(", "))
}

func TestPage(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	err := r.Page(&buf, PageData{
		Title:       "Keyboard",
		Description: "Shortcuts",
		Content:     template.HTML("<p>hello</p>"),
		Version:     "v1.0.0",
	})
	require.NoError(t, err)

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", doc.Find("title").Text())
	assert.Equal(t, "hello", doc.Find("main p").Text())
}

func TestPage_KeepsBlankLinesInCode(t *testing.T) {
	r := newTestRenderer(t)
	var buf bytes.Buffer
	err := r.Page(&buf, PageData{
		Title:   "Snippets",
		Content: template.HTML("<pre><code>line1\n\nline3\n</code></pre>"),
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "<pre><code>line1\n\nline3\n</code></pre>")
}

func TestBlankLinesRegex(t *testing.T) {
	got := blankLinesRegex.ReplaceAllString("a\n\n  \nb\r\n\r\nc", "\n")
	assert.Equal(t, "a\nb\nc", got)
}

func TestNew_DefaultCDN(t *testing.T) {
	r, err := New(Config{TemplatesFS: templatesFS(t)})
	require.NoError(t, err)
	assert.Contains(t, r.IconCDN(), "cloudfront")
}

func TestNew_MissingTemplates(t *testing.T) {
	_, err := New(Config{TemplatesFS: web.Templates})
	require.Error(t, err, "embedded FS root has no widgets/ directory")
}
