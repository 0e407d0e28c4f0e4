// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package markdown is a goldmark extension that renders <MenuTrail /> and
// <Shortcut /> tags embedded in documentation pages.
//
// A tag alone on a line becomes a block; a tag inside a paragraph stays
// inline. Tags must be self-closing and fit on one line. Props are resolved
// while parsing, using the platform hint stored in the parser context.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/olegiv/docwidgets/internal/platform"
	"github.com/olegiv/docwidgets/internal/render"
)

// Node kinds.
var (
	KindWidget      = ast.NewNodeKind("Widget")
	KindWidgetBlock = ast.NewNodeKind("WidgetBlock")
)

// Widget is an inline component.
type Widget struct {
	ast.BaseInline
	Resolved
}

// Kind implements ast.Node.
func (n *Widget) Kind() ast.NodeKind { return KindWidget }

// Dump implements ast.Node.
func (n *Widget) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Component": n.Component}, nil)
}

// WidgetBlock is a component on a line of its own.
type WidgetBlock struct {
	ast.BaseBlock
	Resolved
}

// Kind implements ast.Node.
func (n *WidgetBlock) Kind() ast.NodeKind { return KindWidgetBlock }

// Dump implements ast.Node.
func (n *WidgetBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Component": n.Component}, nil)
}

var hintsKey = parser.NewContextKey()

// NewContext returns a parser context carrying the platform hint used to
// resolve Shortcut tags.
func NewContext(hints platform.HintProvider) parser.Context {
	pc := parser.NewContext()
	pc.Set(hintsKey, hints)
	return pc
}

func hintsFrom(pc parser.Context) platform.HintProvider {
	if h, ok := pc.Get(hintsKey).(platform.HintProvider); ok && h != nil {
		return h
	}
	return platform.None
}

type inlineParser struct{}

func (p *inlineParser) Trigger() []byte { return []byte{'<'} }

func (p *inlineParser) Parse(_ ast.Node, block text.Reader, pc parser.Context) ast.Node {
	line, _ := block.PeekLine()
	t, ok := scanTag(line)
	if !ok {
		return nil
	}
	res, ok := resolve(t, hintsFrom(pc))
	if !ok {
		return nil
	}
	block.Advance(t.Len)
	return &Widget{Resolved: res}
}

type blockParser struct{}

func (p *blockParser) Trigger() []byte { return []byte{'<'} }

func (p *blockParser) Open(_ ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, segment := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) {
		return nil, parser.NoChildren
	}
	t, ok := scanTag(line[pos:])
	if !ok || len(bytes.TrimSpace(line[pos+t.Len:])) != 0 {
		return nil, parser.NoChildren
	}
	res, ok := resolve(t, hintsFrom(pc))
	if !ok {
		return nil, parser.NoChildren
	}
	n := segment.Len()
	if bytes.HasSuffix(line, []byte{'\n'}) {
		n--
	}
	reader.Advance(n)
	return &WidgetBlock{Resolved: res}, parser.NoChildren
}

func (p *blockParser) Continue(_ ast.Node, _ text.Reader, _ parser.Context) parser.State {
	return parser.Close
}

func (p *blockParser) Close(_ ast.Node, _ text.Reader, _ parser.Context) {}

func (p *blockParser) CanInterruptParagraph() bool { return true }

func (p *blockParser) CanAcceptIndentedLine() bool { return false }

type htmlRenderer struct {
	widgets *render.Renderer
}

func (r *htmlRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(KindWidget, r.renderWidget)
	reg.Register(KindWidgetBlock, r.renderWidget)
}

func (r *htmlRenderer) renderWidget(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	var res Resolved
	switch n := node.(type) {
	case *Widget:
		res = n.Resolved
	case *WidgetBlock:
		res = n.Resolved
	}
	out, err := HTML(r.widgets, res)
	if err != nil {
		return ast.WalkStop, err
	}
	_, _ = w.WriteString(string(out))
	if node.Type() == ast.TypeBlock && out != "" {
		_ = w.WriteByte('\n')
	}
	return ast.WalkSkipChildren, nil
}

// HTML renders a resolved component. Empty components render nothing.
func HTML(r *render.Renderer, res Resolved) (template.HTML, error) {
	if res.Empty {
		return "", nil
	}
	switch res.Component {
	case ComponentMenuTrail:
		return r.MenuTrail(res.Trail)
	case ComponentShortcut:
		return r.Shortcut(res.Shortcut)
	default:
		return "", fmt.Errorf("unknown component %q", res.Component)
	}
}

// Extension registers the component parsers and renderer.
type Extension struct {
	Renderer *render.Renderer
}

// Extend implements goldmark.Extender.
func (e *Extension) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithInlineParsers(util.Prioritized(&inlineParser{}, 99)),
		parser.WithBlockParsers(util.Prioritized(&blockParser{}, 99)),
	)
	m.Renderer().AddOptions(
		renderer.WithNodeRenderers(util.Prioritized(&htmlRenderer{widgets: e.Renderer}, 500)),
	)
}

// Converter renders markdown documents containing components.
type Converter struct {
	md goldmark.Markdown
}

// New returns a Converter using GitHub-flavoured markdown plus components.
func New(r *render.Renderer) *Converter {
	return &Converter{
		md: goldmark.New(goldmark.WithExtensions(extension.GFM, &Extension{Renderer: r})),
	}
}

// Convert renders src to HTML. Shortcut tags set to platform="auto" are
// resolved with hints.
func (c *Converter) Convert(src []byte, hints platform.HintProvider) (template.HTML, error) {
	var buf bytes.Buffer
	if err := c.md.Convert(src, &buf, parser.WithContext(NewContext(hints))); err != nil {
		return "", fmt.Errorf("converting markdown: %w", err)
	}
	return template.HTML(buf.String()), nil //nolint:gosec // sanitised by callers serving untrusted docs
}
