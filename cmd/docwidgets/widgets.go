// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/spf13/cobra"

	"github.com/olegiv/docwidgets/internal/console"
	"github.com/olegiv/docwidgets/internal/docs"
	"github.com/olegiv/docwidgets/internal/markdown"
	"github.com/olegiv/docwidgets/internal/platform"
	"github.com/olegiv/docwidgets/internal/props"
	"github.com/olegiv/docwidgets/internal/render"
	"github.com/olegiv/docwidgets/internal/shortcut"
	"github.com/olegiv/docwidgets/internal/trail"
)

// widgetFlags are shared by the trail and shortcut commands.
type widgetFlags struct {
	html bool
	hint string
}

func (f *widgetFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.html, "html", false, "print the HTML fragment instead of terminal output")
	cmd.Flags().StringVar(&f.hint, "hint", "", `user-agent-like hint for platform="auto" (default: the host OS)`)
}

func (f *widgetFlags) hints() platform.HintProvider {
	if f.hint != "" {
		return platform.Static(f.hint)
	}
	return hostHint(runtime.GOOS)
}

// hostHint describes the local operating system the way a browser would.
func hostHint(goos string) platform.HintProvider {
	switch goos {
	case "darwin":
		return platform.Static("Macintosh")
	case "windows":
		return platform.Static("Windows")
	default:
		return platform.Static("X11; Linux")
	}
}

// parseArgs reads the component attributes, written as they would appear in
// markdown, from the command arguments.
func parseArgs(args []string) (props.Bag, error) {
	bag, err := props.ParseAttrs(strings.Join(args, " "))
	if err != nil {
		return nil, fmt.Errorf("parsing attributes: %w", err)
	}
	return bag, nil
}

func newTrailCmd() *cobra.Command {
	var flags widgetFlags
	cmd := &cobra.Command{
		Use:   "trail [attributes...]",
		Short: "Render a MenuTrail",
		Example: `  docwidgets trail 'segments="Settings, Account"'
  docwidgets trail 'segments={["View", "Zoom"]} mode="block" title="Zoom in"' --html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := parseArgs(args)
			if err != nil {
				return err
			}
			m, ok := trail.Resolve(bag)
			if !ok {
				return nil
			}
			return writeWidget(cmd.OutOrStdout(), flags.html,
				func(r *render.Renderer) (template.HTML, error) { return r.MenuTrail(m) },
				func(c *console.Renderer) string { return c.MenuTrail(m) })
		},
	}
	flags.register(cmd)
	return cmd
}

func newShortcutCmd() *cobra.Command {
	var flags widgetFlags
	cmd := &cobra.Command{
		Use:   "shortcut [attributes...]",
		Short: "Render a Shortcut",
		Example: `  docwidgets shortcut 'combo="Cmd+Shift+P"'
  docwidgets shortcut 'combo="Ctrl+K, Ctrl+S" platform="win"' --html`,
		RunE: func(cmd *cobra.Command, args []string) error {
			bag, err := parseArgs(args)
			if err != nil {
				return err
			}
			m, ok := shortcut.Resolve(bag, flags.hints())
			if !ok {
				return nil
			}
			return writeWidget(cmd.OutOrStdout(), flags.html,
				func(r *render.Renderer) (template.HTML, error) { return r.Shortcut(m) },
				func(c *console.Renderer) string { return c.Shortcut(m) })
		},
	}
	flags.register(cmd)
	return cmd
}

func writeWidget(w io.Writer, asHTML bool, toHTML func(*render.Renderer) (template.HTML, error), toText func(*console.Renderer) string) error {
	if !asHTML {
		_, err := fmt.Fprintln(w, toText(console.New(w)))
		return err
	}
	_, renderer, err := loadRenderer()
	if err != nil {
		return err
	}
	out, err := toHTML(renderer)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

func newPageCmd() *cobra.Command {
	var (
		hint string
		full bool
	)
	cmd := &cobra.Command{
		Use:   "page <file.md>",
		Short: "Render a markdown document containing widgets to sanitised HTML",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPage(cmd.OutOrStdout(), args[0], hint, full)
		},
	}
	cmd.Flags().StringVar(&hint, "hint", "", `user-agent-like hint for platform="auto" (default: the host OS)`)
	cmd.Flags().BoolVar(&full, "full", false, "wrap the content in the page layout")
	return cmd
}

func runPage(w io.Writer, path, hint string, full bool) error {
	src, err := os.ReadFile(path) //nolint:gosec // path is supplied by the operator
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	cfg, renderer, err := loadRenderer()
	if err != nil {
		return err
	}

	slug := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	doc, err := docs.Parse(slug, src)
	if err != nil {
		return err
	}

	flags := widgetFlags{hint: hint}
	library := docs.NewLibrary(filepath.Dir(path), markdown.New(renderer), cfg.IconCDN)
	content, err := library.Render(doc, flags.hints())
	if err != nil {
		return err
	}

	if !full {
		_, err = io.WriteString(w, string(content))
		return err
	}
	return renderer.Page(w, render.PageData{
		Title:       doc.Title,
		Description: doc.Description,
		Content:     content,
		Version:     versionInfo().Version,
	})
}
