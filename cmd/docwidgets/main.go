// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/olegiv/docwidgets/internal/config"
	"github.com/olegiv/docwidgets/internal/render"
	"github.com/olegiv/docwidgets/internal/version"
	"github.com/olegiv/docwidgets/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func versionInfo() version.Info {
	return version.New(appVersion, appGitCommit, appBuildTime)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "docwidgets",
		Short: "Render menu trails and keyboard shortcuts for documentation",
		Long: `docwidgets resolves MenuTrail and Shortcut widgets from their props and
renders them as HTML fragments, full markdown pages, or terminal output.

Configuration is read from DOCW_* environment variables and an optional .env file.`,
		Version:       versionInfo().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			// Load .env files if present (development)
			_ = godotenv.Load()
		},
	}
	root.SetVersionTemplate("{{.Version}}\n")

	root.AddCommand(
		newServeCmd(),
		newTrailCmd(),
		newShortcutCmd(),
		newPageCmd(),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionInfo().String())
		},
	}
}

// loadRenderer loads the configuration and builds the HTML renderer over the
// embedded templates.
func loadRenderer() (*config.Config, *render.Renderer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	templates, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return nil, nil, fmt.Errorf("opening templates: %w", err)
	}
	renderer, err := render.New(render.Config{TemplatesFS: templates, IconCDN: cfg.IconCDN})
	if err != nil {
		return nil, nil, fmt.Errorf("loading templates: %w", err)
	}
	return cfg, renderer, nil
}
