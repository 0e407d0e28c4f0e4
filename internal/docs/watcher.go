// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package docs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Watcher invalidates cached pages when their markdown files change.
type Watcher struct {
	watcher *fsnotify.Watcher
	lib     *Library
	log     *slog.Logger
	done    chan struct{}
	stopped chan struct{}
	changed chan string
}

// NewWatcher starts watching the library directory.
func NewWatcher(lib *Library, log *slog.Logger) (*Watcher, error) {
	if log == nil {
		log = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	if err := fw.Add(lib.Dir()); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watching %s: %w", lib.Dir(), err)
	}

	w := &Watcher{
		watcher: fw,
		lib:     lib,
		log:     log,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
		changed: make(chan string, 16),
	}
	go w.loop()

	log.Info("watching docs directory", "dir", lib.Dir())
	return w, nil
}

// Changed delivers the slug of every page invalidated. Slugs are dropped
// when nobody is reading.
func (w *Watcher) Changed() <-chan string {
	return w.changed
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	err := w.watcher.Close()
	<-w.stopped
	if err != nil {
		return fmt.Errorf("closing fsnotify watcher: %w", err)
	}
	return nil
}

func (w *Watcher) loop() {
	defer close(w.stopped)

	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			slug, ok := slugForEvent(event)
			if !ok {
				continue
			}
			if err := w.lib.Invalidate(context.Background(), slug); err != nil {
				w.log.Warn("failed to invalidate cached page", "slug", slug, "error", err)
				continue
			}
			w.log.Debug("page changed", "slug", slug, "op", event.Op.String())

			select {
			case w.changed <- slug:
			default:
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}

// slugForEvent maps a change to a markdown page onto its slug.
func slugForEvent(event fsnotify.Event) (string, bool) {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return "", false
	}
	name := filepath.Base(event.Name)
	if !strings.HasSuffix(name, ".md") {
		return "", false
	}
	slug := strings.TrimSuffix(name, ".md")
	return slug, IsValidSlug(slug)
}
