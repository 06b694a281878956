// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package store

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// PLAN WATCHER
// =============================================================================

// PlanWatcher reloads the plan file when it changes on disk. Editors save
// through rename-into-place, so the watch is on the parent directory and
// events are filtered down to the plan's own name.
type PlanWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	onChange func()

	mu      sync.Mutex
	pending time.Time

	ctx    context.Context
	cancel context.CancelFunc
}

// WatchPlan starts watching a plan file. onChange fires on the watcher's
// goroutine after writes have settled for the debounce interval; rapid
// save bursts collapse into one callback.
func WatchPlan(path string, debounce time.Duration, onChange func()) (*PlanWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve plan path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch plan directory: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	pw := &PlanWatcher{
		path:     abs,
		watcher:  watcher,
		debounce: debounce,
		onChange: onChange,
		ctx:      ctx,
		cancel:   cancel,
	}

	go pw.processEvents()
	go pw.processPending()

	return pw, nil
}

// processEvents filters directory events down to the plan file.
func (pw *PlanWatcher) processEvents() {
	for {
		select {
		case <-pw.ctx.Done():
			return

		case event, ok := <-pw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != pw.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pw.mu.Lock()
			pw.pending = time.Now()
			pw.mu.Unlock()

		case err, ok := <-pw.watcher.Errors:
			if !ok {
				return
			}
			logrus.WithError(err).Warn("plan watcher error")
		}
	}
}

// processPending fires the callback once writes have settled.
func (pw *PlanWatcher) processPending() {
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-pw.ctx.Done():
			return

		case <-ticker.C:
			pw.mu.Lock()
			fire := !pw.pending.IsZero() && time.Since(pw.pending) >= pw.debounce
			if fire {
				pw.pending = time.Time{}
			}
			pw.mu.Unlock()

			if fire {
				pw.onChange()
			}
		}
	}
}

// Close stops watching and releases resources.
func (pw *PlanWatcher) Close() error {
	pw.cancel()
	return pw.watcher.Close()
}
