// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/jeranaias/ganttview/internal/config"
	"github.com/jeranaias/ganttview/internal/store"
	"github.com/jeranaias/ganttview/internal/ui/styles"
)

// =============================================================================
// PROGRAM ASSEMBLY
// =============================================================================

// watchDebounce is how long plan file writes must settle before a reload.
const watchDebounce = 250 * time.Millisecond

// Run mounts the chart in the terminal and blocks until the user quits.
// When the config names a plan file and watching is enabled, edits to it
// reload the chart live.
func Run(cfg *config.Config, plan *store.Plan, st *store.Store) error {
	caps := styles.DetectCapabilities()
	UseASCII(!caps.Unicode)
	logrus.WithFields(logrus.Fields{
		"profile": caps.Profile,
		"dark":    caps.DarkBackground,
	}).Debug("terminal capabilities")

	p := tea.NewProgram(
		New(cfg, plan, st),
		tea.WithAltScreen(),
		// Hover needs motion events between clicks.
		tea.WithMouseAllMotion(),
	)

	if cfg.Plan.Path != "" && cfg.Plan.Watch {
		watcher, err := store.WatchPlan(cfg.Plan.Path, watchDebounce, func() {
			reloaded, err := store.LoadPlan(cfg.Plan.Path)
			if err != nil {
				p.Send(PlanReloadErrorMsg{Err: err})
				return
			}
			if st != nil {
				if err := st.SaveSnapshot(reloaded); err != nil {
					logrus.WithError(err).Warn("saving reloaded snapshot failed")
				}
			}
			p.Send(PlanReloadedMsg{Plan: reloaded})
		})
		if err != nil {
			// Watching is a convenience; run without it.
			logrus.WithError(err).Warn("plan watching unavailable")
		} else {
			defer watcher.Close()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
