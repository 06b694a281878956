// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ganttview/internal/export"
	"github.com/jeranaias/ganttview/internal/store"
)

// =============================================================================
// UPDATE
// =============================================================================

// scrollStepPx is the pixel distance one scroll key press moves the viewport.
const scrollStepPx = 50

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.clampScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case PlanReloadedMsg:
		// Replace through the shared pointer so the controller's commit
		// callback keeps writing to the live plan.
		*m.plan = *msg.Plan
		m.rebuild()
		return m.flashStatus("plan reloaded", false)

	case PlanReloadErrorMsg:
		return m.flashStatus("reload failed: "+msg.Err.Error(), true)

	case ExportResultMsg:
		if msg.Err != nil {
			return m.flashStatus("export failed: "+msg.Err.Error(), true)
		}
		return m.flashStatus("exported "+msg.Path, false)

	case statusClearMsg:
		m.status = ""
		m.statusErr = false
		return m, nil
	}

	return m, nil
}

// handleKey dispatches keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.ScrollLeft):
		m.view.ScrollX -= scrollStepPx
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.ScrollRight):
		m.view.ScrollX += scrollStepPx
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.ScrollUp):
		m.view.ScrollY -= scrollStepPx
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.ScrollDown):
		m.view.ScrollY += scrollStepPx
		m.clampScroll()
		return m, nil

	case key.Matches(msg, m.keys.Today):
		return m.jumpToToday()

	case key.Matches(msg, m.keys.ZoomIn):
		m.view.ZoomIn()
		m.rebuild()
		return m, nil

	case key.Matches(msg, m.keys.ZoomOut):
		m.view.ZoomOut()
		m.rebuild()
		return m, nil

	case key.Matches(msg, m.keys.ViewMode):
		m.view.ViewMode = m.view.ViewMode.Next()
		m.rebuild()
		return m, nil

	case key.Matches(msg, m.keys.Grouping):
		m.view.GroupBy = m.view.GroupBy.Next()
		m.rebuild()
		return m, nil

	case key.Matches(msg, m.keys.Deps):
		m.view.ShowDependencies = !m.view.ShowDependencies
		return m, nil

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.Reload):
		if m.cfg.Plan.Path == "" {
			return m.flashStatus("no plan file configured", true)
		}
		return m, reloadCmd(m.cfg.Plan.Path)
	}

	return m, nil
}

// handleMouse translates mouse cells into chart surface pixels and feeds
// them to the interaction controller.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Y >= m.chartRows() {
		// Pointer over the chrome; treat as leaving the chart.
		m.ctrl.HandlePointerLeave()
		return m, nil
	}

	sx := m.view.ScrollX + float64(msg.X)*CellWidthPx
	sy := m.view.ScrollY + float64(msg.Y)*CellHeightPx

	switch msg.Type {
	case tea.MouseMotion:
		// Drag positions must never be dropped or the committed delta
		// would depend on repaint pacing; only hover is rate limited.
		if m.ctrl.Dragging() || m.motionLimit.Allow() {
			m.ctrl.HandlePointerMove(sx, sy)
		}
		return m, nil

	case tea.MouseLeft:
		m.ctrl.HandlePointerDown(sx, sy)
		return m, nil

	case tea.MouseRelease:
		if committed := m.ctrl.HandlePointerUp(sx, sy); committed {
			m.rebuild()
			return m, nil
		}
		m.ctrl.HandleClick(sx, sy)
		return m, nil

	case tea.MouseWheelUp:
		if msg.Ctrl {
			m.view.ZoomIn()
			m.rebuild()
		} else {
			m.view.ScrollY -= scrollStepPx
			m.clampScroll()
		}
		return m, nil

	case tea.MouseWheelDown:
		if msg.Ctrl {
			m.view.ZoomOut()
			m.rebuild()
		} else {
			m.view.ScrollY += scrollStepPx
			m.clampScroll()
		}
		return m, nil
	}

	return m, nil
}

// jumpToToday scrolls the today column into the left third of the viewport.
func (m Model) jumpToToday() (tea.Model, tea.Cmd) {
	idx, ok := m.pipe.Geo.Grid.DayIndex(m.today)
	if !ok {
		return m.flashStatus("today is outside the chart window", true)
	}
	m.view.ScrollX = m.pipe.Geo.ChartX(idx) - float64(m.width)*CellWidthPx/3
	m.clampScroll()
	return m, nil
}

// =============================================================================
// COMMANDS
// =============================================================================

// statusTTL is how long transient status messages stay visible.
const statusTTL = 4 * time.Second

// flashStatus sets a transient status message and schedules its expiry.
func (m Model) flashStatus(text string, isErr bool) (tea.Model, tea.Cmd) {
	m.status = text
	m.statusErr = isErr
	return m, tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return statusClearMsg{}
	})
}

// exportCmd renders the current chart state to a PNG off the update loop.
func (m Model) exportCmd() tea.Cmd {
	snap := m.plan.Snapshot()
	view := *m.view
	today := m.today
	opts := &export.Options{
		OutputDir:       m.cfg.Export.OutputDir,
		OpenAfterExport: m.cfg.Export.OpenAfterExport,
	}
	return func() tea.Msg {
		path, err := export.ChartPNG(snap, &view, today, opts)
		if err != nil {
			return ExportResultMsg{Err: err}
		}
		return ExportResultMsg{Path: path}
	}
}

// reloadCmd re-reads the plan file.
func reloadCmd(path string) tea.Cmd {
	return func() tea.Msg {
		plan, err := store.LoadPlan(path)
		if err != nil {
			return PlanReloadErrorMsg{Err: err}
		}
		return PlanReloadedMsg{Plan: plan}
	}
}
