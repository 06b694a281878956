// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"github.com/jeranaias/ganttview/internal/config"
	"github.com/jeranaias/ganttview/internal/interaction"
	"github.com/jeranaias/ganttview/internal/layout"
	"github.com/jeranaias/ganttview/internal/model"
	"github.com/jeranaias/ganttview/internal/render"
	"github.com/jeranaias/ganttview/internal/store"
)

// =============================================================================
// MODEL
// =============================================================================

// chromeRows is the number of terminal rows reserved under the chart for the
// status bar and help footer.
const chromeRows = 2

// Model is the Bubble Tea model for the chart view.
type Model struct {
	cfg     *config.Config
	keys    KeyMap
	help    help.Model
	view    *model.ViewState
	plan    *store.Plan
	st      *store.Store
	ctrl    *interaction.Controller
	pipe    *render.Pipeline
	theme   *render.Theme
	metrics layout.Metrics
	today   time.Time

	width  int
	height int

	status    string
	statusErr bool

	// motionLimit caps hover repaint work during continuous mouse motion.
	motionLimit *rate.Limiter
}

// New builds the chart model over a loaded plan. st may be nil when running
// without a snapshot database; drag commits then only update the in-memory
// plan.
func New(cfg *config.Config, plan *store.Plan, st *store.Store) Model {
	view := cfg.ViewState()

	m := Model{
		cfg:         cfg,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		view:        view,
		plan:        plan,
		st:          st,
		ctrl:        interaction.NewController(view),
		theme:       render.DefaultTheme(),
		metrics:     layout.DefaultMetrics(),
		today:       model.Day(time.Now()),
		motionLimit: rate.NewLimiter(rate.Limit(60), 1),
	}

	// The controller callbacks close over the plan pointer, which stays
	// stable across Bubble Tea's model copies.
	m.ctrl.OnTaskUpdate = func(taskID string, change model.DateChange) {
		applyDateChange(plan, taskID, change)
		if st != nil {
			if err := st.UpdateTaskDates(taskID, change); err != nil {
				logrus.WithField("task", taskID).WithError(err).Warn("persisting drag failed")
			}
		}
	}

	m.rebuild()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// rebuild reruns the pipeline over the current plan and view state and hands
// the fresh geometry to the interaction controller.
func (m *Model) rebuild() {
	m.pipe = render.Build(m.plan.Snapshot(), m.view, m.today, m.metrics, m.theme)
	m.ctrl.SetGeometry(m.pipe.Geo)
	m.clampScroll()
}

// chartRows returns the viewport height in cells available to the chart.
func (m Model) chartRows() int {
	rows := m.height - chromeRows
	if rows < 1 {
		rows = 1
	}
	return rows
}

// clampScroll keeps the viewport inside the chart surface.
func (m *Model) clampScroll() {
	maxX := m.pipe.Width() - float64(m.width)*CellWidthPx
	maxY := m.pipe.Height() - float64(m.chartRows())*CellHeightPx
	if maxX < 0 {
		maxX = 0
	}
	if maxY < 0 {
		maxY = 0
	}
	if m.view.ScrollX > maxX {
		m.view.ScrollX = maxX
	}
	if m.view.ScrollX < 0 {
		m.view.ScrollX = 0
	}
	if m.view.ScrollY > maxY {
		m.view.ScrollY = maxY
	}
	if m.view.ScrollY < 0 {
		m.view.ScrollY = 0
	}
}

// applyDateChange writes committed drag dates into the in-memory plan.
func applyDateChange(plan *store.Plan, taskID string, change model.DateChange) {
	for i := range plan.Tasks {
		if plan.Tasks[i].ID == taskID {
			plan.Tasks[i].StartDate = change.StartDate
			plan.Tasks[i].DueDate = change.DueDate
			return
		}
	}
}
