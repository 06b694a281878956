// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package interaction is the pointer-driven state machine over the chart.
package interaction

import (
	"math"
	"time"

	"github.com/jeranaias/ganttview/internal/layout"
	"github.com/jeranaias/ganttview/internal/model"
)

// =============================================================================
// TOOLTIP PAYLOAD
// =============================================================================

// Tooltip is the payload emitted while hovering a bar: a snapshot of the
// task plus the pointer position the host should anchor the popup at.
type Tooltip struct {
	Task model.Task
	X, Y float64
}

// =============================================================================
// DRAG STATE
// =============================================================================

// dragState tracks one in-progress drag. It holds the original dates so the
// commit is computed against where the bar started, not intermediate motion.
type dragState struct {
	taskID    string
	handle    layout.Handle
	anchorX   float64
	currentX  float64
	origStart time.Time
	origDue   time.Time
}

// =============================================================================
// CONTROLLER
// =============================================================================

// Controller is the pointer-event state machine. It owns the mutable
// hover/selection/drag fields on the ViewState; the render pipeline only
// reads them.
type Controller struct {
	// OnTaskUpdate fires after a committed drag with the shifted dates.
	OnTaskUpdate func(taskID string, change model.DateChange)

	// OnTaskClick fires when a click resolves to a task.
	OnTaskClick func(taskID string)

	view *model.ViewState
	geo  *layout.Geometry

	drag    *dragState
	tooltip *Tooltip
}

// NewController creates a controller over the given view state.
func NewController(view *model.ViewState) *Controller {
	return &Controller{view: view}
}

// SetGeometry installs the geometry for the current render cycle. The host
// calls this every rebuild so hit-testing always matches the latest paint.
func (c *Controller) SetGeometry(geo *layout.Geometry) {
	c.geo = geo
}

// Tooltip returns the current hover payload, nil when no bar is hovered.
func (c *Controller) Tooltip() *Tooltip {
	return c.tooltip
}

// Dragging reports whether a drag is in progress.
func (c *Controller) Dragging() bool {
	return c.drag != nil
}

// =============================================================================
// POINTER EVENTS
// =============================================================================

// HandlePointerMove processes pointer motion: hover transitions and tooltip
// updates when idle, delta tracking during a drag.
func (c *Controller) HandlePointerMove(x, y float64) {
	if c.geo == nil {
		return
	}

	if c.drag != nil {
		c.drag.currentX = x
		return
	}

	id, ok := c.geo.HitTest(x, y)
	if !ok {
		c.view.HoveredTaskID = ""
		c.tooltip = nil
		return
	}

	c.view.HoveredTaskID = id
	if t, found := c.geo.Task(id); found {
		c.tooltip = &Tooltip{Task: t, X: x, Y: y}
	}
}

// HandlePointerDown starts a drag when the pointer lands on a bar. The edge
// zones begin a resize, the body a move.
func (c *Controller) HandlePointerDown(x, y float64) {
	if c.geo == nil {
		return
	}

	id, ok := c.geo.HitTest(x, y)
	if !ok {
		return
	}
	rect, ok := c.geo.BarRect(id)
	if !ok {
		return
	}
	t, ok := c.geo.Task(id)
	if !ok || !t.HasSchedule() {
		return
	}

	handle := c.geo.HandleAt(x, rect)
	if handle == layout.HandleNone {
		return
	}

	c.drag = &dragState{
		taskID:    id,
		handle:    handle,
		anchorX:   x,
		currentX:  x,
		origStart: model.Day(*t.StartDate),
		origDue:   model.Day(*t.DueDate),
	}
}

// HandlePointerUp ends a drag. The cumulative pixel delta converts to a
// whole-day delta; a non-zero delta commits through OnTaskUpdate with the
// shifted dates. Returns true when a commit fired, so the host can treat a
// motionless release as a click instead.
func (c *Controller) HandlePointerUp(x, y float64) bool {
	if c.drag == nil {
		return false
	}
	drag := c.drag
	c.drag = nil

	drag.currentX = x
	days := c.deltaDays(drag)
	if days == 0 {
		return false
	}

	start, due := drag.origStart, drag.origDue
	switch drag.handle {
	case layout.HandleMove:
		start = start.AddDate(0, 0, days)
		due = due.AddDate(0, 0, days)
	case layout.HandleResizeStart:
		start = start.AddDate(0, 0, days)
		if start.After(due) {
			start = due
		}
	case layout.HandleResizeEnd:
		due = due.AddDate(0, 0, days)
		if due.Before(start) {
			due = start
		}
	}

	if start.Equal(drag.origStart) && due.Equal(drag.origDue) {
		return false
	}

	if c.OnTaskUpdate != nil {
		c.OnTaskUpdate(drag.taskID, model.DateChange{StartDate: &start, DueDate: &due})
	}
	return true
}

// HandleClick resolves a click to a task and updates the selection.
// Selection is independent of hover and persists until the next click or an
// external reset; clicking empty space clears it.
func (c *Controller) HandleClick(x, y float64) {
	if c.geo == nil {
		return
	}

	id, ok := c.geo.HitTest(x, y)
	if !ok {
		c.view.SelectedTaskID = ""
		return
	}

	c.view.SelectedTaskID = id
	if c.OnTaskClick != nil {
		c.OnTaskClick(id)
	}
}

// HandlePointerLeave forces the controller back to idle: hover and tooltip
// clear, and any in-progress drag is discarded without committing.
func (c *Controller) HandlePointerLeave() {
	c.drag = nil
	c.tooltip = nil
	c.view.HoveredTaskID = ""
}

// deltaDays converts the drag's pixel delta to whole days.
func (c *Controller) deltaDays(d *dragState) int {
	return int(math.Round((d.currentX - d.anchorX) / c.geo.Grid.DayWidth()))
}
