// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

import (
	"github.com/jeranaias/ganttview/internal/model"
	"github.com/jeranaias/ganttview/internal/timeline"
)

// =============================================================================
// PIXEL METRICS
// =============================================================================

// Metrics holds the fixed pixel dimensions of the chart chrome.
type Metrics struct {
	// HeaderHeight is the date-axis header band at the top
	HeaderHeight float64

	// RowHeight is the height of one task row
	RowHeight float64

	// GroupHeaderHeight is the height of one group header band
	GroupHeaderHeight float64

	// LabelColumnWidth is the left gutter holding task titles
	LabelColumnWidth float64

	// BarInset is the vertical gap between a bar and its row edges
	BarInset float64

	// HandleWidth is the resize-handle zone at each bar edge
	HandleWidth float64
}

// DefaultMetrics returns the standard chart dimensions.
func DefaultMetrics() Metrics {
	return Metrics{
		HeaderHeight:      64,
		RowHeight:         40,
		GroupHeaderHeight: 36,
		LabelColumnWidth:  220,
		BarInset:          8,
		HandleWidth:       8,
	}
}

// =============================================================================
// RECTANGLES
// =============================================================================

// Rect is an axis-aligned rectangle in surface coordinates.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// CenterY returns the vertical center.
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// =============================================================================
// HANDLE CLASSIFICATION
// =============================================================================

// Handle classifies where inside a bar a pointer landed.
type Handle int

const (
	// HandleNone means the pointer is outside the bar
	HandleNone Handle = iota

	// HandleMove means the bar body (drag moves both dates)
	HandleMove

	// HandleResizeStart means the left edge zone (drag moves the start date)
	HandleResizeStart

	// HandleResizeEnd means the right edge zone (drag moves the due date)
	HandleResizeEnd
)

// =============================================================================
// GEOMETRY
// =============================================================================

// Geometry is the shared coordinate oracle. The render pipeline and the
// interaction controller are both built over the same Geometry value, so a
// pixel resolves to the same task whether it is being painted or hit-tested.
//
// Geometry is rebuilt from scratch on every render cycle. Coordinates are
// surface coordinates: x=0 at the left edge of the label column, y=0 at the
// top of the header band.
type Geometry struct {
	// Grid is the date grid anchoring all x coordinates
	Grid *timeline.Grid

	// Rows is the flat row layout
	Rows []RowEntry

	// Metrics are the fixed pixel dimensions
	Metrics Metrics

	rowByTask map[string]int
	taskByID  map[string]model.Task
}

// NewGeometry assembles the coordinate oracle for one render cycle.
func NewGeometry(grid *timeline.Grid, groups []Group, grouped bool, m Metrics) *Geometry {
	rows := BuildRows(groups, grouped, m.HeaderHeight, m)

	g := &Geometry{
		Grid:      grid,
		Rows:      rows,
		Metrics:   m,
		rowByTask: make(map[string]int),
		taskByID:  make(map[string]model.Task),
	}
	for i, row := range rows {
		if row.Kind == RowTask {
			g.rowByTask[row.TaskID] = i
		}
	}
	for _, grp := range groups {
		for _, t := range grp.Tasks {
			g.taskByID[t.ID] = t
		}
	}
	return g
}

// ChartX converts a day index to a surface x coordinate.
func (g *Geometry) ChartX(dayIndex int) float64 {
	return g.Metrics.LabelColumnWidth + g.Grid.XForDay(dayIndex)
}

// DayForSurfaceX converts a surface x coordinate back to a day index.
func (g *Geometry) DayForSurfaceX(x float64) int {
	return g.Grid.DayForX(x - g.Metrics.LabelColumnWidth)
}

// BodyHeight returns the total height of all rows.
func (g *Geometry) BodyHeight() float64 {
	var h float64
	for _, row := range g.Rows {
		h += row.Height
	}
	return h
}

// Height returns the full surface height (header + body).
func (g *Geometry) Height() float64 {
	return g.Metrics.HeaderHeight + g.BodyHeight()
}

// Width returns the full surface width (label column + grid).
func (g *Geometry) Width() float64 {
	return g.Metrics.LabelColumnWidth + g.Grid.Width()
}

// Task returns the task behind an id, if it is on the chart.
func (g *Geometry) Task(id string) (model.Task, bool) {
	t, ok := g.taskByID[id]
	return t, ok
}

// RowForTask returns the row entry holding a task.
func (g *Geometry) RowForTask(id string) (RowEntry, bool) {
	i, ok := g.rowByTask[id]
	if !ok {
		return RowEntry{}, false
	}
	return g.Rows[i], true
}

// BarRect computes a task's bar rectangle. The boolean is false for tasks
// with no resolvable date range (they draw no bar) or tasks not on the chart.
//
//	x     = labelColumn + dayIndex(start) * dayWidth
//	width = max(1, durationDays) * dayWidth
//
// An inverted date range (due before start) still yields a one-day bar.
func (g *Geometry) BarRect(id string) (Rect, bool) {
	t, ok := g.taskByID[id]
	if !ok || !t.HasSchedule() {
		return Rect{}, false
	}
	row, ok := g.RowForTask(id)
	if !ok {
		return Rect{}, false
	}

	startIdx, _ := g.Grid.DayIndex(*t.StartDate)
	days := t.DurationDays()

	return Rect{
		X: g.ChartX(startIdx),
		Y: row.TopY + g.Metrics.BarInset,
		W: float64(days) * g.Grid.DayWidth(),
		H: row.Height - 2*g.Metrics.BarInset,
	}, true
}

// HitTest resolves a surface point to the task whose bar contains it.
func (g *Geometry) HitTest(x, y float64) (string, bool) {
	for _, row := range g.Rows {
		if row.Kind != RowTask {
			continue
		}
		if y < row.TopY || y >= row.TopY+row.Height {
			continue
		}
		rect, ok := g.BarRect(row.TaskID)
		if ok && rect.Contains(x, y) {
			return row.TaskID, true
		}
		return "", false
	}
	return "", false
}

// HandleAt classifies a point against a bar: resize zones hug the edges,
// everything else inside the bar is a move. Narrow bars give the edge zones
// priority so a one-day bar can still be resized.
func (g *Geometry) HandleAt(x float64, rect Rect) Handle {
	if x < rect.X || x >= rect.Right() {
		return HandleNone
	}
	hw := g.Metrics.HandleWidth
	if hw*2 > rect.W {
		hw = rect.W / 2
	}
	switch {
	case x < rect.X+hw:
		return HandleResizeStart
	case x >= rect.Right()-hw:
		return HandleResizeEnd
	default:
		return HandleMove
	}
}
