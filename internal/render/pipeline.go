// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"fmt"
	"time"

	"github.com/jeranaias/ganttview/internal/layout"
	"github.com/jeranaias/ganttview/internal/model"
	"github.com/jeranaias/ganttview/internal/timeline"
	"github.com/jeranaias/ganttview/internal/util"
)

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is the read-only data the host supplies per render cycle.
type Snapshot struct {
	Tasks        []model.Task
	Users        []model.User
	ProjectStart *time.Time
	ProjectEnd   *time.Time
}

// =============================================================================
// PIPELINE
// =============================================================================

// Pipeline renders one (snapshot, view state) pair. It is a pure full-repaint
// function: every coordinate is derived fresh through the Geometry built at
// construction, and rendering the same pipeline twice produces the same
// operation sequence.
type Pipeline struct {
	// Geo is the shared coordinate oracle; the interaction controller is
	// built over the same value so drawing and hit-testing cannot diverge
	Geo *layout.Geometry

	tasks []model.Task
	users model.UserIndex
	view  *model.ViewState
	theme *Theme
	today time.Time
	edges []model.DependencyEdge
}

// Build derives the grid, grouping, row layout and dependency edges for one
// render cycle and returns the pipeline over them.
func Build(snap Snapshot, view *model.ViewState, today time.Time, m layout.Metrics, theme *Theme) *Pipeline {
	r := timeline.NewRange(snap.Tasks, snap.ProjectStart, snap.ProjectEnd, today)
	grid := timeline.NewGrid(r, view.Scale)

	users := model.IndexUsers(snap.Users)
	groups := layout.BuildGroups(snap.Tasks, users, view.GroupBy)
	geo := layout.NewGeometry(grid, groups, view.GroupBy != model.GroupByNone, m)

	return &Pipeline{
		Geo:   geo,
		tasks: snap.Tasks,
		users: users,
		view:  view,
		theme: theme,
		today: model.Day(today),
		edges: model.ResolveDependencies(snap.Tasks),
	}
}

// Width returns the full surface width in pixels.
func (p *Pipeline) Width() float64 {
	return p.Geo.Width()
}

// Height returns the full surface height in pixels.
func (p *Pipeline) Height() float64 {
	return p.Geo.Height()
}

// Edges returns the resolvable dependency edges for this cycle.
func (p *Pipeline) Edges() []model.DependencyEdge {
	return p.edges
}

// Render paints the chart onto the canvas. Stage order is fixed; each stage
// layers over the previous one.
func (p *Pipeline) Render(c Canvas) {
	c.FillRect(0, 0, p.Width(), p.Height(), p.theme.Background)
	p.drawHeader(c)
	p.drawGrid(c)
	p.drawTodayMarker(c)
	p.drawBars(c)
	p.drawArrows(c)
}

// =============================================================================
// STAGE 1: HEADER
// =============================================================================

// drawHeader paints the date axis: weekend column shading (full height, so
// body rows inherit it), merged month labels, and per-day sub-labels in
// day/week mode.
func (p *Pipeline) drawHeader(c Canvas) {
	m := p.Geo.Metrics
	grid := p.Geo.Grid
	dayW := grid.DayWidth()

	c.FillRect(0, 0, p.Width(), m.HeaderHeight, p.theme.HeaderBackground)

	for i := range grid.Days {
		if grid.IsWeekend(i) {
			c.FillRect(p.Geo.ChartX(i), 0, dayW, p.Height(), p.theme.WeekendShade)
		}
	}

	for _, run := range grid.MonthRuns() {
		runW := float64(run.Length) * dayW
		cx := p.Geo.ChartX(run.StartIndex) + runW/2
		label := run.Label
		// A short run at the window edge gets the abbreviated month so the
		// label does not overhang its columns.
		if runW < 110 {
			label = grid.Days[run.StartIndex].Format("Jan")
		}
		c.Text(label, cx, 16, p.theme.Text, 13, AlignCenter)
	}

	if p.view.ViewMode.ShowsDayLabels() {
		for i, day := range grid.Days {
			cx := p.Geo.ChartX(i) + dayW/2
			c.Text(fmt.Sprintf("%d", day.Day()), cx, 38, p.theme.Text, 11, AlignCenter)
			c.Text(day.Format("Mon")[:1], cx, 52, p.theme.TextMuted, 9, AlignCenter)
		}
	}

	c.Line(0, m.HeaderHeight, p.Width(), m.HeaderHeight, p.theme.Separator, 1)
}

// =============================================================================
// STAGE 2: GRID
// =============================================================================

// drawGrid paints the chart body: group header bands, alternating row
// shading, hover/selection bands, row labels, day column lines and the
// label-column separator.
func (p *Pipeline) drawGrid(c Canvas) {
	m := p.Geo.Metrics

	taskRow := 0
	for _, row := range p.Geo.Rows {
		switch row.Kind {
		case layout.RowHeader:
			c.FillRect(0, row.TopY, p.Width(), row.Height, p.theme.GroupBand)
			label := p.groupLabel(row.GroupKey)
			c.Text(label, 8, row.TopY+row.Height/2, p.theme.Text, 12, AlignLeft)

		case layout.RowTask:
			if taskRow%2 == 1 {
				c.FillRect(0, row.TopY, p.Width(), row.Height, p.theme.RowAlt)
			}
			taskRow++

			switch row.TaskID {
			case p.view.SelectedTaskID:
				c.FillRect(0, row.TopY, p.Width(), row.Height, p.theme.SelectionBand)
			case p.view.HoveredTaskID:
				c.FillRect(0, row.TopY, p.Width(), row.Height, p.theme.HoverBand)
			}

			if t, ok := p.Geo.Task(row.TaskID); ok {
				title := util.TruncateRunes(t.Title, 28)
				c.Text(title, 8, row.TopY+row.Height/2, p.theme.Text, 12, AlignLeft)
			}
		}
	}

	// Day column lines across the body.
	bodyTop := m.HeaderHeight
	for i := range p.Geo.Grid.Days {
		x := p.Geo.ChartX(i)
		c.Line(x, bodyTop, x, p.Height(), p.theme.GridLine, 1)
	}

	// Label-column separator.
	c.Line(m.LabelColumnWidth, 0, m.LabelColumnWidth, p.Height(), p.theme.Separator, 1)
}

// groupLabel resolves a group key back to its display label.
func (p *Pipeline) groupLabel(key string) string {
	switch p.view.GroupBy {
	case model.GroupByStatus:
		return model.Status(key).Label()
	case model.GroupByAssignee:
		if key == layout.UnassignedKey {
			return "Unassigned"
		}
		if name := p.users.NameFor(key); name != "" {
			return name
		}
		return key
	default:
		return key
	}
}

// =============================================================================
// STAGE 3: TODAY MARKER
// =============================================================================

// drawTodayMarker draws the vertical line and label at today's column when
// it falls inside the window.
func (p *Pipeline) drawTodayMarker(c Canvas) {
	idx, ok := p.Geo.Grid.DayIndex(p.today)
	if !ok {
		return
	}
	x := p.Geo.ChartX(idx) + p.Geo.Grid.DayWidth()/2
	c.Line(x, p.Geo.Metrics.HeaderHeight, x, p.Height(), p.theme.TodayLine, 2)
	c.Text("Today", x, p.Geo.Metrics.HeaderHeight+10, p.theme.TodayLine, 10, AlignCenter)
}

// =============================================================================
// STAGE 4: TASK BARS
// =============================================================================

// minLabelBarWidth is the bar width above which the percentage label fits.
const minLabelBarWidth = 100

// drawBars paints one bar per scheduled task: status fill, progress overlay,
// priority stripe, optional percentage label, and resize handles on the
// hovered or selected bar. Tasks without a resolvable date range are simply
// skipped.
func (p *Pipeline) drawBars(c Canvas) {
	for _, row := range p.Geo.Rows {
		if row.Kind != layout.RowTask {
			continue
		}
		t, ok := p.Geo.Task(row.TaskID)
		if !ok {
			continue
		}
		rect, ok := p.Geo.BarRect(t.ID)
		if !ok {
			continue
		}

		c.FillRect(rect.X, rect.Y, rect.W, rect.H, p.theme.StatusFill(t.Status))

		if progress := t.Progress(); progress > 0 {
			c.FillRect(rect.X, rect.Y, rect.W*float64(progress)/100, rect.H, p.theme.ProgressFill(t.Status))
		}

		c.FillRect(rect.X, rect.Y, 3, rect.H, p.theme.PriorityStripe(t.Priority))

		if rect.W > minLabelBarWidth {
			label := fmt.Sprintf("%d%%", t.Progress())
			c.Text(label, rect.X+rect.W/2, rect.CenterY(), p.theme.BarLabel, 11, AlignCenter)
		}

		active := t.ID == p.view.HoveredTaskID || t.ID == p.view.SelectedTaskID
		if active {
			p.drawHandles(c, rect)
		}
		if t.ID == p.view.SelectedTaskID {
			c.StrokeRect(rect.X, rect.Y, rect.W, rect.H, p.theme.SelectedEdge, 2)
		}
	}
}

// drawHandles paints the resize grips at both bar edges.
func (p *Pipeline) drawHandles(c Canvas, rect layout.Rect) {
	gripH := rect.H - 8
	gripY := rect.Y + 4
	c.FillRect(rect.X+2, gripY, 2, gripH, p.theme.Handle)
	c.FillRect(rect.Right()-4, gripY, 2, gripH, p.theme.Handle)
}

// =============================================================================
// STAGE 5: DEPENDENCY ARROWS
// =============================================================================

// drawArrows paints a dashed cubic S-curve per resolvable dependency edge,
// from the source bar's right edge to the destination bar's left edge, with
// a triangular arrowhead at the destination. Disabled or unresolvable edges
// draw nothing.
func (p *Pipeline) drawArrows(c Canvas) {
	if !p.view.ShowDependencies {
		return
	}

	for _, edge := range p.edges {
		from, ok := p.Geo.BarRect(edge.FromTaskID)
		if !ok {
			continue
		}
		to, ok := p.Geo.BarRect(edge.ToTaskID)
		if !ok {
			continue
		}

		sx, sy := from.Right(), from.CenterY()
		ex, ey := to.X, to.CenterY()

		// Horizontal-midpoint control points give the smooth S shape.
		midX := (sx + ex) / 2
		c.CubicCurve(sx, sy, midX, sy, midX, ey, ex, ey, p.theme.Arrow, 1.5, true)

		c.FillTriangle(ex, ey, ex-6, ey-4, ex-6, ey+4, p.theme.Arrow)
	}
}
