// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timeline

import (
	"math"
	"time"

	"github.com/jeranaias/ganttview/internal/model"
)

// =============================================================================
// DATE GRID
// =============================================================================

// BaseDayWidth is the unscaled width of one day column in pixels.
const BaseDayWidth = 50.0

// Grid is the ordered per-day expansion of the visible window. It is the
// single source of every horizontal coordinate on the chart.
type Grid struct {
	// Days is the inclusive ordered day sequence
	Days []time.Time

	scale float64
}

// NewGrid expands a range into its day grid at the given zoom scale.
// The scale is clamped defensively; callers go through ViewState.SetScale
// but the grid never trusts them to.
func NewGrid(r Range, scale float64) *Grid {
	n := r.Days()
	if n < 1 {
		n = 1
	}
	days := make([]time.Time, n)
	for i := range days {
		days[i] = r.Start.AddDate(0, 0, i)
	}
	return &Grid{Days: days, scale: model.ClampScale(scale)}
}

// DayWidth returns the width of one day column: 50 * scale, exactly.
func (g *Grid) DayWidth() float64 {
	return BaseDayWidth * g.scale
}

// Width returns the total pixel width of the grid.
func (g *Grid) Width() float64 {
	return float64(len(g.Days)) * g.DayWidth()
}

// DayIndex returns the integer offset of a date from the first visible day,
// clamped into the grid. The boolean is false when the date falls outside
// the window.
func (g *Grid) DayIndex(t time.Time) (int, bool) {
	d := model.Day(t)
	idx := int(d.Sub(g.Days[0]).Hours() / 24)
	if idx < 0 {
		return 0, false
	}
	if idx >= len(g.Days) {
		return len(g.Days) - 1, false
	}
	return idx, true
}

// XForDay returns the x coordinate of a day column's left edge.
func (g *Grid) XForDay(index int) float64 {
	return float64(index) * g.DayWidth()
}

// DayForX returns the day index containing an x coordinate, clamped into
// the grid.
func (g *Grid) DayForX(x float64) int {
	idx := int(math.Floor(x / g.DayWidth()))
	if idx < 0 {
		return 0
	}
	if idx >= len(g.Days) {
		return len(g.Days) - 1
	}
	return idx
}

// IsWeekend reports whether the day at index falls on a weekend.
func (g *Grid) IsWeekend(index int) bool {
	wd := g.Days[index].Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// =============================================================================
// MONTH RUNS
// =============================================================================

// MonthRun is a contiguous span of days sharing a calendar month, used to
// merge header labels.
type MonthRun struct {
	// Label is the merged header text, e.g. "January 2025"
	Label string

	// StartIndex is the first day index of the run
	StartIndex int

	// Length is the number of days in the run
	Length int
}

// MonthRuns segments the grid into contiguous same-month runs in order.
func (g *Grid) MonthRuns() []MonthRun {
	var runs []MonthRun
	for i, d := range g.Days {
		if len(runs) > 0 {
			last := &runs[len(runs)-1]
			prev := g.Days[last.StartIndex]
			if prev.Month() == d.Month() && prev.Year() == d.Year() {
				last.Length++
				continue
			}
		}
		runs = append(runs, MonthRun{
			Label:      d.Format("January 2006"),
			StartIndex: i,
			Length:     1,
		})
	}
	return runs
}
