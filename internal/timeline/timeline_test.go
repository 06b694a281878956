// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package timeline

import (
	"math"
	"testing"
	"time"

	"github.com/jeranaias/ganttview/internal/model"
)

func date(y int, m time.Month, d int) *time.Time {
	dt := model.DateOf(y, m, d)
	return &dt
}

// =============================================================================
// RANGE TESTS
// =============================================================================

func TestNewRangeDefaultsToTodayWindow(t *testing.T) {
	today := model.DateOf(2025, 6, 15)
	r := NewRange(nil, nil, nil, today)

	if !r.Start.Equal(model.DateOf(2025, 6, 1)) {
		t.Errorf("Start = %v, want 2025-06-01", r.Start)
	}
	if !r.End.Equal(model.DateOf(2025, 7, 6)) {
		t.Errorf("End = %v, want 2025-07-06", r.End)
	}
	if r.Days() != 36 {
		t.Errorf("Days() = %d, want 36", r.Days())
	}
}

func TestNewRangeUsesProjectBounds(t *testing.T) {
	today := model.DateOf(2025, 6, 15)
	r := NewRange(nil, date(2025, 3, 1), date(2025, 9, 30), today)

	if !r.Start.Equal(model.DateOf(2025, 2, 15)) {
		t.Errorf("Start = %v, want 2025-02-15", r.Start)
	}
	if !r.End.Equal(model.DateOf(2025, 10, 21)) {
		t.Errorf("End = %v, want 2025-10-21", r.End)
	}
}

func TestNewRangeExtendsToLatestDue(t *testing.T) {
	today := model.DateOf(2025, 6, 15)
	tasks := []model.Task{
		{ID: "a", StartDate: date(2025, 6, 1), DueDate: date(2025, 12, 24)},
		{ID: "b", DueDate: date(2025, 7, 1)},
		{ID: "c"}, // no dates, ignored
	}

	r := NewRange(tasks, nil, date(2025, 8, 1), today)
	if !r.End.Equal(model.DateOf(2026, 1, 14)) {
		t.Errorf("End = %v, want 2026-01-14 (latest due + 21d)", r.End)
	}
}

func TestRangeContains(t *testing.T) {
	r := Range{Start: model.DateOf(2025, 1, 1), End: model.DateOf(2025, 1, 31)}

	testCases := []struct {
		day      time.Time
		expected bool
	}{
		{model.DateOf(2025, 1, 1), true},
		{model.DateOf(2025, 1, 31), true},
		{model.DateOf(2025, 1, 15), true},
		{model.DateOf(2024, 12, 31), false},
		{model.DateOf(2025, 2, 1), false},
	}

	for _, tc := range testCases {
		if got := r.Contains(tc.day); got != tc.expected {
			t.Errorf("Contains(%v) = %v, want %v", tc.day, got, tc.expected)
		}
	}
}

// =============================================================================
// GRID TESTS
// =============================================================================

func TestGridDayWidthFormula(t *testing.T) {
	r := Range{Start: model.DateOf(2025, 1, 1), End: model.DateOf(2025, 1, 10)}

	// dayWidth(scale) = 50 * scale, exactly, across the whole clamp range.
	for scale := model.MinScale; scale <= model.MaxScale+1e-9; scale += 0.1 {
		g := NewGrid(r, scale)
		want := 50 * model.ClampScale(scale)
		if math.Abs(g.DayWidth()-want) > 1e-12 {
			t.Errorf("DayWidth(scale=%v) = %v, want %v", scale, g.DayWidth(), want)
		}
	}
}

func TestGridClampsOutOfRangeScale(t *testing.T) {
	r := Range{Start: model.DateOf(2025, 1, 1), End: model.DateOf(2025, 1, 2)}

	if g := NewGrid(r, 99); g.DayWidth() != 50*model.MaxScale {
		t.Errorf("DayWidth with huge scale = %v", g.DayWidth())
	}
	if g := NewGrid(r, 0); g.DayWidth() != 50*model.MinScale {
		t.Errorf("DayWidth with zero scale = %v", g.DayWidth())
	}
}

func TestGridDayIndex(t *testing.T) {
	r := Range{Start: model.DateOf(2025, 1, 1), End: model.DateOf(2025, 1, 31)}
	g := NewGrid(r, 1)

	testCases := []struct {
		day      time.Time
		index    int
		inWindow bool
	}{
		{model.DateOf(2025, 1, 1), 0, true},
		{model.DateOf(2025, 1, 15), 14, true},
		{model.DateOf(2025, 1, 31), 30, true},
		{model.DateOf(2024, 12, 25), 0, false},
		{model.DateOf(2025, 2, 10), 30, false},
	}

	for _, tc := range testCases {
		idx, ok := g.DayIndex(tc.day)
		if idx != tc.index || ok != tc.inWindow {
			t.Errorf("DayIndex(%v) = (%d, %v), want (%d, %v)",
				tc.day, idx, ok, tc.index, tc.inWindow)
		}
	}
}

func TestGridXRoundTrip(t *testing.T) {
	r := Range{Start: model.DateOf(2025, 1, 1), End: model.DateOf(2025, 3, 31)}
	g := NewGrid(r, 1.4)

	for _, idx := range []int{0, 1, 13, 42, len(g.Days) - 1} {
		x := g.XForDay(idx)
		if got := g.DayForX(x + g.DayWidth()/2); got != idx {
			t.Errorf("DayForX(center of %d) = %d", idx, got)
		}
	}

	// Out-of-grid x clamps instead of erroring.
	if got := g.DayForX(-500); got != 0 {
		t.Errorf("DayForX(-500) = %d, want 0", got)
	}
	if got := g.DayForX(g.Width() + 500); got != len(g.Days)-1 {
		t.Errorf("DayForX(past end) = %d, want %d", got, len(g.Days)-1)
	}
}

func TestGridIsWeekend(t *testing.T) {
	// 2025-01-04 is a Saturday, 2025-01-05 a Sunday.
	r := Range{Start: model.DateOf(2025, 1, 1), End: model.DateOf(2025, 1, 7)}
	g := NewGrid(r, 1)

	weekends := 0
	for i := range g.Days {
		if g.IsWeekend(i) {
			weekends++
		}
	}
	if weekends != 2 {
		t.Errorf("weekend count = %d, want 2", weekends)
	}
	if !g.IsWeekend(3) || !g.IsWeekend(4) {
		t.Error("Jan 4/5 2025 not flagged as weekend")
	}
}

func TestGridMonthRuns(t *testing.T) {
	r := Range{Start: model.DateOf(2025, 1, 25), End: model.DateOf(2025, 3, 5)}
	g := NewGrid(r, 1)

	runs := g.MonthRuns()
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}

	expected := []struct {
		label  string
		start  int
		length int
	}{
		{"January 2025", 0, 7},
		{"February 2025", 7, 28},
		{"March 2025", 35, 5},
	}
	for i, e := range expected {
		if runs[i].Label != e.label || runs[i].StartIndex != e.start || runs[i].Length != e.length {
			t.Errorf("run[%d] = %+v, want %+v", i, runs[i], e)
		}
	}

	// Lengths always cover the grid exactly.
	total := 0
	for _, run := range runs {
		total += run.Length
	}
	if total != len(g.Days) {
		t.Errorf("run lengths sum to %d, grid has %d days", total, len(g.Days))
	}
}
