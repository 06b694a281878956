// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "strings"

// =============================================================================
// VIEW MODE
// =============================================================================

// ViewMode selects the header labeling density of the date axis.
type ViewMode string

const (
	ViewModeDay     ViewMode = "day"
	ViewModeWeek    ViewMode = "week"
	ViewModeMonth   ViewMode = "month"
	ViewModeQuarter ViewMode = "quarter"
)

// viewModeOrder is the cycle order used by the host's view-mode key.
var viewModeOrder = []ViewMode{ViewModeDay, ViewModeWeek, ViewModeMonth, ViewModeQuarter}

// Next returns the view mode after this one in cycle order.
func (m ViewMode) Next() ViewMode {
	for i, mode := range viewModeOrder {
		if mode == m {
			return viewModeOrder[(i+1)%len(viewModeOrder)]
		}
	}
	return ViewModeWeek
}

// ShowsDayLabels reports whether per-day sub-labels are drawn in the header.
func (m ViewMode) ShowsDayLabels() bool {
	return m == ViewModeDay || m == ViewModeWeek
}

// ParseViewMode converts a string into a ViewMode, defaulting to week.
func ParseViewMode(s string) ViewMode {
	switch ViewMode(strings.ToLower(strings.TrimSpace(s))) {
	case ViewModeDay, ViewModeWeek, ViewModeMonth, ViewModeQuarter:
		return ViewMode(strings.ToLower(strings.TrimSpace(s)))
	default:
		return ViewModeWeek
	}
}

// =============================================================================
// GROUPING POLICY
// =============================================================================

// GroupBy selects how tasks are partitioned into chart groups.
type GroupBy string

const (
	GroupByNone     GroupBy = "none"
	GroupByStatus   GroupBy = "status"
	GroupByAssignee GroupBy = "assignee"
)

var groupByOrder = []GroupBy{GroupByNone, GroupByStatus, GroupByAssignee}

// Next returns the grouping policy after this one in cycle order.
func (g GroupBy) Next() GroupBy {
	for i, gb := range groupByOrder {
		if gb == g {
			return groupByOrder[(i+1)%len(groupByOrder)]
		}
	}
	return GroupByNone
}

// ParseGroupBy converts a string into a GroupBy, defaulting to none.
func ParseGroupBy(s string) GroupBy {
	switch GroupBy(strings.ToLower(strings.TrimSpace(s))) {
	case GroupByNone, GroupByStatus, GroupByAssignee:
		return GroupBy(strings.ToLower(strings.TrimSpace(s)))
	default:
		return GroupByNone
	}
}

// =============================================================================
// ZOOM SCALE
// =============================================================================

const (
	// MinScale and MaxScale bound the zoom factor
	MinScale = 0.4
	MaxScale = 2.5

	// ScaleStep is the increment applied per zoom key press
	ScaleStep = 0.2
)

// ClampScale bounds a zoom factor to [MinScale, MaxScale].
func ClampScale(s float64) float64 {
	if s < MinScale {
		return MinScale
	}
	if s > MaxScale {
		return MaxScale
	}
	return s
}

// =============================================================================
// VIEW STATE
// =============================================================================

// ViewState is the mutable display state the chart owns. It lives for the
// lifetime of the mounted visualization and is never persisted.
type ViewState struct {
	// ViewMode selects the date-axis labeling density
	ViewMode ViewMode

	// Scale is the zoom factor, always within [MinScale, MaxScale]
	Scale float64

	// GroupBy selects the grouping policy
	GroupBy GroupBy

	// ShowDependencies toggles dependency arrows
	ShowDependencies bool

	// HoveredTaskID is the task under the pointer, "" when none
	HoveredTaskID string

	// SelectedTaskID is the clicked task, "" when none
	SelectedTaskID string

	// ScrollX and ScrollY are the viewport offsets in pixels
	ScrollX float64
	ScrollY float64
}

// NewViewState returns a view state with the default display options.
func NewViewState() *ViewState {
	return &ViewState{
		ViewMode:         ViewModeWeek,
		Scale:            1.0,
		GroupBy:          GroupByNone,
		ShowDependencies: true,
	}
}

// SetScale applies a zoom factor, clamping it to the valid range.
func (v *ViewState) SetScale(s float64) {
	v.Scale = ClampScale(s)
}

// ZoomIn increases the scale by one step.
func (v *ViewState) ZoomIn() {
	v.SetScale(v.Scale + ScaleStep)
}

// ZoomOut decreases the scale by one step.
func (v *ViewState) ZoomOut() {
	v.SetScale(v.Scale - ScaleStep)
}
