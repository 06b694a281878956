// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package layout

// =============================================================================
// ROW ENTRIES
// =============================================================================

// RowKind distinguishes group header rows from task rows.
type RowKind int

const (
	// RowHeader is a group header band
	RowHeader RowKind = iota

	// RowTask is an individual task row
	RowTask
)

// RowEntry is one vertical slot in the chart body. The flat entry list is the
// single source of truth for both drawing and hit-testing.
type RowEntry struct {
	// Kind is header or task
	Kind RowKind

	// GroupKey is the owning group's key
	GroupKey string

	// TaskID is set for task rows only
	TaskID string

	// TopY is the row's top edge in surface coordinates
	TopY float64

	// Height is the row's fixed height
	Height float64
}

// =============================================================================
// ROW LAYOUT
// =============================================================================

// BuildRows flattens groups into ordered row entries starting at startY.
// Header rows are reserved only when grouping is active; the single implicit
// group of the "none" policy draws no header band.
func BuildRows(groups []Group, grouped bool, startY float64, m Metrics) []RowEntry {
	var rows []RowEntry
	y := startY

	for _, g := range groups {
		if grouped {
			rows = append(rows, RowEntry{
				Kind:     RowHeader,
				GroupKey: g.Key,
				TopY:     y,
				Height:   m.GroupHeaderHeight,
			})
			y += m.GroupHeaderHeight
		}
		for _, t := range g.Tasks {
			rows = append(rows, RowEntry{
				Kind:     RowTask,
				GroupKey: g.Key,
				TaskID:   t.ID,
				TopY:     y,
				Height:   m.RowHeight,
			})
			y += m.RowHeight
		}
	}
	return rows
}
