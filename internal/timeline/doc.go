// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package timeline derives the visible date window and the per-day grid that
anchors every x coordinate on the chart.

# Components

## Range (range.go)

Computes the [start, end] window from the task list and optional project
bounds, with fixed lead-in and tail buffers so bars never clip at the canvas
edge. With no dates anywhere the window defaults to [today-14d, today+21d].

## Grid (grid.go)

Expands the window into the inclusive ordered day sequence used identically by
the header, the body grid and every coordinate lookup. A day's x coordinate is
always dayIndex * DayWidth, with DayWidth = 50 * scale. Nothing else on the
chart computes horizontal positions.
*/
package timeline
