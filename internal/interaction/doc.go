// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package interaction is the pointer-driven state machine over the chart.

The Controller moves between idle, hovering and dragging, resolving every
pointer position through the same layout.Geometry the render pipeline draws
with, so what is clickable is exactly what is painted.

Drags carry the task's original dates and the cumulative pointer delta, and
commit only on release: the pixel delta is converted to a whole-day delta and
reported through the OnTaskUpdate callback. Nothing is written while the
pointer is down, and a pointer leaving the chart abandons the drag with no
write at all. The host owns persistence; the controller only reports.
*/
package interaction
