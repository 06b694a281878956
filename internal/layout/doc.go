// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package layout turns the task set into vertical screen structure and owns the
geometry shared by rendering and hit-testing.

# Components

## Grouping (grouping.go)

Partitions tasks into ordered groups under one of three deterministic
policies: none (single group, original order), status (bucketed by status,
first-seen order) or assignee (bucketed by first assignee, "unassigned"
sentinel). Identical input always yields identical groups.

## Rows (rows.go)

Walks the groups in order and emits the flat RowEntry list: one fixed-height
header row per group when grouping is active, then one fixed-height row per
task. Both the render pipeline and the interaction controller consume this
list unmodified, so what is drawn and what is clickable can never diverge.

## Geometry (geometry.go)

The coordinate oracle. Combines the date grid, the row list and the pixel
metrics into bar rectangles, hit tests and resize-handle classification.
Geometry is rebuilt from scratch on every render cycle; nothing here is
cached across task-list mutations.
*/
package layout
