// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package model contains the shared data structures for the gantt visualization.

# Key Types

## Task (task.go)

A scheduled unit of work with nullable start/due dates, a status and priority,
ordered assignees, and the ids of the tasks it depends on. Tasks are supplied
by the host and are read-only to the chart; the chart reports edits back
through callbacks instead of mutating them.

## User (user.go)

A minimal person record used to resolve assignee ids into display names.

## ViewState (viewstate.go)

The one piece of mutable state the chart owns: view mode, zoom scale,
grouping policy, dependency-arrow toggle, hover/selection ids and scroll
offsets. Everything else is recomputed from scratch on every render.

## DependencyEdge (dependency.go)

A directed from->to relation derived by scanning task dependency lists.
Edges whose endpoints cannot be resolved are dropped silently.
*/
package model
