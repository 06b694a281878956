// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package layout turns the task set into vertical screen structure.
package layout

import (
	"github.com/jeranaias/ganttview/internal/model"
)

// =============================================================================
// GROUPS
// =============================================================================

// UnassignedKey is the sentinel group key for tasks with no assignee.
const UnassignedKey = "unassigned"

// Group is an ordered bucket of tasks sharing a grouping key. Groups are
// derived, recomputed each render, and never persisted.
type Group struct {
	// Key identifies the bucket (status value, assignee id, or "all")
	Key string

	// Label is the header text shown above the group's rows
	Label string

	// Tasks are the group's members in original task-list order
	Tasks []model.Task
}

// BuildGroups partitions tasks under the given policy. Group order is
// first-seen in the task list, so identical input always yields identical
// output.
func BuildGroups(tasks []model.Task, users model.UserIndex, groupBy model.GroupBy) []Group {
	switch groupBy {
	case model.GroupByStatus:
		return bucketTasks(tasks, func(t model.Task) (string, string) {
			return t.Status.String(), t.Status.Label()
		})
	case model.GroupByAssignee:
		return bucketTasks(tasks, func(t model.Task) (string, string) {
			id := t.FirstAssignee()
			if id == "" {
				return UnassignedKey, "Unassigned"
			}
			if name := users.NameFor(id); name != "" {
				return id, name
			}
			return id, id
		})
	default:
		return []Group{{Key: "all", Label: "", Tasks: tasks}}
	}
}

// bucketTasks groups tasks by the key function, preserving first-seen group
// order and original task order within each group.
func bucketTasks(tasks []model.Task, keyFn func(model.Task) (key, label string)) []Group {
	var order []string
	buckets := make(map[string]*Group)

	for _, t := range tasks {
		key, label := keyFn(t)
		g, ok := buckets[key]
		if !ok {
			g = &Group{Key: key, Label: label}
			buckets[key] = g
			order = append(order, key)
		}
		g.Tasks = append(g.Tasks, t)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, *buckets[key])
	}
	return groups
}
