// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// DEPENDENCY EDGES
// =============================================================================

// DependencyEdge is a directed relation meaning FromTaskID must precede
// ToTaskID. Edges are derived fresh from the task list on every render and
// never persisted.
type DependencyEdge struct {
	FromTaskID string
	ToTaskID   string
}

// ResolveDependencies scans task dependency lists and returns the edges whose
// endpoints both exist in the task set. Edges referencing unknown tasks are
// dropped silently; a missing upstream task degrades to a missing arrow, not
// an error.
func ResolveDependencies(tasks []Task) []DependencyEdge {
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	var edges []DependencyEdge
	for _, t := range tasks {
		for _, dep := range t.DependencyIDs {
			if !known[dep] {
				continue
			}
			edges = append(edges, DependencyEdge{FromTaskID: dep, ToTaskID: t.ID})
		}
	}
	return edges
}
