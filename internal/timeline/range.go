// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timeline derives the visible date window and the per-day grid.
package timeline

import (
	"time"

	"github.com/jeranaias/ganttview/internal/model"
)

// =============================================================================
// VISIBLE WINDOW
// =============================================================================

const (
	// leadInDays is drawn before the earliest tracked date for context
	leadInDays = 14

	// tailDays is drawn after the latest tracked date so bars never touch
	// the right canvas edge
	tailDays = 21
)

// Range is the inclusive [Start, End] window of visible days.
type Range struct {
	Start time.Time
	End   time.Time
}

// Days returns the inclusive number of days in the window.
func (r Range) Days() int {
	return int(r.End.Sub(r.Start).Hours()/24) + 1
}

// Contains reports whether a date falls inside the window.
func (r Range) Contains(t time.Time) bool {
	d := model.Day(t)
	return !d.Before(r.Start) && !d.After(r.End)
}

// NewRange computes the visible window from the task list and optional
// project bounds.
//
//	start = (projectStart ?? today) - leadInDays
//	end   = max(projectEnd ?? today, max task due) + tailDays
//
// With no dates anywhere the window collapses to [today-14d, today+21d].
func NewRange(tasks []model.Task, projectStart, projectEnd *time.Time, today time.Time) Range {
	today = model.Day(today)

	start := today
	if projectStart != nil {
		start = model.Day(*projectStart)
	}

	end := today
	if projectEnd != nil {
		end = model.Day(*projectEnd)
	}
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		if due := model.Day(*t.DueDate); due.After(end) {
			end = due
		}
	}

	return Range{
		Start: start.AddDate(0, 0, -leadInDays),
		End:   end.AddDate(0, 0, tailDays),
	}
}
