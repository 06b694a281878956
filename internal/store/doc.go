// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package store supplies the chart's data: TOML plan files, a SQLite snapshot
database, and a file watcher that reloads the plan when it changes on disk.

The plan file is the source of truth the user edits; the database holds the
last imported snapshot plus any date changes committed by dragging bars, so
the chart reopens where it left off without re-importing.

# Plan File Format

	[project]
	name = "Website Redesign"
	start_date = "2025-01-06"
	end_date = "2025-03-28"

	[[users]]
	id = "u1"
	display_name = "Dana"

	[[tasks]]
	id = "t1"
	title = "Design mockups"
	status = "in_progress"
	priority = "high"
	progress = 40
	start_date = "2025-01-06"
	due_date = "2025-01-17"
	assignees = ["u1"]
	depends_on = []

Malformed dates and unknown status or priority strings degrade to safe
defaults instead of failing the whole import.
*/
package store
