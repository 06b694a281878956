// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import "github.com/jeranaias/ganttview/internal/store"

// =============================================================================
// MESSAGES
// =============================================================================

// PlanReloadedMsg carries a freshly loaded plan into the model. Sent by the
// file watcher and by the manual reload key.
type PlanReloadedMsg struct {
	Plan *store.Plan
}

// PlanReloadErrorMsg reports a reload that failed; the current chart stays.
type PlanReloadErrorMsg struct {
	Err error
}

// ExportResultMsg reports the outcome of a PNG export.
type ExportResultMsg struct {
	Path string
	Err  error
}

// statusClearMsg expires a transient status message.
type statusClearMsg struct{}
