// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// CHROME STYLES
// =============================================================================

// StatusBar is the bar under the chart showing plan name and view settings.
var StatusBar = lipgloss.NewStyle().
	Background(SurfaceDim).
	Foreground(TextSecondary).
	Padding(0, 1)

// StatusKey highlights the active setting values inside the status bar.
var StatusKey = lipgloss.NewStyle().
	Background(SurfaceDim).
	Foreground(Cyan).
	Bold(true)

// StatusError renders transient error text in the status bar.
var StatusError = lipgloss.NewStyle().
	Background(SurfaceDim).
	Foreground(Rose)

// StatusSuccess renders transient confirmation text in the status bar.
var StatusSuccess = lipgloss.NewStyle().
	Background(SurfaceDim).
	Foreground(Emerald)

// HelpText styles the key-binding footer.
var HelpText = lipgloss.NewStyle().
	Foreground(TextMuted)

// Tooltip frames the hover tooltip drawn over the chart.
var Tooltip = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Overlay).
	Foreground(TextPrimary).
	Padding(0, 1)

// Title styles the plan name in the status bar.
var Title = lipgloss.NewStyle().
	Background(SurfaceDim).
	Foreground(Purple).
	Bold(true)
