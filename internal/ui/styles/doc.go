// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the visual styling for the ganttview TUI chrome:
the status bar, help footer and overlay text around the chart surface.

The chart itself is colored by the render theme; this package only styles
the terminal furniture, using Lip Gloss AdaptiveColor so the chrome follows
light and dark terminals automatically.
*/
package styles
