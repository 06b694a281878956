// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package ui hosts the interactive chart inside a Bubble Tea program.

The package owns the terminal concerns only: it rasterizes the render
pipeline into a cell grid, translates mouse cells back into chart pixels for
the interaction controller, and draws the status bar and help footer. All
chart geometry lives in the layout and render packages; the UI never
computes a bar position itself.

# Structure

  - canvas.go: render.Canvas backed by terminal cells
  - keys.go: key bindings
  - model.go / update.go / view.go: the Bubble Tea model
  - program.go: program assembly, mouse options and plan watching
*/
package ui
