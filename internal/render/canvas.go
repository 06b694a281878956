// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package render draws the chart as ordered operations on an abstract canvas.
package render

// =============================================================================
// TEXT ALIGNMENT
// =============================================================================

// Align positions text relative to its anchor x coordinate.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// =============================================================================
// CANVAS INTERFACE
// =============================================================================

// Canvas is the 2D drawing surface the pipeline targets. Implementations
// exist for raster output (gg), terminal cells (the TUI host) and op
// recording (tests). Colors are "#RRGGBB" hex strings.
//
// Text y coordinates are the vertical center of the rendered line, which
// keeps label math identical across backends with different font metrics.
type Canvas interface {
	// FillRect paints a solid rectangle.
	FillRect(x, y, w, h float64, hex string)

	// StrokeRect outlines a rectangle.
	StrokeRect(x, y, w, h float64, hex string, width float64)

	// Line draws a straight segment.
	Line(x1, y1, x2, y2 float64, hex string, width float64)

	// CubicCurve draws a cubic bezier from (x1,y1) to (x2,y2) with control
	// points (c1x,c1y) and (c2x,c2y), optionally dashed.
	CubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64, hex string, width float64, dashed bool)

	// FillTriangle paints a solid triangle (dependency arrowheads).
	FillTriangle(x1, y1, x2, y2, x3, y3 float64, hex string)

	// Text draws a single line of text anchored at (x, y).
	Text(s string, x, y float64, hex string, size float64, align Align)
}
