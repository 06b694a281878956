// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package render draws the chart as an ordered sequence of operations on an
abstract 2D canvas.

# Components

## Canvas (canvas.go)

The small drawing surface interface the pipeline targets: filled and stroked
rectangles, lines, dashed cubic curves, triangles and aligned text. Colors
travel as hex strings so backends stay trivial.

## Recorder (recorder.go)

A Canvas that records every operation instead of painting. Tests assert
against the op list, and identical inputs must always record identical lists.

## Pipeline (pipeline.go)

The pure full-repaint function. Stages draw in a fixed order, each layered
over the previous: header, grid, today marker, task bars, dependency arrows.
There is no incremental diffing; a single geometry truth shared with the
interaction layer is worth more than saved paint at this scale.

## Theme (theme.go)

The chart palette: status fills, priority stripes and chrome colors, with
derived shades computed through go-colorful.

## Raster (raster.go)

A fogleman/gg backed Canvas used for PNG export.
*/
package render
