// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package ui hosts the interactive chart inside a Bubble Tea program.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jeranaias/ganttview/internal/render"
)

// =============================================================================
// PIXEL / CELL MAPPING
// =============================================================================

// The render pipeline works in pixels; the terminal works in cells. One cell
// maps to 10x20 px, so a 50 px day column is 5 cells wide and a 40 px task
// row is 2 cells tall. The same constants convert mouse cells back to pixels.
const (
	CellWidthPx  = 10.0
	CellHeightPx = 20.0
)

// =============================================================================
// GLYPHS
// =============================================================================

// glyphSet maps the drawing primitives onto terminal characters.
type glyphSet struct {
	horizontal rune
	vertical   rune
	dot        rune
	dash       rune
	arrow      rune
}

var (
	unicodeGlyphs = glyphSet{horizontal: '─', vertical: '│', dot: '·', dash: '┄', arrow: '▶'}
	asciiGlyphs   = glyphSet{horizontal: '-', vertical: '|', dot: '.', dash: '-', arrow: '>'}

	glyphs = unicodeGlyphs
)

// UseASCII switches drawing to plain ASCII glyphs for terminals that
// cannot display box drawing characters.
func UseASCII(on bool) {
	if on {
		glyphs = asciiGlyphs
	} else {
		glyphs = unicodeGlyphs
	}
}

// =============================================================================
// CELL CANVAS
// =============================================================================

type cell struct {
	ch rune
	fg string
	bg string
}

// Cells is a render.Canvas that rasterizes into a terminal cell grid.
// OffsetX/OffsetY shift the drawing in pixels, implementing scrolling: the
// pipeline always draws the full surface and the canvas clips to the
// viewport.
type Cells struct {
	w, h  int
	offX  float64
	offY  float64
	cells [][]cell
}

// NewCells allocates a viewport of the given size in terminal cells, scrolled
// to the given pixel offset.
func NewCells(wCells, hCells int, offsetX, offsetY float64) *Cells {
	if wCells < 1 {
		wCells = 1
	}
	if hCells < 1 {
		hCells = 1
	}
	grid := make([][]cell, hCells)
	for i := range grid {
		row := make([]cell, wCells)
		for j := range row {
			row[j] = cell{ch: ' '}
		}
		grid[i] = row
	}
	return &Cells{w: wCells, h: hCells, offX: offsetX, offY: offsetY, cells: grid}
}

// col converts a surface x coordinate to a viewport column.
func (c *Cells) col(x float64) int {
	return int((x - c.offX) / CellWidthPx)
}

// row converts a surface y coordinate to a viewport row.
func (c *Cells) row(y float64) int {
	return int((y - c.offY) / CellHeightPx)
}

func (c *Cells) in(col, row int) bool {
	return col >= 0 && col < c.w && row >= 0 && row < c.h
}

// put sets a character cell, preserving whichever attributes are empty.
func (c *Cells) put(col, row int, ch rune, fg string) {
	if !c.in(col, row) {
		return
	}
	c.cells[row][col].ch = ch
	c.cells[row][col].fg = fg
}

func (c *Cells) FillRect(x, y, w, h float64, hex string) {
	c0, r0 := c.col(x), c.row(y)
	c1, r1 := c.col(x+w-1), c.row(y+h-1)
	for r := r0; r <= r1; r++ {
		for cc := c0; cc <= c1; cc++ {
			if c.in(cc, r) {
				c.cells[r][cc].bg = hex
			}
		}
	}
}

func (c *Cells) StrokeRect(x, y, w, h float64, hex string, _ float64) {
	c0, r0 := c.col(x), c.row(y)
	c1, r1 := c.col(x+w-1), c.row(y+h-1)
	for cc := c0; cc <= c1; cc++ {
		c.put(cc, r0, glyphs.horizontal, hex)
		c.put(cc, r1, glyphs.horizontal, hex)
	}
	for r := r0; r <= r1; r++ {
		c.put(c0, r, glyphs.vertical, hex)
		c.put(c1, r, glyphs.vertical, hex)
	}
}

func (c *Cells) Line(x1, y1, x2, y2 float64, hex string, _ float64) {
	switch {
	case x1 == x2:
		r0, r1 := c.row(y1), c.row(y2)
		if r0 > r1 {
			r0, r1 = r1, r0
		}
		for r := r0; r <= r1; r++ {
			c.put(c.col(x1), r, glyphs.vertical, hex)
		}
	case y1 == y2:
		c0, c1 := c.col(x1), c.col(x2)
		if c0 > c1 {
			c0, c1 = c1, c0
		}
		for cc := c0; cc <= c1; cc++ {
			c.put(cc, c.row(y1), glyphs.horizontal, hex)
		}
	default:
		c.plotSampled(x1, y1, x2, y2, hex, false)
	}
}

func (c *Cells) CubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64, hex string, _ float64, dashed bool) {
	// Sample the Bezier densely enough that adjacent samples land in
	// neighboring cells.
	const steps = 64
	ch := glyphs.dot
	if dashed {
		ch = glyphs.dash
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / steps
		mt := 1 - t
		x := mt*mt*mt*x1 + 3*mt*mt*t*c1x + 3*mt*t*t*c2x + t*t*t*x2
		y := mt*mt*mt*y1 + 3*mt*mt*t*c1y + 3*mt*t*t*c2y + t*t*t*y2
		if dashed && i%4 >= 2 {
			continue
		}
		c.put(c.col(x), c.row(y), ch, hex)
	}
}

func (c *Cells) FillTriangle(x1, y1, x2, y2, x3, y3 float64, hex string) {
	// Arrowheads are the only triangles drawn; a single glyph at the
	// centroid reads better than a filled shape at cell resolution.
	cx := (x1 + x2 + x3) / 3
	cy := (y1 + y2 + y3) / 3
	c.put(c.col(cx), c.row(cy), glyphs.arrow, hex)
}

func (c *Cells) Text(s string, x, y float64, hex string, _ float64, align render.Align) {
	width := runewidth.StringWidth(s)
	col := c.col(x)
	switch align {
	case render.AlignCenter:
		col -= width / 2
	case render.AlignRight:
		col -= width
	}
	row := c.row(y)
	for _, r := range s {
		if c.in(col, row) {
			c.cells[row][col].ch = r
			c.cells[row][col].fg = hex
		}
		col += runewidth.RuneWidth(r)
	}
}

// plotSampled draws an arbitrary segment by sampling points along it.
func (c *Cells) plotSampled(x1, y1, x2, y2 float64, hex string, dashed bool) {
	const steps = 48
	for i := 0; i <= steps; i++ {
		if dashed && i%4 >= 2 {
			continue
		}
		t := float64(i) / steps
		c.put(c.col(x1+(x2-x1)*t), c.row(y1+(y2-y1)*t), glyphs.dot, hex)
	}
}

// =============================================================================
// TERMINAL OUTPUT
// =============================================================================

// String renders the grid into styled terminal lines. Runs of cells sharing
// the same colors are emitted as one styled segment to keep the escape
// sequence count down.
func (c *Cells) String() string {
	var b strings.Builder
	for r, row := range c.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		runStart := 0
		for i := 1; i <= len(row); i++ {
			if i < len(row) && row[i].fg == row[runStart].fg && row[i].bg == row[runStart].bg {
				continue
			}
			var text strings.Builder
			for _, cl := range row[runStart:i] {
				text.WriteRune(cl.ch)
			}
			style := lipgloss.NewStyle()
			if row[runStart].fg != "" {
				style = style.Foreground(lipgloss.Color(row[runStart].fg))
			}
			if row[runStart].bg != "" {
				style = style.Background(lipgloss.Color(row[runStart].bg))
			}
			b.WriteString(style.Render(text.String()))
			runStart = i
		}
	}
	return b.String()
}

// CellAt exposes a cell for tests.
func (c *Cells) CellAt(col, row int) (ch rune, fg, bg string) {
	if !c.in(col, row) {
		return 0, "", ""
	}
	cl := c.cells[row][col]
	return cl.ch, cl.fg, cl.bg
}
