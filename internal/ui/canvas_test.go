// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"strings"
	"testing"

	"github.com/jeranaias/ganttview/internal/render"
)

func TestCellsFillRect(t *testing.T) {
	c := NewCells(20, 10, 0, 0)

	// 50x40 px starting at (10,20) covers cells (1..5, 1..2).
	c.FillRect(10, 20, 50, 40, "#FF0000")

	_, _, bg := c.CellAt(1, 1)
	if bg != "#FF0000" {
		t.Errorf("cell (1,1) bg = %q, want #FF0000", bg)
	}
	_, _, bg = c.CellAt(5, 2)
	if bg != "#FF0000" {
		t.Errorf("cell (5,2) bg = %q, want #FF0000", bg)
	}
	_, _, bg = c.CellAt(6, 1)
	if bg != "" {
		t.Errorf("cell (6,1) outside the rect got bg %q", bg)
	}
	_, _, bg = c.CellAt(0, 0)
	if bg != "" {
		t.Errorf("cell (0,0) outside the rect got bg %q", bg)
	}
}

func TestCellsScrollOffset(t *testing.T) {
	// Same rect, but the viewport is scrolled 100px right and 40px down.
	c := NewCells(20, 10, 100, 40)

	c.FillRect(110, 60, 30, 20, "#00FF00")

	_, _, bg := c.CellAt(1, 1)
	if bg != "#00FF00" {
		t.Errorf("scrolled cell (1,1) bg = %q, want #00FF00", bg)
	}

	// Content left of the viewport is clipped, not wrapped.
	c2 := NewCells(20, 10, 100, 40)
	c2.FillRect(0, 0, 50, 20, "#0000FF")
	for col := 0; col < 20; col++ {
		if _, _, bg := c2.CellAt(col, 0); bg != "" {
			t.Fatalf("off-viewport fill leaked into column %d", col)
		}
	}
}

func TestCellsText(t *testing.T) {
	c := NewCells(30, 5, 0, 0)

	c.Text("Task", 100, 30, "#FFFFFF", 12, render.AlignLeft)

	want := []rune("Task")
	for i, r := range want {
		ch, fg, _ := c.CellAt(10+i, 1)
		if ch != r {
			t.Errorf("cell (%d,1) = %q, want %q", 10+i, ch, r)
		}
		if fg != "#FFFFFF" {
			t.Errorf("cell (%d,1) fg = %q", 10+i, fg)
		}
	}
}

func TestCellsTextAlignment(t *testing.T) {
	c := NewCells(30, 5, 0, 0)
	c.Text("ab", 100, 10, "#FFFFFF", 12, render.AlignCenter)

	// Centered on column 10: width 2 backs up by 1.
	if ch, _, _ := c.CellAt(9, 0); ch != 'a' {
		t.Errorf("centered text starts at wrong cell: %q", ch)
	}

	c.Text("xy", 200, 10, "#FFFFFF", 12, render.AlignRight)
	if ch, _, _ := c.CellAt(18, 0); ch != 'x' {
		t.Errorf("right-aligned text starts at wrong cell: %q", ch)
	}
}

func TestCellsVerticalLine(t *testing.T) {
	c := NewCells(10, 10, 0, 0)
	c.Line(50, 0, 50, 100, "#888888", 1)

	for row := 0; row < 5; row++ {
		ch, fg, _ := c.CellAt(5, row)
		if ch != '│' || fg != "#888888" {
			t.Errorf("row %d = %q/%q, want vertical bar", row, ch, fg)
		}
	}
}

func TestCellsString(t *testing.T) {
	c := NewCells(5, 2, 0, 0)
	c.Text("hi", 0, 10, "#FFFFFF", 12, render.AlignLeft)

	out := c.String()
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if !strings.Contains(out, "hi") {
		t.Errorf("rendered output missing text: %q", out)
	}
}

func TestCellsMinimumSize(t *testing.T) {
	c := NewCells(0, -3, 0, 0)
	// Must not panic on any draw.
	c.FillRect(0, 0, 100, 100, "#FFFFFF")
	c.Text("x", 0, 0, "#FFFFFF", 12, render.AlignLeft)
	if ch, _, _ := c.CellAt(0, 0); ch == 0 {
		t.Error("degenerate canvas should still hold one cell")
	}
}
