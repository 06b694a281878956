// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"image"

	"github.com/fogleman/gg"
)

// =============================================================================
// RASTER CANVAS
// =============================================================================

// Raster is a Canvas backed by a fogleman/gg drawing context. It is the
// backend behind PNG export.
type Raster struct {
	ctx *gg.Context
}

// NewRaster allocates a raster surface of the given pixel size.
func NewRaster(width, height int) *Raster {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	return &Raster{ctx: gg.NewContext(width, height)}
}

// Image returns the rendered image.
func (r *Raster) Image() image.Image {
	return r.ctx.Image()
}

func (r *Raster) FillRect(x, y, w, h float64, hex string) {
	r.ctx.SetHexColor(hex)
	r.ctx.DrawRectangle(x, y, w, h)
	r.ctx.Fill()
}

func (r *Raster) StrokeRect(x, y, w, h float64, hex string, width float64) {
	r.ctx.SetHexColor(hex)
	r.ctx.SetLineWidth(width)
	r.ctx.DrawRectangle(x, y, w, h)
	r.ctx.Stroke()
}

func (r *Raster) Line(x1, y1, x2, y2 float64, hex string, width float64) {
	r.ctx.SetHexColor(hex)
	r.ctx.SetLineWidth(width)
	r.ctx.DrawLine(x1, y1, x2, y2)
	r.ctx.Stroke()
}

func (r *Raster) CubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64, hex string, width float64, dashed bool) {
	r.ctx.SetHexColor(hex)
	r.ctx.SetLineWidth(width)
	if dashed {
		r.ctx.SetDash(5, 4)
	}
	r.ctx.MoveTo(x1, y1)
	r.ctx.CubicTo(c1x, c1y, c2x, c2y, x2, y2)
	r.ctx.Stroke()
	if dashed {
		r.ctx.SetDash()
	}
}

func (r *Raster) FillTriangle(x1, y1, x2, y2, x3, y3 float64, hex string) {
	r.ctx.SetHexColor(hex)
	r.ctx.MoveTo(x1, y1)
	r.ctx.LineTo(x2, y2)
	r.ctx.LineTo(x3, y3)
	r.ctx.ClosePath()
	r.ctx.Fill()
}

func (r *Raster) Text(s string, x, y float64, hex string, size float64, align Align) {
	r.ctx.SetHexColor(hex)
	// gg's default face has a fixed size; ax selects the anchor side.
	ax := 0.0
	switch align {
	case AlignCenter:
		ax = 0.5
	case AlignRight:
		ax = 1.0
	}
	r.ctx.DrawStringAnchored(s, x, y, ax, 0.35)
}
