// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

// =============================================================================
// OP TYPES
// =============================================================================

// OpKind identifies a recorded draw operation.
type OpKind string

const (
	OpFillRect   OpKind = "fill-rect"
	OpStrokeRect OpKind = "stroke-rect"
	OpLine       OpKind = "line"
	OpCubic      OpKind = "cubic"
	OpTriangle   OpKind = "triangle"
	OpText       OpKind = "text"
)

// Op is one recorded draw operation. Ops are plain comparable values so test
// assertions can diff whole sequences.
type Op struct {
	Kind   OpKind
	Coords [8]float64
	N      int // number of meaningful coords
	Color  string
	Width  float64
	Dashed bool
	Text   string
	Align  Align
}

// =============================================================================
// RECORDER
// =============================================================================

// Recorder is a Canvas that captures operations in draw order instead of
// painting them. The pipeline's idempotence contract is stated against it:
// identical inputs record identical op sequences.
type Recorder struct {
	ops []Op
}

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Ops returns the recorded operations in draw order.
func (r *Recorder) Ops() []Op {
	return r.ops
}

// Count returns the number of recorded ops of a kind.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Find returns all ops of a kind in draw order.
func (r *Recorder) Find(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset discards all recorded ops.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
}

func (r *Recorder) FillRect(x, y, w, h float64, hex string) {
	r.ops = append(r.ops, Op{Kind: OpFillRect, Coords: [8]float64{x, y, w, h}, N: 4, Color: hex})
}

func (r *Recorder) StrokeRect(x, y, w, h float64, hex string, width float64) {
	r.ops = append(r.ops, Op{Kind: OpStrokeRect, Coords: [8]float64{x, y, w, h}, N: 4, Color: hex, Width: width})
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, hex string, width float64) {
	r.ops = append(r.ops, Op{Kind: OpLine, Coords: [8]float64{x1, y1, x2, y2}, N: 4, Color: hex, Width: width})
}

func (r *Recorder) CubicCurve(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64, hex string, width float64, dashed bool) {
	r.ops = append(r.ops, Op{
		Kind:   OpCubic,
		Coords: [8]float64{x1, y1, c1x, c1y, c2x, c2y, x2, y2},
		N:      8,
		Color:  hex,
		Width:  width,
		Dashed: dashed,
	})
}

func (r *Recorder) FillTriangle(x1, y1, x2, y2, x3, y3 float64, hex string) {
	r.ops = append(r.ops, Op{Kind: OpTriangle, Coords: [8]float64{x1, y1, x2, y2, x3, y3}, N: 6, Color: hex})
}

func (r *Recorder) Text(s string, x, y float64, hex string, size float64, align Align) {
	r.ops = append(r.ops, Op{Kind: OpText, Coords: [8]float64{x, y}, N: 2, Color: hex, Width: size, Text: s, Align: align})
}
