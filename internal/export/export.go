// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders the current chart to a PNG file.
package export

import (
	"bytes"
	"fmt"
	"image/png"
	"math"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jeranaias/ganttview/internal/layout"
	"github.com/jeranaias/ganttview/internal/model"
	"github.com/jeranaias/ganttview/internal/render"
	"github.com/jeranaias/ganttview/internal/util"
)

// =============================================================================
// EXPORT OPTIONS
// =============================================================================

// Options configures export behavior.
type Options struct {
	// OutputDir is the directory where files will be saved.
	// Default: current working directory
	OutputDir string

	// OpenAfterExport opens the file in the default image viewer.
	OpenAfterExport bool

	// Theme overrides the chart palette. Nil means the default dark theme.
	Theme *render.Theme
}

// DefaultOptions returns default export options.
func DefaultOptions() *Options {
	return &Options{
		OutputDir:       ".",
		OpenAfterExport: false,
	}
}

// =============================================================================
// PNG EXPORT
// =============================================================================

// maxPixelDim caps either axis of the output image. A multi-year range at
// maximum zoom would otherwise allocate a raster in the gigabyte range.
const maxPixelDim = 16384

// ChartPNG renders the chart described by snap and view to a PNG file named
// gantt-chart-<date>.png in opts.OutputDir and returns the output path. The
// drawing is produced by the same pipeline the live view runs, so hovered
// and selected decorations follow the view state into the file.
func ChartPNG(snap render.Snapshot, view *model.ViewState, today time.Time, opts *Options) (string, error) {
	if opts == nil {
		opts = DefaultOptions()
	}
	theme := opts.Theme
	if theme == nil {
		theme = render.DefaultTheme()
	}

	p := render.Build(snap, view, today, layout.DefaultMetrics(), theme)

	w := int(math.Ceil(p.Width()))
	h := int(math.Ceil(p.Height()))
	if w < 1 || h < 1 {
		return "", fmt.Errorf("chart has empty surface (%dx%d)", w, h)
	}
	if w > maxPixelDim || h > maxPixelDim {
		return "", fmt.Errorf("chart surface %dx%d exceeds %d px limit; reduce zoom", w, h, maxPixelDim)
	}

	canvas := render.NewRaster(w, h)
	p.Render(canvas)

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas.Image()); err != nil {
		return "", fmt.Errorf("encode png: %w", err)
	}

	outputPath := filepath.Join(opts.OutputDir, Filename(today))
	if err := util.AtomicWriteFile(outputPath, buf.Bytes(), 0644); err != nil {
		return "", fmt.Errorf("write export: %w", err)
	}

	if opts.OpenAfterExport {
		// Non-fatal, the file was still created.
		_ = openFile(outputPath)
	}

	return outputPath, nil
}

// Filename returns the export filename for a given date, e.g.
// "gantt-chart-2025-01-15.png". Exports on the same day overwrite each
// other, which keeps repeated exports from littering the output directory.
func Filename(t time.Time) string {
	return fmt.Sprintf("gantt-chart-%s.png", t.Format("2006-01-02"))
}

// openFile opens a file in the default application for the OS.
func openFile(path string) error {
	var cmd *exec.Cmd

	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", `""`, path)
	case "darwin":
		cmd = exec.Command("open", path)
	case "linux":
		cmd = exec.Command("xdg-open", path)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}
