// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export renders the current chart to a PNG file.
//
// The export path reuses the exact render pipeline the interactive view
// uses, so the file on disk matches what was on screen apart from the
// raster backend. Files are written atomically and named by export date.
//
// # Key Types
//
//   - Options: output directory, open-after-export, pixel scale
//
// # Usage
//
// Export the chart state:
//
//	path, err := export.ChartPNG(snap, view, today, nil)
package export
