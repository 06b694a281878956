// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for ganttview.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, and validation.
//
// Configuration file locations (in order of precedence):
//   - ~/.ganttview/config.toml
//   - ~/.ganttview/config.json
//   - Built-in defaults
//
// # Environment Overrides
//
//   - GANTTVIEW_PLAN: plan file path
//   - GANTTVIEW_EXPORT_DIR: export output directory
//   - GANTTVIEW_DB: snapshot database path
//   - GANTTVIEW_LOG_LEVEL: log verbosity
package config
