// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package util holds the small shared helpers: crash-safe file writes for
exports and config saves, and rune/width-aware string truncation for row
labels rendered into fixed-width columns.
*/
package util
