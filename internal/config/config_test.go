// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jeranaias/ganttview/internal/model"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.View.Mode != "week" {
		t.Errorf("View.Mode = %q, want week", cfg.View.Mode)
	}
	if cfg.View.Scale != 1.0 {
		t.Errorf("View.Scale = %v, want 1.0", cfg.View.Scale)
	}
	if cfg.View.GroupBy != "none" {
		t.Errorf("View.GroupBy = %q, want none", cfg.View.GroupBy)
	}
	if !cfg.View.ShowDependencies {
		t.Error("ShowDependencies should default to true")
	}
	if !cfg.Plan.Watch {
		t.Error("Plan.Watch should default to true")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults must validate: %v", err)
	}
}

func TestLoadFromPath_TOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[view]
mode = "month"
scale = 1.8
group_by = "status"
show_dependencies = false

[export]
output_dir = "/tmp/charts"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}

	if cfg.View.Mode != "month" {
		t.Errorf("View.Mode = %q, want month", cfg.View.Mode)
	}
	if cfg.View.Scale != 1.8 {
		t.Errorf("View.Scale = %v, want 1.8", cfg.View.Scale)
	}
	if cfg.View.GroupBy != "status" {
		t.Errorf("View.GroupBy = %q, want status", cfg.View.GroupBy)
	}
	if cfg.View.ShowDependencies {
		t.Error("ShowDependencies should be false")
	}
	if cfg.Export.OutputDir != "/tmp/charts" {
		t.Errorf("Export.OutputDir = %q", cfg.Export.OutputDir)
	}
	// Unset sections keep their defaults.
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
}

func TestLoadFromPath_JSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{"view": {"mode": "day", "scale": 0.6, "group_by": "assignee", "show_dependencies": true}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath failed: %v", err)
	}
	if cfg.View.Mode != "day" {
		t.Errorf("View.Mode = %q, want day", cfg.View.Mode)
	}
	if cfg.View.GroupBy != "assignee" {
		t.Errorf("View.GroupBy = %q, want assignee", cfg.View.GroupBy)
	}
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"bad mode", func(c *Config) { c.View.Mode = "fortnight" }, true},
		{"bad grouping", func(c *Config) { c.View.GroupBy = "color" }, true},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, true},
		{"warn alias", func(c *Config) { c.Log.Level = "warning" }, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestValidate_ClampsScale(t *testing.T) {
	testCases := []struct {
		input    float64
		expected float64
	}{
		{0.1, model.MinScale},
		{1.0, 1.0},
		{9.0, model.MaxScale},
	}

	for _, tc := range testCases {
		cfg := Default()
		cfg.View.Scale = tc.input
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate(%v) failed: %v", tc.input, err)
		}
		if cfg.View.Scale != tc.expected {
			t.Errorf("scale %v clamped to %v, want %v", tc.input, cfg.View.Scale, tc.expected)
		}
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("GANTTVIEW_PLAN", "/plans/roadmap.toml")
	t.Setenv("GANTTVIEW_EXPORT_DIR", "/exports")
	t.Setenv("GANTTVIEW_LOG_LEVEL", "debug")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.Plan.Path != "/plans/roadmap.toml" {
		t.Errorf("Plan.Path = %q", cfg.Plan.Path)
	}
	if cfg.Export.OutputDir != "/exports" {
		t.Errorf("Export.OutputDir = %q", cfg.Export.OutputDir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestViewState(t *testing.T) {
	cfg := Default()
	cfg.View.Mode = "quarter"
	cfg.View.Scale = 2.0
	cfg.View.GroupBy = "status"
	cfg.View.ShowDependencies = false

	v := cfg.ViewState()

	if v.ViewMode != model.ViewModeQuarter {
		t.Errorf("ViewMode = %v, want quarter", v.ViewMode)
	}
	if v.Scale != 2.0 {
		t.Errorf("Scale = %v, want 2.0", v.Scale)
	}
	if v.GroupBy != model.GroupByStatus {
		t.Errorf("GroupBy = %v, want status", v.GroupBy)
	}
	if v.ShowDependencies {
		t.Error("ShowDependencies should be false")
	}
}

func TestSaveTOML_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Default()
	cfg.View.Mode = "month"
	cfg.View.Scale = 1.4
	cfg.Export.OutputDir = "/out"

	if err := SaveTOML(cfg, path); err != nil {
		t.Fatalf("SaveTOML failed: %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("reload failed: %v", err)
	}
	if loaded.View.Mode != "month" || loaded.View.Scale != 1.4 {
		t.Errorf("round trip lost view settings: %+v", loaded.View)
	}
	if loaded.Export.OutputDir != "/out" {
		t.Errorf("round trip lost export dir: %q", loaded.Export.OutputDir)
	}
}
