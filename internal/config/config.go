// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for ganttview.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/ganttview/internal/model"
	"github.com/jeranaias/ganttview/internal/util"
)

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete ganttview configuration.
type Config struct {
	// View holds the chart defaults applied at startup.
	View ViewConfig `toml:"view" json:"view"`

	// Plan configures the task plan source.
	Plan PlanConfig `toml:"plan" json:"plan"`

	// Export configures PNG export output.
	Export ExportConfig `toml:"export" json:"export"`

	// Storage configures the snapshot database.
	Storage StorageConfig `toml:"storage" json:"storage"`

	// Log configures the application log file.
	Log LogConfig `toml:"log" json:"log"`
}

// ViewConfig contains the chart defaults applied when the app starts.
type ViewConfig struct {
	// Mode is the initial view mode: "day", "week", "month" or "quarter"
	Mode string `toml:"mode" json:"mode"`
	// Scale is the initial zoom factor, clamped to the valid zoom range
	Scale float64 `toml:"scale" json:"scale"`
	// GroupBy is the initial grouping: "none", "status" or "assignee"
	GroupBy string `toml:"group_by" json:"group_by"`
	// ShowDependencies controls whether dependency arrows are drawn
	ShowDependencies bool `toml:"show_dependencies" json:"show_dependencies"`
}

// PlanConfig contains the task plan source configuration.
type PlanConfig struct {
	// Path is the plan file loaded at startup (empty = most recent import)
	Path string `toml:"path" json:"path"`
	// Watch reloads the chart when the plan file changes on disk
	Watch bool `toml:"watch" json:"watch"`
}

// ExportConfig contains PNG export configuration.
type ExportConfig struct {
	// OutputDir is the directory exports are written to
	OutputDir string `toml:"output_dir" json:"output_dir"`
	// OpenAfterExport opens the exported file in the default viewer
	OpenAfterExport bool `toml:"open_after_export" json:"open_after_export"`
}

// StorageConfig contains the snapshot database configuration.
type StorageConfig struct {
	// DatabasePath is the SQLite file (empty = ~/.ganttview/ganttview.db)
	DatabasePath string `toml:"database_path" json:"database_path"`
}

// LogConfig contains logging configuration.
type LogConfig struct {
	// Level is the verbosity: "debug", "info", "warn" or "error"
	Level string `toml:"level" json:"level"`
	// File is the log destination (empty = ~/.ganttview/ganttview.log)
	File string `toml:"file" json:"file"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns a Config populated with built-in defaults.
func Default() *Config {
	return &Config{
		View: ViewConfig{
			Mode:             string(model.ViewModeWeek),
			Scale:            1.0,
			GroupBy:          string(model.GroupByNone),
			ShowDependencies: true,
		},
		Plan: PlanConfig{
			Watch: true,
		},
		Export: ExportConfig{
			OutputDir: ".",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the ganttview configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".ganttview"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// EnsureConfigDir ensures the config directory exists.
func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	if path, err := ConfigPathTOML(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}
	if path, err := ConfigPathJSON(); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return LoadFromPath(path)
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// LoadFromPath loads configuration from a specific file path with validation.
// The format is chosen by extension; anything that is not .json parses as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	if strings.HasSuffix(path, ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("decode JSON config: %w", err)
		}
	} else {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("decode TOML config: %w", err)
		}
	}

	cfg.fillDefaults()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults. Decoding over a
// Default() base covers most fields; this catches values an explicit zero in
// the file would otherwise blank out.
func (c *Config) fillDefaults() {
	defaults := Default()

	if c.View.Mode == "" {
		c.View.Mode = defaults.View.Mode
	}
	if c.View.Scale == 0 {
		c.View.Scale = defaults.View.Scale
	}
	if c.View.GroupBy == "" {
		c.View.GroupBy = defaults.View.GroupBy
	}
	if c.Export.OutputDir == "" {
		c.Export.OutputDir = defaults.Export.OutputDir
	}
	if c.Log.Level == "" {
		c.Log.Level = defaults.Log.Level
	}
}

// ApplyEnvOverrides applies GANTTVIEW_* environment variables over the
// loaded values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GANTTVIEW_PLAN"); v != "" {
		c.Plan.Path = v
	}
	if v := os.Getenv("GANTTVIEW_EXPORT_DIR"); v != "" {
		c.Export.OutputDir = v
	}
	if v := os.Getenv("GANTTVIEW_DB"); v != "" {
		c.Storage.DatabasePath = v
	}
	if v := os.Getenv("GANTTVIEW_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError describes a single invalid config field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks field values and normalizes the zoom factor. Unknown mode
// or grouping strings are errors rather than silent fallbacks so a typo in
// the config file surfaces at startup instead of as a wrong default view.
func (c *Config) Validate() error {
	switch c.View.Mode {
	case "day", "week", "month", "quarter":
	default:
		return ValidationError{Field: "view.mode",
			Message: fmt.Sprintf("unknown mode %q (day, week, month, quarter)", c.View.Mode)}
	}

	switch c.View.GroupBy {
	case "none", "status", "assignee":
	default:
		return ValidationError{Field: "view.group_by",
			Message: fmt.Sprintf("unknown grouping %q (none, status, assignee)", c.View.GroupBy)}
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return ValidationError{Field: "log.level",
			Message: fmt.Sprintf("unknown level %q (debug, info, warn, error)", c.Log.Level)}
	}

	c.View.Scale = model.ClampScale(c.View.Scale)
	return nil
}

// =============================================================================
// DERIVED PATHS AND VIEW STATE
// =============================================================================

// DatabasePath resolves the snapshot database location.
func (c *Config) DatabasePath() (string, error) {
	if c.Storage.DatabasePath != "" {
		return c.Storage.DatabasePath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ganttview.db"), nil
}

// LogFile resolves the log destination.
func (c *Config) LogFile() (string, error) {
	if c.Log.File != "" {
		return c.Log.File, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "ganttview.log"), nil
}

// ViewState builds the initial chart view state from the config defaults.
func (c *Config) ViewState() *model.ViewState {
	v := model.NewViewState()
	v.ViewMode = model.ParseViewMode(c.View.Mode)
	v.GroupBy = model.ParseGroupBy(c.View.GroupBy)
	v.ShowDependencies = c.View.ShowDependencies
	v.SetScale(c.View.Scale)
	return v
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// Save saves the configuration to the default TOML file.
func Save(cfg *Config) error {
	path, err := ConfigPathTOML()
	if err != nil {
		return err
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file atomically.
func SaveTOML(cfg *Config, path string) error {
	var sb strings.Builder
	sb.WriteString("# ganttview configuration file\n")
	sb.WriteString("# Generated by ganttview - edit with care\n\n")

	encoder := toml.NewEncoder(&sb)
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// =============================================================================
// GLOBAL CONFIG
// =============================================================================

var (
	globalMu  sync.RWMutex
	globalCfg *Config
)

// Global returns the process-wide config, loading it on first use. Load
// errors fall back to defaults; the caller that needs the error should use
// Load directly.
func Global() *Config {
	globalMu.RLock()
	if globalCfg != nil {
		defer globalMu.RUnlock()
		return globalCfg
	}
	globalMu.RUnlock()

	cfg, err := Load()
	if err != nil {
		cfg = Default()
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalCfg == nil {
		globalCfg = cfg
	}
	return globalCfg
}

// SetGlobal replaces the process-wide config.
func SetGlobal(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = cfg
}

// ResetGlobalForTesting clears the cached global config.
func ResetGlobalForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalCfg = nil
}
