// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// run.go - command handlers wiring config, store, export and the TUI.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/jeranaias/ganttview/internal/config"
	"github.com/jeranaias/ganttview/internal/export"
	"github.com/jeranaias/ganttview/internal/model"
	"github.com/jeranaias/ganttview/internal/store"
	"github.com/jeranaias/ganttview/internal/ui"
)

// Run dispatches a parsed command and returns the process exit code.
func Run(cmd Command, args Args) int {
	switch cmd {
	case CmdHelp:
		fmt.Print(Usage())
		return 0

	case CmdVersion:
		fmt.Println(VersionString())
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ganttview: %v\n", err)
		return 1
	}
	applyArgs(cfg, args)
	setupLogging(cfg, args)

	switch cmd {
	case CmdTUI:
		return runTUI(cfg, args)
	case CmdImport:
		return runImport(cfg, args)
	case CmdExport:
		return runExport(cfg, args)
	case CmdConfig:
		return runConfig(cfg)
	default:
		fmt.Print(Usage())
		return 1
	}
}

// applyArgs folds command line overrides into the loaded config.
func applyArgs(cfg *config.Config, args Args) {
	if args.PlanPath != "" {
		cfg.Plan.Path = args.PlanPath
	}
	if args.OutputDir != "" {
		cfg.Export.OutputDir = args.OutputDir
	}
	if args.NoWatch {
		cfg.Plan.Watch = false
	}
}

// setupLogging points logrus at the log file. The terminal belongs to the
// chart, so nothing logs to stderr unless the file is unusable.
func setupLogging(cfg *config.Config, args Args) {
	level := cfg.Log.Level
	if args.Verbose {
		level = "debug"
	}
	if parsed, err := logrus.ParseLevel(level); err == nil {
		logrus.SetLevel(parsed)
	}

	path, err := cfg.LogFile()
	if err == nil {
		if err := config.EnsureConfigDir(); err == nil {
			if f, ferr := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); ferr == nil {
				logrus.SetOutput(f)
				return
			}
		}
	}
	logrus.SetOutput(io.Discard)
}

// =============================================================================
// COMMAND HANDLERS
// =============================================================================

// runTUI opens the interactive chart.
func runTUI(cfg *config.Config, args Args) int {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "ganttview: the chart needs an interactive terminal (use 'ganttview export' for headless output)")
		return 1
	}

	st := openStore(cfg)
	if st != nil {
		defer st.Close()
	}

	plan, code := resolvePlan(cfg, st, args)
	if code != 0 {
		return code
	}

	if err := ui.Run(cfg, plan, st); err != nil {
		fmt.Fprintf(os.Stderr, "ganttview: %v\n", err)
		return 1
	}
	return 0
}

// runImport loads a plan file into the snapshot database.
func runImport(cfg *config.Config, args Args) int {
	if args.PlanPath == "" {
		fmt.Fprintln(os.Stderr, "ganttview: import needs a plan file argument")
		return 1
	}

	plan, err := store.LoadPlan(args.PlanPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ganttview: %v\n", err)
		return 1
	}

	st := openStore(cfg)
	if st == nil {
		return 1
	}
	defer st.Close()

	if err := st.SaveSnapshot(plan); err != nil {
		fmt.Fprintf(os.Stderr, "ganttview: %v\n", err)
		return 1
	}

	if !args.Quiet {
		name := plan.Name
		if name == "" {
			name = args.PlanPath
		}
		fmt.Printf("imported %s: %d tasks, %d users\n", name, len(plan.Tasks), len(plan.Users))
	}
	return 0
}

// runExport renders a PNG without opening the chart.
func runExport(cfg *config.Config, args Args) int {
	st := openStore(cfg)
	if st != nil {
		defer st.Close()
	}

	plan, code := resolvePlan(cfg, st, args)
	if code != 0 {
		return code
	}

	view := cfg.ViewState()
	opts := &export.Options{
		OutputDir:       cfg.Export.OutputDir,
		OpenAfterExport: cfg.Export.OpenAfterExport,
	}

	path, err := export.ChartPNG(plan.Snapshot(), view, model.Day(time.Now()), opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ganttview: %v\n", err)
		return 1
	}
	if !args.Quiet {
		fmt.Println(path)
	}
	return 0
}

// runConfig prints the resolved configuration as TOML.
func runConfig(cfg *config.Config) int {
	if err := toml.NewEncoder(os.Stdout).Encode(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "ganttview: %v\n", err)
		return 1
	}
	return 0
}

// =============================================================================
// SHARED PLUMBING
// =============================================================================

// openStore opens the snapshot database, or returns nil when unavailable.
// The chart can run without persistence; import cannot.
func openStore(cfg *config.Config) *store.Store {
	path, err := cfg.DatabasePath()
	if err != nil {
		logrus.WithError(err).Warn("snapshot database unavailable")
		return nil
	}
	st, err := store.Open(path)
	if err != nil {
		logrus.WithError(err).Warn("snapshot database unavailable")
		fmt.Fprintf(os.Stderr, "ganttview: snapshot database unavailable: %v\n", err)
		return nil
	}
	return st
}

// resolvePlan produces the plan to show: an explicit plan file wins and is
// imported as a side effect; otherwise the last stored snapshot is used.
func resolvePlan(cfg *config.Config, st *store.Store, args Args) (*store.Plan, int) {
	if cfg.Plan.Path != "" {
		plan, err := store.LoadPlan(cfg.Plan.Path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "ganttview: %v\n", err)
			return nil, 1
		}
		if st != nil {
			if err := st.SaveSnapshot(plan); err != nil {
				logrus.WithError(err).Warn("saving imported snapshot failed")
			}
		}
		return plan, 0
	}

	if st != nil {
		has, err := st.HasSnapshot()
		if err == nil && has {
			plan, err := st.LoadSnapshot()
			if err == nil {
				return plan, 0
			}
			logrus.WithError(err).Warn("loading stored snapshot failed")
		}
	}

	fmt.Fprintln(os.Stderr, "ganttview: no plan loaded; pass a plan file or run 'ganttview import plan.toml' first")
	return nil, 1
}
