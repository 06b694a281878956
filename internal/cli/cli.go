// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing and usage text for ganttview.
package cli

import (
	"fmt"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdImport
	CmdExport
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	Quiet   bool
	Verbose bool

	// PlanPath is the plan file named on the command line, if any.
	PlanPath string

	// OutputDir overrides the export directory for the export command.
	OutputDir string

	// NoWatch disables live plan reloading for this run.
	NoWatch bool

	// Raw holds the remaining unparsed arguments.
	Raw []string
}

const usageText = `ganttview - interactive gantt charts in the terminal

Ganttview renders a project plan as a scrollable, zoomable gantt chart.
Task bars can be dragged to reschedule; changes persist to a local
snapshot database so the chart reopens where you left off.

Usage:
  ganttview                    Open the chart from the last import
  ganttview plan.toml          Import a plan file and open it
  ganttview import plan.toml   Import a plan without opening the chart
  ganttview export [plan]      Render a PNG headlessly
    --out DIR                  Output directory (default from config)
  ganttview config             Print the resolved configuration
  ganttview version            Print version information
  ganttview help               Show this help

Global Flags:
  -q, --quiet     Minimal output
  -v, --verbose   Debug logging
  --no-watch      Do not reload when the plan file changes

Keys (inside the chart):
  +/-             Zoom in / out
  v               Cycle view mode (day, week, month, quarter)
  g               Cycle grouping (none, status, assignee)
  d               Toggle dependency arrows
  t               Jump to today
  e               Export the current view as PNG
  r               Reload the plan file
  arrows/hjkl     Scroll
  ?               Toggle help
  q               Quit

Files:
  ~/.ganttview/config.toml     Configuration
  ~/.ganttview/ganttview.db    Snapshot database
  ~/.ganttview/ganttview.log   Log file

Environment:
  GANTTVIEW_PLAN, GANTTVIEW_EXPORT_DIR, GANTTVIEW_DB, GANTTVIEW_LOG_LEVEL
`

// Usage returns the full help text.
func Usage() string {
	return usageText
}

// Parse interprets command line arguments (without the program name).
func Parse(args []string) (Command, Args) {
	remaining, parsed := parseGlobalFlags(args)

	if len(remaining) == 0 {
		return CmdTUI, parsed
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsed.Raw = remaining

	switch cmd {
	case "tui":
		if len(remaining) > 0 {
			parsed.PlanPath = remaining[0]
		}
		return CmdTUI, parsed

	case "import":
		if len(remaining) > 0 {
			parsed.PlanPath = remaining[0]
		}
		return CmdImport, parsed

	case "export":
		parseExportArgs(&parsed, remaining)
		return CmdExport, parsed

	case "config":
		return CmdConfig, parsed

	case "version", "-v", "--version":
		return CmdVersion, parsed

	case "help", "-h", "--help":
		return CmdHelp, parsed

	default:
		// A bare argument is a plan file to open.
		parsed.PlanPath = cmd
		return CmdTUI, parsed
	}
}

// parseGlobalFlags extracts global flags and returns the remaining args.
func parseGlobalFlags(args []string) ([]string, Args) {
	var parsed Args
	var remaining []string

	for _, arg := range args {
		switch arg {
		case "-q", "--quiet":
			parsed.Quiet = true
		case "-v", "--verbose":
			parsed.Verbose = true
		case "--no-watch":
			parsed.NoWatch = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsed
}

// parseExportArgs handles the export command's flags and plan argument.
func parseExportArgs(parsed *Args, args []string) {
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--out" && i+1 < len(args):
			parsed.OutputDir = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--out="):
			parsed.OutputDir = strings.TrimPrefix(args[i], "--out=")
		case !strings.HasPrefix(args[i], "-") && parsed.PlanPath == "":
			parsed.PlanPath = args[i]
		}
	}
}

// VersionString formats the version banner.
func VersionString() string {
	return fmt.Sprintf("ganttview %s (commit %s, built %s)", Version, GitCommit, BuildDate)
}
