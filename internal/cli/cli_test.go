// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import "testing"

func TestParse(t *testing.T) {
	testCases := []struct {
		name     string
		args     []string
		wantCmd  Command
		wantPlan string
	}{
		{"no args", nil, CmdTUI, ""},
		{"bare plan file", []string{"roadmap.toml"}, CmdTUI, "roadmap.toml"},
		{"explicit tui", []string{"tui", "roadmap.toml"}, CmdTUI, "roadmap.toml"},
		{"import", []string{"import", "plan.toml"}, CmdImport, "plan.toml"},
		{"import without file", []string{"import"}, CmdImport, ""},
		{"export", []string{"export", "plan.toml"}, CmdExport, "plan.toml"},
		{"config", []string{"config"}, CmdConfig, ""},
		{"version", []string{"version"}, CmdVersion, ""},
		{"version flag", []string{"--version"}, CmdVersion, ""},
		{"help", []string{"help"}, CmdHelp, ""},
		{"help flag", []string{"-h"}, CmdHelp, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, args := Parse(tc.args)
			if cmd != tc.wantCmd {
				t.Errorf("command = %v, want %v", cmd, tc.wantCmd)
			}
			if args.PlanPath != tc.wantPlan {
				t.Errorf("plan path = %q, want %q", args.PlanPath, tc.wantPlan)
			}
		})
	}
}

func TestParseGlobalFlags(t *testing.T) {
	cmd, args := Parse([]string{"-v", "--no-watch", "plan.toml"})
	if cmd != CmdTUI {
		t.Errorf("command = %v, want TUI", cmd)
	}
	if !args.Verbose {
		t.Error("verbose flag not parsed")
	}
	if !args.NoWatch {
		t.Error("no-watch flag not parsed")
	}
	if args.PlanPath != "plan.toml" {
		t.Errorf("plan path = %q", args.PlanPath)
	}

	_, args = Parse([]string{"--quiet", "export"})
	if !args.Quiet {
		t.Error("quiet flag not parsed")
	}
}

func TestParseExportOut(t *testing.T) {
	_, args := Parse([]string{"export", "--out", "/tmp/charts", "plan.toml"})
	if args.OutputDir != "/tmp/charts" {
		t.Errorf("output dir = %q", args.OutputDir)
	}
	if args.PlanPath != "plan.toml" {
		t.Errorf("plan path = %q", args.PlanPath)
	}

	_, args = Parse([]string{"export", "--out=/elsewhere"})
	if args.OutputDir != "/elsewhere" {
		t.Errorf("output dir = %q", args.OutputDir)
	}
}

func TestVersionString(t *testing.T) {
	if VersionString() == "" {
		t.Error("empty version string")
	}
}
