// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package cli parses command line arguments and drives the top-level
commands: the interactive chart, plan import, headless PNG export and
config display.

Commands:

	ganttview [plan.toml]        open the chart (plan argument optional)
	ganttview import plan.toml   import a plan into the snapshot database
	ganttview export [plan]      render a PNG without opening the chart
	ganttview config             print the resolved configuration
	ganttview version            print version information
*/
package cli
