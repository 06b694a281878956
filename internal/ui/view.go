// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jeranaias/ganttview/internal/ui/styles"
	"github.com/jeranaias/ganttview/internal/util"
)

// =============================================================================
// VIEW
// =============================================================================

// View implements tea.Model.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	canvas := NewCells(m.width, m.chartRows(), m.view.ScrollX, m.view.ScrollY)
	m.pipe.Render(canvas)

	var b strings.Builder
	b.WriteString(canvas.String())
	b.WriteByte('\n')
	b.WriteString(m.statusBar())
	b.WriteByte('\n')
	b.WriteString(styles.HelpText.Render(m.help.View(m.keys)))
	return b.String()
}

// statusBar assembles the line under the chart: plan name, view settings,
// hover details and transient messages.
func (m Model) statusBar() string {
	name := m.plan.Name
	if name == "" {
		name = "untitled plan"
	}

	deps := "on"
	if !m.view.ShowDependencies {
		deps = "off"
	}

	left := styles.Title.Render(util.TruncateRunes(name, 24)) +
		styles.StatusBar.Render(fmt.Sprintf("%d tasks", len(m.plan.Tasks))) +
		styles.StatusBar.Render("mode ") + styles.StatusKey.Render(string(m.view.ViewMode)) +
		styles.StatusBar.Render(" zoom ") + styles.StatusKey.Render(fmt.Sprintf("%d%%", int(m.view.Scale*100))) +
		styles.StatusBar.Render(" group ") + styles.StatusKey.Render(string(m.view.GroupBy)) +
		styles.StatusBar.Render(" deps ") + styles.StatusKey.Render(deps)

	right := ""
	switch {
	case m.status != "" && m.statusErr:
		right = styles.StatusError.Render(m.status)
	case m.status != "":
		right = styles.StatusSuccess.Render(m.status)
	case m.ctrl.Tooltip() != nil:
		right = styles.StatusBar.Render(m.tooltipText())
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return left
	}
	return left + styles.StatusBar.Render(strings.Repeat(" ", gap)) + right
}

// tooltipText summarizes the hovered task for the status bar.
func (m Model) tooltipText() string {
	tip := m.ctrl.Tooltip()
	t := tip.Task

	span := "unscheduled"
	if t.HasSchedule() {
		span = fmt.Sprintf("%s → %s (%dd)",
			t.StartDate.Format("Jan 2"), t.DueDate.Format("Jan 2"), t.DurationDays())
	}
	return fmt.Sprintf("%s · %s · %s · %d%%",
		util.TruncateRunes(t.Title, 32), t.Status.Label(), span, t.Progress())
}
