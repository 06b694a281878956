// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package ui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/ganttview/internal/config"
	"github.com/jeranaias/ganttview/internal/model"
	"github.com/jeranaias/ganttview/internal/store"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	dt := model.DateOf(y, m, d)
	return &dt
}

func newTestModel(t *testing.T) Model {
	t.Helper()

	plan := &store.Plan{
		Name:         "Fixture",
		ProjectStart: datePtr(2025, 1, 1),
		ProjectEnd:   datePtr(2025, 3, 31),
		Tasks: []model.Task{
			{ID: "t1", Title: "Alpha", Status: model.StatusInProgress,
				StartDate: datePtr(2025, 1, 6), DueDate: datePtr(2025, 1, 10)},
			{ID: "t2", Title: "Beta", Status: model.StatusTodo,
				StartDate: datePtr(2025, 1, 13), DueDate: datePtr(2025, 1, 17)},
		},
	}

	m := New(config.Default(), plan, nil)
	m.today = model.DateOf(2025, 1, 15)
	m.rebuild()

	sized, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return sized.(Model)
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestZoomKeys(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('+'))
	m = updated.(Model)
	if m.view.Scale != 1.2 {
		t.Errorf("scale after zoom in = %v, want 1.2", m.view.Scale)
	}

	updated, _ = m.Update(keyPress('-'))
	m = updated.(Model)
	updated, _ = m.Update(keyPress('-'))
	m = updated.(Model)
	if m.view.Scale != 0.8 {
		t.Errorf("scale after zooming back out = %v, want 0.8", m.view.Scale)
	}
}

func TestViewModeAndGroupingKeys(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(keyPress('v'))
	m = updated.(Model)
	if m.view.ViewMode != model.ViewModeMonth {
		t.Errorf("view mode = %v, want month", m.view.ViewMode)
	}

	updated, _ = m.Update(keyPress('g'))
	m = updated.(Model)
	if m.view.GroupBy != model.GroupByStatus {
		t.Errorf("grouping = %v, want status", m.view.GroupBy)
	}

	updated, _ = m.Update(keyPress('d'))
	m = updated.(Model)
	if m.view.ShowDependencies {
		t.Error("deps toggle should have turned arrows off")
	}
}

func TestMouseHoverMapsCellsToBar(t *testing.T) {
	m := newTestModel(t)

	rect, ok := m.pipe.Geo.BarRect("t1")
	if !ok {
		t.Fatal("t1 should have a bar")
	}

	cellX := int((rect.X + rect.W/2) / CellWidthPx)
	cellY := int(rect.CenterY() / CellHeightPx)

	updated, _ := m.Update(tea.MouseMsg{X: cellX, Y: cellY, Type: tea.MouseMotion})
	m = updated.(Model)

	if m.view.HoveredTaskID != "t1" {
		t.Errorf("hovered = %q, want t1", m.view.HoveredTaskID)
	}
}

func TestMouseOverChromeClearsHover(t *testing.T) {
	m := newTestModel(t)

	rect, _ := m.pipe.Geo.BarRect("t1")
	cellX := int((rect.X + rect.W/2) / CellWidthPx)
	cellY := int(rect.CenterY() / CellHeightPx)

	updated, _ := m.Update(tea.MouseMsg{X: cellX, Y: cellY, Type: tea.MouseMotion})
	m = updated.(Model)
	if m.view.HoveredTaskID != "t1" {
		t.Fatal("fixture hover failed")
	}

	// Motion into the status bar row leaves the chart.
	updated, _ = m.Update(tea.MouseMsg{X: 0, Y: m.height - 1, Type: tea.MouseMotion})
	m = updated.(Model)
	if m.view.HoveredTaskID != "" {
		t.Errorf("hover survived pointer leaving the chart: %q", m.view.HoveredTaskID)
	}
}

func TestDragThroughMouseEventsCommitsDates(t *testing.T) {
	m := newTestModel(t)
	dayCells := int(m.pipe.Geo.Grid.DayWidth() / CellWidthPx)

	rect, _ := m.pipe.Geo.BarRect("t1")
	cellX := int((rect.X + rect.W/2) / CellWidthPx)
	cellY := int(rect.CenterY() / CellHeightPx)

	updated, _ := m.Update(tea.MouseMsg{X: cellX, Y: cellY, Type: tea.MouseLeft})
	m = updated.(Model)
	updated, _ = m.Update(tea.MouseMsg{X: cellX + 2*dayCells, Y: cellY, Type: tea.MouseMotion})
	m = updated.(Model)
	updated, _ = m.Update(tea.MouseMsg{X: cellX + 2*dayCells, Y: cellY, Type: tea.MouseRelease})
	m = updated.(Model)

	t1 := m.plan.Tasks[0]
	if t1.StartDate == nil || !t1.StartDate.Equal(model.DateOf(2025, 1, 8)) {
		t.Errorf("start after 2-day drag = %v, want 2025-01-08", t1.StartDate)
	}
	if t1.DueDate == nil || !t1.DueDate.Equal(model.DateOf(2025, 1, 12)) {
		t.Errorf("due after 2-day drag = %v, want 2025-01-12", t1.DueDate)
	}
}

func TestClickSelectsTask(t *testing.T) {
	m := newTestModel(t)

	rect, _ := m.pipe.Geo.BarRect("t2")
	cellX := int((rect.X + rect.W/2) / CellWidthPx)
	cellY := int(rect.CenterY() / CellHeightPx)

	updated, _ := m.Update(tea.MouseMsg{X: cellX, Y: cellY, Type: tea.MouseLeft})
	m = updated.(Model)
	updated, _ = m.Update(tea.MouseMsg{X: cellX, Y: cellY, Type: tea.MouseRelease})
	m = updated.(Model)

	if m.view.SelectedTaskID != "t2" {
		t.Errorf("selected = %q, want t2", m.view.SelectedTaskID)
	}
}

func TestPlanReloadKeepsViewState(t *testing.T) {
	m := newTestModel(t)
	m.view.SetScale(1.6)
	m.view.GroupBy = model.GroupByStatus

	fresh := &store.Plan{
		Name: "Reloaded",
		Tasks: []model.Task{
			{ID: "n1", Title: "New", Status: model.StatusTodo,
				StartDate: datePtr(2025, 2, 3), DueDate: datePtr(2025, 2, 7)},
		},
	}
	updated, _ := m.Update(PlanReloadedMsg{Plan: fresh})
	m = updated.(Model)

	if m.plan.Name != "Reloaded" || len(m.plan.Tasks) != 1 {
		t.Errorf("plan not replaced: %q, %d tasks", m.plan.Name, len(m.plan.Tasks))
	}
	if m.view.Scale != 1.6 || m.view.GroupBy != model.GroupByStatus {
		t.Error("reload must not reset the view state")
	}
}

func TestViewRendersWithoutPanic(t *testing.T) {
	m := newTestModel(t)
	out := m.View()
	if out == "" {
		t.Error("view produced no output")
	}
}

func TestViewBeforeSizing(t *testing.T) {
	plan := &store.Plan{}
	m := New(config.Default(), plan, nil)
	if m.View() == "" {
		t.Error("unsized view should still render a placeholder")
	}
}
