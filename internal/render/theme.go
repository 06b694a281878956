// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/jeranaias/ganttview/internal/model"
)

// =============================================================================
// CHART THEME
// =============================================================================

// Theme is the chart palette. All values are "#RRGGBB" hex strings; derived
// shades (progress overlays, weekend tint) are computed once at construction
// through go-colorful so backends never do color math.
type Theme struct {
	// Surfaces
	Background       string
	HeaderBackground string
	GroupBand        string
	RowAlt           string
	WeekendShade     string
	HoverBand        string
	SelectionBand    string

	// Lines
	GridLine  string
	Separator string
	TodayLine string
	Arrow     string

	// Text
	Text      string
	TextMuted string
	BarLabel  string

	// Bar chrome
	Handle       string
	SelectedEdge string

	statusFill   map[model.Status]string
	progressFill map[model.Status]string
	priority     map[model.Priority]string
}

// DefaultTheme returns the dark chart palette.
func DefaultTheme() *Theme {
	t := &Theme{
		Background:       "#1E1E2E",
		HeaderBackground: "#181825",
		GroupBand:        "#313244",
		RowAlt:           "#232334",
		WeekendShade:     "#26263A",
		HoverBand:        "#2E2E48",
		SelectionBand:    "#3B3B5E",
		GridLine:         "#2A2A3C",
		Separator:        "#45475A",
		TodayLine:        "#FB7185",
		Arrow:            "#A6ADC8",
		Text:             "#CDD6F4",
		TextMuted:        "#6C7086",
		BarLabel:         "#11111B",
		Handle:           "#CDD6F4",
		SelectedEdge:     "#A78BFA",

		statusFill: map[model.Status]string{
			model.StatusTodo:       "#6C7086",
			model.StatusInProgress: "#22D3EE",
			model.StatusInReview:   "#A78BFA",
			model.StatusBlocked:    "#FB7185",
			model.StatusCompleted:  "#34D399",
			model.StatusCancelled:  "#45475A",
		},
		priority: map[model.Priority]string{
			model.PriorityLow:      "#34D399",
			model.PriorityMedium:   "#22D3EE",
			model.PriorityHigh:     "#FBBF24",
			model.PriorityCritical: "#FB7185",
		},
	}

	// Progress overlays are a darkened shade of each status fill.
	t.progressFill = make(map[model.Status]string, len(t.statusFill))
	for status, hex := range t.statusFill {
		t.progressFill[status] = darken(hex, 0.35)
	}
	return t
}

// StatusFill returns the bar fill color for a status.
func (t *Theme) StatusFill(s model.Status) string {
	if hex, ok := t.statusFill[s]; ok {
		return hex
	}
	return t.statusFill[model.StatusTodo]
}

// ProgressFill returns the progress sub-bar color for a status.
func (t *Theme) ProgressFill(s model.Status) string {
	if hex, ok := t.progressFill[s]; ok {
		return hex
	}
	return t.progressFill[model.StatusTodo]
}

// PriorityStripe returns the left-edge stripe color for a priority.
func (t *Theme) PriorityStripe(p model.Priority) string {
	if hex, ok := t.priority[p]; ok {
		return hex
	}
	return t.priority[model.PriorityMedium]
}

// darken blends a hex color toward black in Lab space. Bad hex input
// returns the input unchanged; the chart degrades, it does not error.
func darken(hex string, amount float64) string {
	c, err := colorful.Hex(hex)
	if err != nil {
		return hex
	}
	black := colorful.Color{}
	return c.BlendLab(black, amount).Clamped().Hex()
}
