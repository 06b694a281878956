// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import "github.com/muesli/termenv"

// Capabilities describes what the attached terminal can display.
type Capabilities struct {
	// Profile is the detected color profile.
	Profile termenv.Profile

	// TrueColor is set when the terminal handles 24-bit color.
	TrueColor bool

	// DarkBackground is set when the terminal background is dark.
	DarkBackground bool

	// Unicode is set when the terminal can be expected to display box
	// drawing characters. Pure ASCII terminals get plain glyphs instead.
	Unicode bool
}

// DetectCapabilities probes the attached terminal.
func DetectCapabilities() Capabilities {
	profile := termenv.ColorProfile()
	return Capabilities{
		Profile:        profile,
		TrueColor:      profile == termenv.TrueColor,
		DarkBackground: termenv.HasDarkBackground(),
		Unicode:        profile != termenv.Ascii,
	}
}
