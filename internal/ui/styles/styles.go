/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ckaznable */

// Package styles provides Lipgloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// -----------------------------------------------------------------------------
// Color Palette
// -----------------------------------------------------------------------------

var (
	ColorPrimary     = lipgloss.Color("39")  // Deep Sky Blue
	ColorBorder      = lipgloss.Color("238") // Dark Gray
	ColorText        = lipgloss.Color("255") // White
	ColorTextDim     = lipgloss.Color("246") // Dim Gray
	ColorStatusBarBg = lipgloss.Color("235") // Very Dark Gray
)

// -----------------------------------------------------------------------------
// Frame Styles
// -----------------------------------------------------------------------------

var (
	// FrameStyle is the full-screen border around the interval list.
	FrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// IntervalStyle is for recorded interval lines.
	IntervalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// PlaceholderStyle is for the empty-state prompt.
	PlaceholderStyle = lipgloss.NewStyle().
				Foreground(ColorTextDim)
)

// -----------------------------------------------------------------------------
// Status Bar Styles
// -----------------------------------------------------------------------------

var (
	// StatusBarStyle is the main status bar style.
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorStatusBarBg).
			Padding(0, 1)

	// HelpKeyStyle is for keyboard shortcut keys.
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// HelpDescStyle is for keyboard shortcut descriptions.
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)
