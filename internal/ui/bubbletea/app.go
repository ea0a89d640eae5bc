/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ckaznable */

// Package bubbletea provides the main TUI application using Bubble Tea.
package bubbletea

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/ckaznable/mouse-checker/internal/app"
	"github.com/ckaznable/mouse-checker/internal/ui/render"
	"github.com/ckaznable/mouse-checker/internal/ui/styles"
)

// App is the main application model. It feeds mouse button presses into
// the tracker and renders the recorded intervals on every update.
type App struct {
	tracker *app.Tracker

	// Layout
	width  int
	height int

	// Key bindings
	keys KeyMap
}

// NewApp creates a new application instance around the given tracker.
func NewApp(tracker *app.Tracker) App {
	return App{
		tracker: tracker,
		keys:    DefaultKeyMap(),
	}
}

// Init initializes the application.
func (a App) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case tea.MouseMsg:
		if isButtonPress(msg) {
			a.tracker.Click()
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.keys.Quit):
			return a, tea.Quit

		case key.Matches(msg, a.keys.Reset):
			a.tracker.Reset()
		}
	}

	return a, nil
}

// isButtonPress reports whether the event is a mouse button going down.
// Wheel events arrive as presses too and are excluded.
func isButtonPress(e tea.MouseMsg) bool {
	if e.Action != tea.MouseActionPress {
		return false
	}
	switch e.Button {
	case tea.MouseButtonNone,
		tea.MouseButtonWheelUp,
		tea.MouseButtonWheelDown,
		tea.MouseButtonWheelLeft,
		tea.MouseButtonWheelRight:
		return false
	}
	return true
}

// View renders the application.
func (a App) View() string {
	if a.width == 0 {
		return "Initializing..."
	}

	var b strings.Builder
	b.WriteString(a.renderFrame())
	b.WriteString("\n")
	b.WriteString(a.renderStatusBar())
	return b.String()
}

// renderFrame renders the interval list centered in a full-width border.
func (a App) renderFrame() string {
	recorded := a.tracker.Snapshot()

	var body string
	if len(recorded) == 0 {
		body = styles.PlaceholderStyle.Render(render.Placeholder)
	} else {
		lines := render.Intervals(recorded)
		for i, line := range lines {
			lines[i] = styles.IntervalStyle.Render(line)
		}
		body = lipgloss.JoinVertical(lipgloss.Center, lines...)
	}

	// One line is reserved for the status bar, two for the border.
	innerWidth := a.width - 2
	innerHeight := a.height - 3
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	centered := lipgloss.Place(innerWidth, innerHeight, lipgloss.Center, lipgloss.Center, body)
	return styles.FrameStyle.Render(centered)
}

// renderStatusBar renders the status bar.
func (a App) renderStatusBar() string {
	left := styles.HelpDescStyle.Render(render.Threshold(a.tracker.Threshold()))

	hints := []string{
		styles.HelpKeyStyle.Render("click") + styles.HelpDescStyle.Render(":record"),
		styles.HelpKeyStyle.Render("r") + styles.HelpDescStyle.Render(":reset"),
		styles.HelpKeyStyle.Render("q") + styles.HelpDescStyle.Render(":quit"),
	}
	right := strings.Join(hints, "  ")

	padding := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if padding < 0 {
		padding = 0
	}

	return styles.StatusBarStyle.
		Width(a.width).
		Render(left + strings.Repeat(" ", padding) + right)
}
