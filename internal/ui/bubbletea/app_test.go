/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ckaznable */

package bubbletea

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ckaznable/mouse-checker/internal/app"
	"github.com/ckaznable/mouse-checker/internal/clock"
	"github.com/ckaznable/mouse-checker/internal/ui/render"
)

func newTestApp(threshold time.Duration) (App, *clock.Manual) {
	clk := clock.NewManual(time.Unix(0, 0))
	a := NewApp(app.NewTracker(threshold, clk))

	m, _ := a.Update(tea.WindowSizeMsg{Width: 60, Height: 20})
	return m.(App), clk
}

func press(button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{Action: tea.MouseActionPress, Button: button}
}

func keyPress(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMousePressRecordsClick(t *testing.T) {
	a, clk := newTestApp(time.Second)

	m, _ := a.Update(press(tea.MouseButtonLeft))
	a = m.(App)
	clk.Advance(300 * time.Millisecond)
	m, _ = a.Update(press(tea.MouseButtonRight))
	a = m.(App)

	got := a.tracker.Snapshot()
	want := []time.Duration{0, 300 * time.Millisecond}
	if len(got) != len(want) {
		t.Fatalf("recorded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("recorded[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestNonPressMouseEventsIgnored(t *testing.T) {
	a, _ := newTestApp(time.Second)

	ignored := []tea.MouseMsg{
		{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft},
		{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone},
		press(tea.MouseButtonWheelUp),
		press(tea.MouseButtonWheelDown),
	}
	for _, msg := range ignored {
		m, _ := a.Update(msg)
		a = m.(App)
	}

	if got := a.tracker.Snapshot(); len(got) != 0 {
		t.Errorf("recorded %v, want no clicks", got)
	}
}

func TestUnhandledKeysAreNoOps(t *testing.T) {
	a, _ := newTestApp(time.Second)

	m, cmd := a.Update(keyPress('x'))
	a = m.(App)

	if cmd != nil {
		t.Error("unhandled key produced a command")
	}
	if got := a.tracker.Snapshot(); len(got) != 0 {
		t.Errorf("recorded %v, want no clicks", got)
	}
}

func TestQuitKey(t *testing.T) {
	a, _ := newTestApp(time.Second)

	_, cmd := a.Update(keyPress('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not produce tea.QuitMsg")
	}
}

func TestResetKeyClearsRecorded(t *testing.T) {
	a, clk := newTestApp(time.Second)

	m, _ := a.Update(press(tea.MouseButtonLeft))
	a = m.(App)
	clk.Advance(100 * time.Millisecond)
	m, _ = a.Update(press(tea.MouseButtonLeft))
	a = m.(App)

	m, _ = a.Update(keyPress('r'))
	a = m.(App)

	if got := a.tracker.Snapshot(); len(got) != 0 {
		t.Errorf("recorded %v after reset, want empty", got)
	}
}

func TestViewShowsPlaceholderWhenEmpty(t *testing.T) {
	a, _ := newTestApp(time.Second)

	if view := a.View(); !strings.Contains(view, render.Placeholder) {
		t.Error("empty view does not contain the placeholder prompt")
	}
}

func TestViewShowsRecordedIntervals(t *testing.T) {
	a, clk := newTestApp(time.Second)

	m, _ := a.Update(press(tea.MouseButtonLeft))
	a = m.(App)
	clk.Advance(300 * time.Millisecond)
	m, _ = a.Update(press(tea.MouseButtonLeft))
	a = m.(App)

	view := a.View()
	for _, line := range []string{"0 ms", "300 ms"} {
		if !strings.Contains(view, line) {
			t.Errorf("view missing interval line %q", line)
		}
	}
	if strings.Contains(view, render.Placeholder) {
		t.Error("view still shows the placeholder after clicks")
	}
}
