/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ckaznable */

// Package app provides core application state and business logic.
package app

import (
	"time"

	"github.com/ckaznable/mouse-checker/internal/clock"
)

// Tracker records the elapsed time of each mouse click relative to the
// start of the current click sequence. When a click arrives more than
// threshold after the sequence anchor, the recorded history is cleared
// and that click starts a new sequence.
//
// Recorded values are cumulative elapsed time since the sequence anchor,
// not deltas between consecutive clicks. The Bubble Tea runtime delivers
// all events on a single goroutine, so no locking is needed.
type Tracker struct {
	threshold time.Duration
	clk       clock.Clock
	anchor    time.Time
	recorded  []time.Duration
}

// NewTracker creates a tracker with the given reset threshold and clock.
func NewTracker(threshold time.Duration, clk clock.Clock) *Tracker {
	return &Tracker{
		threshold: threshold,
		clk:       clk,
		anchor:    clk.Now(),
	}
}

// Threshold returns the maximum allowed gap between clicks.
func (t *Tracker) Threshold() time.Duration {
	return t.threshold
}

// Reset clears the recorded history and starts a new sequence anchored
// at the current time.
func (t *Tracker) Reset() {
	t.anchor = t.clk.Now()
	t.recorded = t.recorded[:0]
}

// Click records one mouse click. The first click of a sequence records
// zero and sets the anchor; later clicks record elapsed time since the
// anchor. A click past the threshold resets the sequence and becomes its
// zero-valued first entry.
func (t *Tracker) Click() {
	if len(t.recorded) == 0 {
		t.anchor = t.clk.Now()
	}

	var elapsed time.Duration
	if len(t.recorded) > 0 {
		elapsed = t.clk.Since(t.anchor)
	}

	if elapsed > t.threshold {
		t.Reset()
		elapsed = 0
	}

	t.recorded = append(t.recorded, elapsed)
}

// Snapshot returns a copy of the recorded intervals in click order.
func (t *Tracker) Snapshot() []time.Duration {
	out := make([]time.Duration, len(t.recorded))
	copy(out, t.recorded)
	return out
}
