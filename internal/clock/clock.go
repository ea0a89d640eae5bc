// Package clock provides a time source abstraction so that click timing
// can be driven with synthetic timestamps in tests.
package clock

import "time"

// Clock provides the current time and elapsed-time measurement.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// Since returns the time elapsed since t.
	Since(t time.Time) time.Duration
}

// System implements Clock using the system monotonic clock.
type System struct{}

// NewSystem creates a system clock. The returned clock is stateless.
func NewSystem() System {
	return System{}
}

// Now returns the current system time.
func (System) Now() time.Time {
	return time.Now()
}

// Since returns the time elapsed since t on the system clock.
func (System) Since(t time.Time) time.Duration {
	return time.Since(t)
}

// Manual implements Clock with an explicitly controlled current time.
// Time only moves when Advance or Set is called.
type Manual struct {
	now time.Time
}

// NewManual creates a manual clock starting at the given time.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current time.
func (m *Manual) Now() time.Time {
	return m.now
}

// Since returns the elapsed time between t and the manual clock's current time.
func (m *Manual) Since(t time.Time) time.Duration {
	return m.now.Sub(t)
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// Set moves the clock to the given time.
func (m *Manual) Set(t time.Time) {
	m.now = t
}
