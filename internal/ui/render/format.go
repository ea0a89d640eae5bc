// Package render provides formatting functions for click interval data.
package render

import (
	"fmt"
	"time"
)

// Interval formats a single recorded duration as whole milliseconds.
func Interval(d time.Duration) string {
	return fmt.Sprintf(IntervalFormat, d.Milliseconds())
}

// Intervals formats recorded durations in click order, one line per click.
func Intervals(ds []time.Duration) []string {
	lines := make([]string, len(ds))
	for i, d := range ds {
		lines[i] = Interval(d)
	}
	return lines
}

// Threshold formats the active threshold for the status bar.
func Threshold(d time.Duration) string {
	return fmt.Sprintf("threshold: %d ms", d.Milliseconds())
}
