// Package render provides formatting functions for click interval data.
package render

// -----------------------------------------------------------------------------
// Display Strings
// -----------------------------------------------------------------------------

const (
	// Placeholder is shown while no clicks have been recorded.
	Placeholder = "please click the mouse!"

	// IntervalFormat renders one recorded interval in milliseconds.
	IntervalFormat = "%d ms"
)
