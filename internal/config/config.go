/* SPDX-License-Identifier: GPL-2.0-only */
/* Copyright (C) 2026 ckaznable */

// Package config provides command-line configuration for mouse-checker.
package config

import (
	"fmt"
	"os"
	"time"

	flag "github.com/spf13/pflag"
)

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	// AppName is the application identifier.
	AppName = "mouse-checker"

	// DefaultSec is the default click threshold in seconds.
	DefaultSec = 1.0
)

// Config holds the parsed command-line configuration.
type Config struct {
	// Sec is the click threshold in seconds. Used when Millisecond is zero.
	Sec float64

	// Millisecond is the click threshold in milliseconds. When non-zero it
	// overrides Sec entirely.
	Millisecond uint64

	Help    bool
	Version bool
}

// Threshold resolves the effective click threshold.
func (c *Config) Threshold() time.Duration {
	if c.Millisecond != 0 {
		return time.Duration(c.Millisecond) * time.Millisecond
	}
	return time.Duration(c.Sec * float64(time.Second))
}

// Parse parses command-line arguments (excluding the program name).
// Returns flag.ErrHelp when help was requested.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}

	fs := flag.NewFlagSet(AppName, flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.SortFlags = false

	fs.Float64VarP(&cfg.Sec, "sec", "s", DefaultSec, "Click threshold in seconds")
	fs.Uint64VarP(&cfg.Millisecond, "millisecond", "m", 0, "Click threshold in milliseconds (overrides --sec)")
	fs.BoolVarP(&cfg.Help, "help", "h", false, "Show help")
	fs.BoolVarP(&cfg.Version, "version", "v", false, "Show version")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "%s - measure the time between mouse clicks\n", AppName)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Shows the elapsed time of each click since the start of the current")
		fmt.Fprintln(os.Stderr, "click sequence. The sequence resets when a click arrives later than")
		fmt.Fprintln(os.Stderr, "the threshold.")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", AppName)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Flags:")
		fs.PrintDefaults()
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Keys: click to record, r to reset, q to quit")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.Help {
		fs.Usage()
		return cfg, flag.ErrHelp
	}

	return cfg, nil
}
