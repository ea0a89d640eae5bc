// mouse-checker measures the time between successive mouse clicks.
package main

import (
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ckaznable/mouse-checker/internal/app"
	"github.com/ckaznable/mouse-checker/internal/clock"
	"github.com/ckaznable/mouse-checker/internal/config"
	"github.com/ckaznable/mouse-checker/internal/ui/bubbletea"
	flag "github.com/spf13/pflag"
)

var version = "0.1.0"

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if cfg.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		os.Exit(0)
	}

	tracker := app.NewTracker(cfg.Threshold(), clock.NewSystem())

	p := tea.NewProgram(
		bubbletea.NewApp(tracker),
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Enable mouse support
	)

	if _, err := p.Run(); err != nil {
		log.Fatalf("Error running program: %v", err)
	}
}
