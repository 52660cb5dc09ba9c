// Package ui starts the pentatonic practice screen through the bubble tea
// components in core
package ui

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/chrome"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/config"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/core"
	tea "github.com/charmbracelet/bubbletea"
)

// DebugEnv names the log file to write to while the TUI owns the terminal.
const DebugEnv = "PENTATONIC_DEBUG"

func Run() error {
	// the terminal belongs to bubbletea, so logs either go to the debug file
	// or nowhere at all
	if path := os.Getenv(DebugEnv); path != "" {
		f, err := tea.LogToFile(path, "pentatonic")
		if err != nil {
			return fmt.Errorf("debug log: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	cfg := config.Load()
	log.Printf("config: pattern %d, delay %d ms, cell %d", cfg.Pattern, cfg.DelayMS, cfg.CellSize)

	return core.Run(cfg, chrome.LoadTitle())
}
