package core

import (
	"fmt"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/config"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/fretboard"
	tea "github.com/charmbracelet/bubbletea"
)

// Run owns one board for the lifetime of the program and returns either the
// terminal error or the fretboard error that made the model quit.
func Run(cfg config.Config, titleLines []string) error {
	board := fretboard.NewBoard(cfg.CellSize, nil)
	m, err := NewModel(titleLines, cfg, board)
	if err != nil {
		return err
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	if fm, ok := final.(Model); ok && fm.Err != nil {
		return fm.Err
	}
	return nil
}
