// Package core contains the bones of the bubbletea program: the Model, the
// Init -> Update -> View loop, and the routing of keys, mouse events and timer
// messages onto the fretboard.
package core

import (
	"fmt"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/chrome"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/config"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/fretboard"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/utils"
	"github.com/charmbracelet/bubbles/help"
)

type Model struct {
	Cfg   config.Config
	Title chrome.TitleState

	// Board is shared by every copy of the Model, only Update touches it
	Board   *fretboard.Board
	Pattern int // index of the pattern on the board
	DelayMS int // read each time the roulette re-arms

	Keys keyMap
	Help help.Model

	Notice      string
	NoticeFrame int

	// Err is set when a fretboard precondition breaks, the program quits with it
	Err error

	// TUI window
	Frame  int
	Width  int
	Height int
}

// NewModel plots the configured pattern on board. The configured index is
// clamped into the catalog first.
func NewModel(titleLines []string, cfg config.Config, board *fretboard.Board) (Model, error) {
	idx := utils.Clamp(cfg.Pattern, 0, fretboard.Count()-1)
	p, err := fretboard.Get(idx)
	if err != nil {
		return Model{}, fmt.Errorf("start pattern: %w", err)
	}
	board.SetPattern(p)

	return Model{
		Cfg:         cfg,
		Title:       chrome.NewTitleState(titleLines, 0),
		Board:       board,
		Pattern:     idx,
		DelayMS:     config.SnapDelay(cfg.DelayMS),
		Keys:        defaultKeyMap(),
		Help:        help.New(),
		NoticeFrame: -1,
	}, nil
}
