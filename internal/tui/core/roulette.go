package core

// roulette.go is the practice loop: every rouletteMsg moves the emphasis to a
// new random note and re-arms a single tea.Tick with the delay in effect at
// that moment. There is only ever one roulette in flight and it is never
// cancelled, it ends when the program does.

import (
	"fmt"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func startRoulette() tea.Msg { return rouletteMsg{} }

func scheduleRoulette(delayMS int) tea.Cmd {
	return tea.Tick(time.Duration(delayMS)*time.Millisecond, func(time.Time) tea.Msg {
		return rouletteMsg{}
	})
}

func (m Model) handleRoulette() (tea.Model, tea.Cmd) {
	if err := m.Board.ChooseAndEmphasizeRandom(); err != nil {
		return m.fail(fmt.Errorf("roulette on pattern %d: %w", m.Pattern+1, err))
	}
	return m, scheduleRoulette(m.DelayMS)
}

// fail records a broken precondition and stops the program, Run reports it.
func (m Model) fail(err error) (tea.Model, tea.Cmd) {
	log.Printf("fatal: %v", err)
	m.Err = err
	return m, tea.Quit
}
