package core

import (
	"fmt"
	"log"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/chrome"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/config"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/fretboard"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/utils"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.Keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.Keys.Prev):
		if m.Pattern > 0 {
			return m.selectPattern(m.Pattern - 1)
		}
	case key.Matches(msg, m.Keys.Next):
		if m.Pattern < fretboard.Count()-1 {
			return m.selectPattern(m.Pattern + 1)
		}
	case key.Matches(msg, m.Keys.Jump):
		var idx int
		if _, err := fmt.Sscanf(msg.String(), "%d", &idx); err == nil {
			return m.selectPattern(idx - 1)
		}
	case key.Matches(msg, m.Keys.Slower):
		m.setDelay(m.DelayMS + config.DelayStep)
	case key.Matches(msg, m.Keys.Faster):
		m.setDelay(m.DelayMS - config.DelayStep)
	case key.Matches(msg, m.Keys.Help):
		m.Help.ShowAll = !m.Help.ShowAll
	}
	return m, nil
}

func (m Model) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.setDelay(m.DelayMS + config.DelayStep)
	case tea.MouseButtonWheelDown:
		m.setDelay(m.DelayMS - config.DelayStep)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			break
		}
		if idx, ok := m.patternAt(msg.X, msg.Y); ok {
			return m.selectPattern(idx)
		}
	}
	return m, nil
}

// patternAt maps a screen position onto the selector option drawn there.
func (m Model) patternAt(x, y int) (int, bool) {
	l := m.layout()
	return utils.MouseHit(utils.MouseHitSpec{
		X:     x,
		Y:     y,
		Width: l.width,
		Top:   l.selectorTop,
		Block: l.selector,
		Mapper: func(relX, _ int) (int, bool) {
			return chrome.SelectorIndexAt(relX, m.Pattern, fretboard.Count())
		},
	})
}

// selectPattern swaps the board over to pattern idx. The emphasis goes with the
// old markers, the running roulette picks a new note on its next pass.
func (m Model) selectPattern(idx int) (tea.Model, tea.Cmd) {
	if idx == m.Pattern {
		return m, nil
	}
	p, err := fretboard.Get(idx)
	if err != nil {
		return m.fail(fmt.Errorf("select pattern: %w", err))
	}
	m.Board.SetPattern(p)
	m.Pattern = idx
	log.Printf("pattern %d, %d notes", idx+1, m.Board.Len())
	m.notify(fmt.Sprintf("Pattern %d", idx+1))
	return m, nil
}

// setDelay only changes what the next scheduleRoulette call reads, a tick
// already in flight keeps its old delay.
func (m *Model) setDelay(ms int) {
	ms = config.SnapDelay(ms)
	if ms == m.DelayMS {
		return
	}
	m.DelayMS = ms
	log.Printf("delay %d ms", ms)
	m.notify(fmt.Sprintf("Delay %d ms", ms))
}
