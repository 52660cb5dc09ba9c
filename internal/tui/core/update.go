package core

import (
	"time"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/chrome"
	tea "github.com/charmbracelet/bubbletea"
)

const frameInterval = 80 * time.Millisecond

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return tickMsg{} })
}

// Init starts the animation frames and fires the first roulette right away,
// every later one is re-armed from Update.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tick(), startRoulette)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Help.Width = msg.Width
	case tickMsg:
		m.Frame++
		m.Title.Colored = chrome.ColorizeTitle(m.Title.Lines, m.Title.BlockW, m.Frame)
		if m.Notice != "" && chrome.NoticeExpired(m.NoticeFrame, m.Frame) {
			m.Notice = ""
		}
		return m, tick()
	case rouletteMsg:
		return m.handleRoulette()
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		return m.handleMouseMsg(msg)
	}
	return m, nil
}

func (m *Model) notify(text string) {
	m.Notice = text
	m.NoticeFrame = m.Frame
}
