package core

import (
	"fmt"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/fretboard"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Jump   key.Binding
	Slower key.Binding
	Faster key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	// one digit per pattern, the catalog never outgrows 9
	n := min(fretboard.Count(), 9)
	digits := make([]string, n)
	for i := range digits {
		digits[i] = fmt.Sprintf("%d", i+1)
	}

	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "prev pattern"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next pattern"),
		),
		Jump: key.NewBinding(
			key.WithKeys(digits...),
			key.WithHelp(fmt.Sprintf("1-%d", n), "jump to pattern"),
		),
		Slower: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/k/+", "longer delay"),
		),
		Faster: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/j/-", "shorter delay"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Slower, k.Faster, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Prev, k.Next, k.Jump},
		{k.Slower, k.Faster},
		{k.Help, k.Quit},
	}
}
