// Package styles keeps every lipgloss style and palette hex used by the
// practice screen in one place
package styles

import "github.com/charmbracelet/lipgloss"

var TitleStops = []string{
	"#443066",
	"#FF8855",
	"#FF6B81",
	"#FF4FAD",
	"#D147FF",
	"#8B5EDB",
}

var (
	// the emphasized note pulses between these two
	EmphasisStart = "#FF3B3B"
	EmphasisEnd   = "#FF8855"

	NoticeStart = "#FF6B81"
	NoticeEnd   = "#353533"

	HintStart = "#D147FF"
	HintEnd   = "#8B5EDB"

	TitleBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8B5EDB")).
			Padding(0, 2)

	BoardBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("238")).
			Padding(1, 2)

	StatusBar = lipgloss.NewStyle().
			Background(lipgloss.Color("#353533")).
			Foreground(lipgloss.Color("#E7E7E7"))

	StatusKey = lipgloss.NewStyle().
			Inherit(StatusBar).
			Foreground(StatusBar.GetBackground()).
			Background(lipgloss.Color("#FF7FB3")).
			Padding(0, 1).
			MarginRight(1).
			Bold(true)

	StatusText = lipgloss.NewStyle().
			Inherit(StatusBar)

	StatusHint = lipgloss.NewStyle().
			Inherit(StatusBar).
			Foreground(lipgloss.Color("#D147FF")).
			Padding(0, 1)

	StatusArrow = lipgloss.NewStyle().
			Inherit(StatusBar)

	Version = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#8B5EDB")).
		Bold(true)

	OptionItem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EAEAFF")).
			Padding(0, 1)

	OptionSelected = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#353533")).
			Background(lipgloss.Color("#F785D1")).
			Bold(true).
			Padding(0, 1)

	SliderFill = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F785D1"))

	// normal marker
	Note = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#EAEAFF"))

	Purple = lipgloss.NewStyle().
		Foreground(lipgloss.Color("99"))

	Gray = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))

	LightGray = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	FaintGray = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)
