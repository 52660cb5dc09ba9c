// Package chrome renders the pieces of the screen around the fretboard: the
// title box, the pattern selector and delay slider, the summary table and the
// status bar. Nothing here routes keys or owns state, that stays in core.
package chrome

import (
	"math"
	"os"
	"strings"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/config"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/styles"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/utils"
	"github.com/charmbracelet/lipgloss"
)

const version = "VERSION: 0.3"

var defaultTitle = []string{
	"┏━┓┏━╸┏┓╻╺┳╸┏━┓╺┳╸┏━┓┏┓╻╻┏━╸",
	"┣━┛┣╸ ┃┗┫ ┃ ┣━┫ ┃ ┃ ┃┃┗┫┃┃  ",
	"╹  ┗━╸╹ ╹ ╹ ╹ ╹ ╹ ┗━┛╹ ╹╹┗━╸",
	"┏┳┓┏━┓┏━┓╺┳╸┏━╸┏━┓",
	"┃┃┃┣━┫┗━┓ ┃ ┣╸ ┣┳┛",
	"╹ ╹╹ ╹┗━┛ ╹ ┗━╸╹┗╸",
}

type TitleState struct {
	Lines   []string
	Colored []string
	BlockW  int
}

// LoadTitle returns the lines of title.txt from the parent directory, or the
// built-in banner when there is none.
func LoadTitle() []string {
	path := config.ParentDirFile("title.txt")
	if path == "" {
		return defaultTitle
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultTitle
	}
	content := strings.TrimRight(string(data), "\r\n")
	if content == "" {
		return defaultTitle
	}
	return strings.Split(content, "\n")
}

func NewTitleState(lines []string, frame int) TitleState {
	blockW := 0
	for _, l := range lines {
		blockW = max(blockW, lipgloss.Width(l))
	}
	return TitleState{
		Lines:   lines,
		Colored: ColorizeTitle(lines, blockW, frame),
		BlockW:  blockW,
	}
}

// ColorizeTitle paints each line with its own gradient stop and sways it
// sideways inside the block, driven by the frame counter.
func ColorizeTitle(lines []string, blockW int, frame int) []string {
	if len(lines) == 0 {
		return nil
	}

	stops := utils.HexStops(styles.TitleStops, true)
	colored := make([]string, len(lines))

	const (
		amp   = 1.5
		speed = 0.14
		phase = 0.85
	)

	for i, line := range lines {
		t := 0.0
		if len(lines) > 1 {
			t = float64(i) / float64(len(lines)-1)
		}
		col := utils.BlendStops(stops, t)
		lineStyled := lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex())).Render(line)

		extra := max(blockW-lipgloss.Width(lineStyled), 0)
		basePad := extra / 2
		shift := int(math.Round(math.Sin(float64(frame)*speed+float64(i)*phase) * amp))
		left := utils.Clamp(basePad+shift, 0, extra)
		colored[i] = strings.Repeat(" ", left) + lineStyled + strings.Repeat(" ", extra-left)
	}
	return colored
}

// RenderTitleHeader returns the centered title box, the version line below it
// and the width everything else should be placed in.
func RenderTitleHeader(width int, title TitleState) (string, string, int) {
	boxed := styles.TitleBox.Render(strings.Join(title.Colored, "\n"))

	w := width
	if w <= 0 {
		w = lipgloss.Width(boxed)
	}

	box := lipgloss.Place(w, lipgloss.Height(boxed), lipgloss.Center, lipgloss.Top, boxed)

	boxWidth := lipgloss.Width(boxed)
	leftPad := 0
	if w > boxWidth {
		leftPad = (w - boxWidth) / 2
	}
	versionLine := strings.Repeat(" ", leftPad) +
		lipgloss.Place(boxWidth, 1, lipgloss.Right, lipgloss.Top, styles.Version.Render(version))

	return box, versionLine, w
}
