package fretboard

import (
	"fmt"
	"strings"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/styles"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/utils"
	"github.com/charmbracelet/lipgloss"
)

const (
	minFrets  = 5 // the practice box never renders narrower than this
	cellWidth = 5 // terminal columns per fret, odd so the dot sits centered
)

// stringNames labels rows top to bottom the way tab is read
var stringNames = [StringCount]string{"e", "B", "G", "D", "A", "E"}

// Render draws the board as a block of terminal cells. Each marker lands in the
// cell of its (fret, string) grid coordinate, which is the terminal analogue of
// its pixel Rect. The emphasized marker pulses with frame.
func Render(b *Board, frame int) string {
	frets := minFrets
	grid := make([][]MarkerState, StringCount)
	used := make([][]bool, StringCount)
	for _, m := range b.markers {
		frets = max(frets, m.Fret+1)
	}
	for i := range grid {
		grid[i] = make([]MarkerState, frets)
		used[i] = make([]bool, frets)
	}
	for _, m := range b.markers {
		if m.String < 0 || m.String >= StringCount || m.Fret < 0 {
			continue
		}
		used[m.String][m.Fret] = true
		if m.State == Emphasized {
			grid[m.String][m.Fret] = Emphasized
		}
	}

	hot := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(pulseColor(frame)))
	half := strings.Repeat("─", cellWidth/2)

	var rows []string
	for s := range StringCount {
		var line strings.Builder
		line.WriteString(styles.LightGray.Render(stringNames[s] + " "))
		line.WriteString(styles.Purple.Render("║"))
		for f := range frets {
			line.WriteString(styles.FaintGray.Render(half))
			switch {
			case used[s][f] && grid[s][f] == Emphasized:
				line.WriteString(hot.Render("●"))
			case used[s][f]:
				line.WriteString(styles.Note.Render("●"))
			default:
				line.WriteString(styles.FaintGray.Render("─"))
			}
			line.WriteString(styles.FaintGray.Render(half))
			line.WriteString(styles.Gray.Render("│"))
		}
		rows = append(rows, line.String())
	}
	rows = append(rows, renderRuler(frets))

	return strings.Join(rows, "\n")
}

func renderRuler(frets int) string {
	var b strings.Builder
	b.WriteString("   ")
	for f := range frets {
		label := fmt.Sprintf("%d", f)
		b.WriteString(lipgloss.PlaceHorizontal(cellWidth, lipgloss.Center, label))
		b.WriteString(" ")
	}
	return styles.LightGray.Render(b.String())
}

func pulseColor(frame int) string {
	return utils.BlendHex(styles.EmphasisStart, styles.EmphasisEnd, utils.Wave(frame, 0.35))
}
