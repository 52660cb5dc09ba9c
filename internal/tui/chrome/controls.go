package chrome

// controls.go draws the two inputs of the practice screen, the pattern
// selector and the delay slider. Key and mouse routing lives in core.

import (
	"fmt"
	"strings"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/config"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

const (
	selectorLabel = "Pattern  "
	sliderLabel   = "Delay    "
	sliderCols    = 2 // terminal columns per slider step
)

func selectorOption(i, current int) string {
	label := fmt.Sprintf("%d", i+1)
	if i == current {
		return styles.OptionSelected.Render(label)
	}
	return styles.OptionItem.Render(label)
}

// RenderSelector draws the pattern options on a single row with the current
// one highlighted.
func RenderSelector(current, count int) string {
	var b strings.Builder
	b.WriteString(styles.Gray.Render(selectorLabel))
	for i := range count {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(selectorOption(i, current))
	}
	return b.String()
}

// SelectorIndexAt maps a column inside the RenderSelector block onto the option
// under it.
func SelectorIndexAt(relX, current, count int) (int, bool) {
	x := lipgloss.Width(selectorLabel)
	for i := range count {
		if i > 0 {
			x++
		}
		w := lipgloss.Width(selectorOption(i, current))
		if relX >= x && relX < x+w {
			return i, true
		}
		x += w
	}
	return 0, false
}

// RenderSlider draws the delay track with the knob at delayMS and the range
// ends labelled underneath.
func RenderSlider(delayMS int) string {
	steps := (config.DelayMax-config.DelayMin)/config.DelayStep + 1
	pos := (delayMS - config.DelayMin) / config.DelayStep
	pos = max(min(pos, steps-1), 0)

	trackW := steps * sliderCols
	knobAt := pos*sliderCols + sliderCols/2

	track := styles.SliderFill.Render(strings.Repeat("━", knobAt)) +
		styles.SliderFill.Bold(true).Render("●") +
		styles.FaintGray.Render(strings.Repeat("─", trackW-knobAt-1))

	value := styles.Note.Render(fmt.Sprintf(" %4d ms", delayMS))
	top := styles.Gray.Render(sliderLabel) + track + value

	lo := fmt.Sprintf("%d", config.DelayMin)
	hi := fmt.Sprintf("%d", config.DelayMax)
	ticks := lo + strings.Repeat(" ", max(trackW-len(lo)-len(hi), 1)) + hi
	bottom := strings.Repeat(" ", lipgloss.Width(sliderLabel)) + styles.LightGray.Render(ticks) +
		strings.Repeat(" ", lipgloss.Width(value))

	return top + "\n" + bottom
}
