package chrome

import (
	"fmt"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
	lgtbl "github.com/charmbracelet/lipgloss/table"
)

// SummaryInfo is what the summary table shows about the running session.
type SummaryInfo struct {
	Pattern    int // zero based, shown one based
	Patterns   int
	DelayMS    int
	Markers    int
	Emphasized string // "" while nothing is emphasized
}

func RenderSummary(info SummaryInfo, width int) string {
	current := info.Emphasized
	if current == "" {
		current = "<none>"
	}
	rows := [][]string{
		{"Pattern", fmt.Sprintf("%d / %d", info.Pattern+1, info.Patterns)},
		{"Delay", fmt.Sprintf("%d ms", info.DelayMS)},
		{"Notes", fmt.Sprintf("%d", info.Markers)},
		{"Current", current},
	}

	headerStyle := styles.Purple.Bold(true).Padding(0, 1)
	cellEven := styles.Gray
	cellOdd := styles.LightGray

	t := lgtbl.New().
		Headers("SESSION", "").
		Rows(rows...).
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Purple).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == lgtbl.HeaderRow {
				return headerStyle
			}
			if row%2 == 0 {
				return cellEven.Padding(0, 2, 0, 1)
			}
			return cellOdd.Padding(0, 2, 0, 1)
		})

	tableStr := t.String()
	w := width
	if w <= 0 {
		w = lipgloss.Width(tableStr)
	}
	return lipgloss.Place(w, lipgloss.Height(tableStr), lipgloss.Center, lipgloss.Top, tableStr)
}
