package core

import (
	"fmt"
	"strings"

	"github.com/YvesDansereau/pentatonic-master/internal/tui/chrome"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/fretboard"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

// screenLayout is the stacked sections of one frame. The mouse hit test reads
// selectorTop from the same layout View draws, so they cannot drift apart.
type screenLayout struct {
	width       int
	sections    []string // joined with "\n", top to bottom
	selector    string   // the unplaced selector block
	selectorTop int      // first screen row of the selector
}

func (m Model) layout() screenLayout {
	box, versionLine, w := chrome.RenderTitleHeader(m.Width, m.Title)

	board := styles.BoardBox.Render(fretboard.Render(m.Board, m.Frame))
	selector := chrome.RenderSelector(m.Pattern, fretboard.Count())

	above := []string{
		box,
		versionLine,
		lipgloss.PlaceHorizontal(w, lipgloss.Center, board),
		"",
	}
	top := 0
	for _, s := range above {
		top += lipgloss.Height(s)
	}

	sections := append(above,
		centerBlock(w, selector),
		"",
		lipgloss.PlaceHorizontal(w, lipgloss.Center, chrome.RenderSlider(m.DelayMS)),
		chrome.RenderSummary(m.summary(), w),
	)
	if nl := chrome.NoticeLine(m.Notice, m.NoticeFrame, m.Frame, w); nl != "" {
		sections = append(sections, nl)
	}
	sections = append(sections, "", lipgloss.PlaceHorizontal(w, lipgloss.Center, m.Help.View(m.Keys)))

	return screenLayout{
		width:       w,
		sections:    sections,
		selector:    selector,
		selectorTop: top,
	}
}

func (m Model) View() string {
	l := m.layout()
	body := strings.Join(l.sections, "\n")
	status := chrome.RenderStatus(m.statusLabel(), "esc to quit", m.Width)

	if m.Height > 0 {
		// pad with newlines so the status bar sits on the last row
		gap := max(m.Height-lipgloss.Height(body)-lipgloss.Height(status), 0)
		return body + strings.Repeat("\n", gap+1) + status
	}
	return body + "\n" + status
}

func (m Model) summary() chrome.SummaryInfo {
	info := chrome.SummaryInfo{
		Pattern:  m.Pattern,
		Patterns: fretboard.Count(),
		DelayMS:  m.DelayMS,
		Markers:  m.Board.Len(),
	}
	if mk, ok := m.Board.Emphasized(); ok {
		info.Emphasized = fmt.Sprintf("string %d, fret %d", mk.String+1, mk.Fret)
	}
	return info
}

func (m Model) statusLabel() string {
	if m.Board.Len() == 0 {
		return "Empty board"
	}
	return fmt.Sprintf("Practicing pattern %d", m.Pattern+1)
}

// centerBlock pads every line of block so it sits centered in width, using the
// same floor offset as utils.MouseHit.
func centerBlock(width int, block string) string {
	bw := lipgloss.Width(block)
	if width <= bw {
		return block
	}
	pad := strings.Repeat(" ", (width-bw)/2)
	lines := strings.Split(block, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}
