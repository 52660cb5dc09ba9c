package chrome

import (
	"github.com/YvesDansereau/pentatonic-master/internal/tui/styles"
	"github.com/YvesDansereau/pentatonic-master/internal/tui/utils"
	"github.com/charmbracelet/lipgloss"
)

// notices hold full color for noticeHold frames, then fade out until noticeLife
const (
	noticeHold = 10
	noticeLife = 19
)

func RenderStatus(label string, hint string, width int) string {
	w := max(width, 0)

	statusKey := styles.StatusKey.Render("PENTATONIC")
	statusArrow := styles.StatusArrow.
		Foreground(styles.StatusBar.GetBackground()).
		Background(styles.StatusKey.GetBackground()).
		Render("")
	infoBox := styles.StatusText.Render(" " + label)
	available := max(w-lipgloss.Width(statusKey)-lipgloss.Width(statusArrow)-lipgloss.Width(infoBox), 0)

	bar := lipgloss.JoinHorizontal(
		lipgloss.Top,
		statusKey,
		statusArrow,
		infoBox,
		renderHint(hint, available),
	)

	if w > 0 {
		return styles.StatusBar.Width(w).Render(bar)
	}
	return styles.StatusBar.Render(bar)
}

func renderHint(text string, available int) string {
	if available <= 0 || text == "" {
		return ""
	}
	colored := utils.GradientText(text, styles.HintStart, styles.HintEnd, styles.StatusHint.Padding(0))
	return styles.StatusHint.
		Width(available).
		Align(lipgloss.Right).
		Render(colored)
}

// NoticeExpired reports whether a notice posted at noticeFrame is gone by frame.
func NoticeExpired(noticeFrame, frame int) bool {
	return frame-noticeFrame >= noticeLife
}

// NoticeLine renders a fading one-line notice centered in width.
func NoticeLine(notice string, noticeFrame, frame, width int) string {
	if notice == "" || noticeFrame < 0 || NoticeExpired(noticeFrame, frame) {
		return ""
	}
	elapsed := frame - noticeFrame
	t := 0.0
	if elapsed > noticeHold {
		t = float64(elapsed-noticeHold) / float64(noticeLife-noticeHold)
	}
	col := utils.BlendHex(styles.NoticeStart, styles.NoticeEnd, t)
	text := lipgloss.NewStyle().Foreground(lipgloss.Color(col)).Render(notice)
	if width <= 0 {
		width = lipgloss.Width(text)
	}
	return lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Top, text)
}
