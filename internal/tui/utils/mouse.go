package utils

import "github.com/charmbracelet/lipgloss"

// MouseMapFunc maps coordinates relative to a block onto an index.
type MouseMapFunc func(relX, relY int) (int, bool)

// MouseHitSpec describes where a block sits on screen for a hit test. The
// block is assumed to be horizontally centered in Width and to start Top rows
// down.
type MouseHitSpec struct {
	X      int
	Y      int
	Width  int
	Top    int
	Block  string
	Mapper MouseMapFunc
}

// MouseHit converts a mouse position into block-relative coordinates and hands
// them to the mapper. Without a mapper the row inside the block is returned.
func MouseHit(spec MouseHitSpec) (int, bool) {
	if spec.X < 0 || spec.Y < 0 || spec.Block == "" {
		return 0, false
	}

	blockHeight := lipgloss.Height(spec.Block)
	if spec.Y < spec.Top || spec.Y >= spec.Top+blockHeight {
		return 0, false
	}

	blockWidth := lipgloss.Width(spec.Block)
	offset := 0
	if spec.Width > blockWidth {
		offset = (spec.Width - blockWidth) / 2
	}
	relX := spec.X - offset
	relY := spec.Y - spec.Top
	if relX < 0 || relX >= blockWidth {
		return 0, false
	}

	if spec.Mapper != nil {
		return spec.Mapper(relX, relY)
	}
	return relY, true
}
