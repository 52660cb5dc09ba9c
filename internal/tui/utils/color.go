package utils

import (
	"math"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

type number interface {
	~int | ~float64
}

// Clamp pins x into [lo, hi].
func Clamp[T number](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// BlendHex mixes two hex colors in HCL space, t is clamped to [0, 1]. A color
// that fails to parse is treated as black.
func BlendHex(a, b string, t float64) string {
	c1, err := colorful.Hex(a)
	if err != nil {
		c1 = colorful.Color{}
	}
	c2, err := colorful.Hex(b)
	if err != nil {
		c2 = colorful.Color{}
	}
	return c1.BlendHcl(c2, Clamp(t, 0, 1)).Hex()
}

// HexStops parses a list of hex colors, optionally reversed, for BlendStops.
func HexStops(hexes []string, reverse bool) []colorful.Color {
	stops := make([]colorful.Color, len(hexes))
	for i := range hexes {
		hex := hexes[i]
		if reverse {
			hex = hexes[len(hexes)-1-i]
		}
		c, err := colorful.Hex(hex)
		if err != nil {
			c = colorful.Color{}
		}
		stops[i] = c
	}
	return stops
}

// BlendStops walks a multi-stop gradient at position t.
func BlendStops(stops []colorful.Color, t float64) colorful.Color {
	if len(stops) == 0 {
		return colorful.Color{}
	}
	if len(stops) == 1 {
		return stops[0]
	}
	t = Clamp(t, 0, 1)
	pos := t * float64(len(stops)-1)
	idx := int(pos)
	if idx >= len(stops)-1 {
		return stops[len(stops)-1]
	}
	return stops[idx].BlendHcl(stops[idx+1], pos-float64(idx))
}

// Wave maps an animation frame onto [0, 1] along a sine, used for pulsing colors.
func Wave(frame int, speed float64) float64 {
	return (math.Sin(float64(frame)*speed) + 1) / 2
}

// GradientText colors each rune of text along start -> end on top of base.
func GradientText(text, startHex, endHex string, base lipgloss.Style) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var parts []string
	steps := len(runes)
	for i, r := range runes {
		t := 0.0
		if steps > 1 {
			t = float64(i) / float64(steps-1)
		}
		col := BlendHex(startHex, endHex, t)
		parts = append(parts, base.Foreground(lipgloss.Color(col)).Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Left, parts...)
}
