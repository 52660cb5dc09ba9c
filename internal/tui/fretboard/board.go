package fretboard

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"
)

var (
	// ErrEmptySet is returned when a random marker is requested before anything was plotted.
	ErrEmptySet = errors.New("no markers plotted")
	// ErrNotMember is returned when emphasizing an index outside the current marker set.
	ErrNotMember = errors.New("marker not on the board")
)

// NoEmphasis is the emphasized index while no marker is highlighted.
const NoEmphasis = -1

type MarkerState int

const (
	Normal MarkerState = iota
	Emphasized
)

func (s MarkerState) String() string {
	if s == Emphasized {
		return "emphasized"
	}
	return "normal"
}

// Rect is a pixel rectangle, (X0, Y0) inclusive and (X1, Y1) exclusive.
type Rect struct {
	X0, Y0 int
	X1, Y1 int
}

type Marker struct {
	String int // row, 0 is the first string plotted
	Fret   int // fret offset inside the box
	Rect   Rect
	State  MarkerState
}

// Board is the marker set for the pattern on screen. It is not safe for
// concurrent use, the tea program only touches it from Update.
type Board struct {
	cellSize   int
	markers    []Marker
	emphasized int // index into markers or NoEmphasis
	rng        *rand.Rand
}

// NewBoard returns an empty board. A nil src seeds a PCG source from the clock.
func NewBoard(cellSize int, src rand.Source) *Board {
	if src == nil {
		now := uint64(time.Now().UnixNano())
		src = rand.NewPCG(now, now>>1|1)
	}
	return &Board{
		cellSize:   cellSize,
		emphasized: NoEmphasis,
		rng:        rand.New(src),
	}
}

func (b *Board) CellSize() int { return b.cellSize }

func (b *Board) Len() int { return len(b.markers) }

// Markers returns a copy of the marker set in plot order.
func (b *Board) Markers() []Marker {
	return append([]Marker(nil), b.markers...)
}

// Emphasized returns the highlighted marker, ok is false if none is.
func (b *Board) Emphasized() (Marker, bool) {
	if b.emphasized == NoEmphasis {
		return Marker{}, false
	}
	return b.markers[b.emphasized], true
}

// EmphasizedIndex returns the index of the highlighted marker or NoEmphasis.
func (b *Board) EmphasizedIndex() int { return b.emphasized }

// Plot appends one normal marker per fret offset of p, walking strings first
// and then frets in the order they are listed. Markers from an earlier Plot
// are kept, call Clear (or SetPattern) when switching patterns.
func (b *Board) Plot(p Pattern) {
	for str, frets := range p {
		for _, fret := range frets {
			b.markers = append(b.markers, Marker{
				String: str,
				Fret:   fret,
				Rect:   b.cellRect(fret, str),
				State:  Normal,
			})
		}
	}
}

func (b *Board) cellRect(fret, str int) Rect {
	c := b.cellSize
	return Rect{
		X0: fret * c,
		Y0: str * c,
		X1: (fret + 1) * c,
		Y1: (str + 1) * c,
	}
}

// Clear drops every marker and the emphasis with them.
func (b *Board) Clear() {
	b.markers = b.markers[:0]
	b.emphasized = NoEmphasis
}

// SetPattern replaces whatever is on the board with p.
func (b *Board) SetPattern(p Pattern) {
	b.Clear()
	b.Plot(p)
}

// Emphasize highlights marker i and returns the previous one to normal.
func (b *Board) Emphasize(i int) error {
	if i < 0 || i >= len(b.markers) {
		return fmt.Errorf("emphasize %d of %d: %w", i, len(b.markers), ErrNotMember)
	}
	if b.emphasized != NoEmphasis {
		b.markers[b.emphasized].State = Normal
	}
	b.markers[i].State = Emphasized
	b.emphasized = i
	return nil
}

// ChooseRandom returns a uniformly random marker index.
func (b *Board) ChooseRandom() (int, error) {
	if len(b.markers) == 0 {
		return 0, ErrEmptySet
	}
	return b.rng.IntN(len(b.markers)), nil
}

// ChooseAndEmphasizeRandom moves the emphasis to a random marker other than
// the current one. With a single marker that marker is emphasized again.
func (b *Board) ChooseAndEmphasizeRandom() error {
	n := len(b.markers)
	switch {
	case n == 0:
		return fmt.Errorf("choose marker: %w", ErrEmptySet)
	case n == 1 || b.emphasized == NoEmphasis:
		i, err := b.ChooseRandom()
		if err != nil {
			return err
		}
		return b.Emphasize(i)
	}

	// draw from the n-1 other markers and step over the current one,
	// uniform over the rest and always terminates
	i := b.rng.IntN(n - 1)
	if i >= b.emphasized {
		i++
	}
	return b.Emphasize(i)
}
