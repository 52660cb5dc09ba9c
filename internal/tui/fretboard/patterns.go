// Package fretboard holds the pentatonic box catalog and the board state that the
// practice screen draws: which (string, fret) cells carry a marker and which one
// is currently emphasized.
package fretboard

import (
	"errors"
	"fmt"
)

// StringCount is the number of strings on the neck, row 0 is the top row drawn.
const StringCount = 6

// ErrOutOfRange is returned when a pattern index is outside the catalog.
var ErrOutOfRange = errors.New("pattern index out of range")

// Pattern lists, per string, the fret offsets (relative to the box start) that
// belong to the box.
type Pattern [StringCount][]int

// catalog is the five pentatonic box shapes, one row per string
var catalog = []Pattern{
	{
		{0, 3},
		{0, 3},
		{0, 2},
		{0, 2},
		{0, 2},
		{0, 3},
	},
	{
		{1, 3},
		{1, 3},
		{0, 2},
		{0, 3},
		{0, 3},
		{1, 3},
	},
	{
		{1, 3},
		{1, 4},
		{0, 3},
		{1, 3},
		{1, 3},
		{1, 3},
	},
	{
		{0, 3},
		{1, 3},
		{0, 2},
		{0, 2},
		{0, 3},
		{0, 3},
	},
	{
		{1, 3},
		{1, 3},
		{0, 3},
		{0, 3},
		{1, 3},
		{1, 3},
	},
}

// Count is the number of patterns a selector may offer, valid indices are [0, Count()).
func Count() int {
	return len(catalog)
}

// Get returns the pattern at index.
func Get(index int) (Pattern, error) {
	if index < 0 || index >= len(catalog) {
		return Pattern{}, fmt.Errorf("get pattern %d of %d: %w", index, len(catalog), ErrOutOfRange)
	}
	return catalog[index], nil
}

// NoteCount is the number of markers Plot will create for p.
func (p Pattern) NoteCount() int {
	n := 0
	for _, frets := range p {
		n += len(frets)
	}
	return n
}

// Span returns the lowest and highest fret offset used by the pattern. An empty
// pattern spans (0, 0).
func (p Pattern) Span() (int, int) {
	lo, hi := 0, 0
	first := true
	for _, frets := range p {
		for _, f := range frets {
			if first {
				lo, hi = f, f
				first = false
				continue
			}
			lo = min(lo, f)
			hi = max(hi, f)
		}
	}
	return lo, hi
}
