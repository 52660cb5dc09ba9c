package fretboard

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"
)

func newTestBoard(cell int) *Board {
	return NewBoard(cell, rand.NewPCG(1, 2))
}

func emphasizedCount(b *Board) int {
	n := 0
	for _, m := range b.Markers() {
		if m.State == Emphasized {
			n++
		}
	}
	return n
}

func TestPlotCountsAndPositions(t *testing.T) {
	for idx := range Count() {
		p, err := Get(idx)
		if err != nil {
			t.Fatalf("Get(%d): %v", idx, err)
		}
		b := newTestBoard(20)
		b.Plot(p)
		if b.Len() != p.NoteCount() {
			t.Fatalf("pattern %d: got %d markers, want %d", idx, b.Len(), p.NoteCount())
		}
		for _, m := range b.Markers() {
			if m.Rect.X0 != m.Fret*20 || m.Rect.Y0 != m.String*20 {
				t.Errorf("pattern %d: marker %+v placed at (%d,%d)", idx, m, m.Rect.X0, m.Rect.Y0)
			}
			if m.State != Normal {
				t.Errorf("pattern %d: new marker is %v", idx, m.State)
			}
		}
	}
}

func TestPlotScenario(t *testing.T) {
	p := Pattern{{0, 3}, {1, 3}, {0, 2}, {0, 2}, {1, 3}, {1, 3}}
	b := newTestBoard(20)
	b.Plot(p)
	if b.Len() != 12 {
		t.Fatalf("got %d markers, want 12", b.Len())
	}

	// string-major, frets in listed order
	markers := b.Markers()
	m := markers[4]
	if m.String != 2 || m.Fret != 0 {
		t.Fatalf("marker 4 is string %d fret %d", m.String, m.Fret)
	}
	want := Rect{X0: 0, Y0: 40, X1: 20, Y1: 60}
	if m.Rect != want {
		t.Errorf("rect = %+v, want %+v", m.Rect, want)
	}
}

func TestClearResetsState(t *testing.T) {
	tests := []struct {
		name string
		prep func(t *testing.T, b *Board)
	}{
		{"empty", func(t *testing.T, b *Board) {}},
		{"plotted", func(t *testing.T, b *Board) { b.Plot(mustGet(t, 0)) }},
		{"emphasized", func(t *testing.T, b *Board) {
			b.Plot(mustGet(t, 1))
			if err := b.Emphasize(3); err != nil {
				t.Fatal(err)
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBoard(20)
			tt.prep(t, b)
			b.Clear()
			if b.Len() != 0 {
				t.Errorf("len = %d after Clear", b.Len())
			}
			if _, ok := b.Emphasized(); ok {
				t.Error("emphasis survived Clear")
			}
			if b.EmphasizedIndex() != NoEmphasis {
				t.Errorf("index = %d after Clear", b.EmphasizedIndex())
			}
		})
	}
}

func TestSwitchPattern(t *testing.T) {
	a := Pattern{{0, 3}, {1, 3}, {0, 2}, {0, 2}, {1, 3}, {1, 3}}
	bp := Pattern{{0, 3}, {1, 3}, {0, 2}, {0, 2, 4}, {1, 3}, {1, 3}}
	b := newTestBoard(20)
	b.Plot(a)
	if err := b.ChooseAndEmphasizeRandom(); err != nil {
		t.Fatal(err)
	}
	b.SetPattern(bp)
	if b.Len() != 13 {
		t.Fatalf("got %d markers, want 13", b.Len())
	}
	if emphasizedCount(b) != 0 {
		t.Error("marker from previous pattern still emphasized")
	}
}

func TestEmphasizeIdempotent(t *testing.T) {
	b := newTestBoard(20)
	b.Plot(mustGet(t, 2))
	for range 2 {
		if err := b.Emphasize(5); err != nil {
			t.Fatal(err)
		}
	}
	if n := emphasizedCount(b); n != 1 {
		t.Fatalf("%d markers emphasized", n)
	}
	m, ok := b.Emphasized()
	if !ok || m != b.Markers()[5] {
		t.Errorf("emphasized = %+v, %v", m, ok)
	}
}

func TestEmphasizeMovesHighlight(t *testing.T) {
	b := newTestBoard(20)
	b.Plot(mustGet(t, 0))
	_ = b.Emphasize(0)
	_ = b.Emphasize(7)
	markers := b.Markers()
	if markers[0].State != Normal || markers[7].State != Emphasized {
		t.Errorf("states = %v, %v", markers[0].State, markers[7].State)
	}
}

func TestEmphasizeNotMember(t *testing.T) {
	b := newTestBoard(20)
	b.Plot(mustGet(t, 0))
	for _, i := range []int{-1, b.Len(), 100} {
		if err := b.Emphasize(i); !errors.Is(err, ErrNotMember) {
			t.Errorf("Emphasize(%d) = %v", i, err)
		}
	}
	if emphasizedCount(b) != 0 {
		t.Error("failed Emphasize changed state")
	}
}

func TestChooseRandomEmpty(t *testing.T) {
	b := newTestBoard(20)
	if _, err := b.ChooseRandom(); !errors.Is(err, ErrEmptySet) {
		t.Errorf("ChooseRandom = %v", err)
	}
	if err := b.ChooseAndEmphasizeRandom(); !errors.Is(err, ErrEmptySet) {
		t.Errorf("ChooseAndEmphasizeRandom = %v", err)
	}
}

func TestChooseRandomCoversAll(t *testing.T) {
	b := newTestBoard(20)
	b.Plot(mustGet(t, 0))
	seen := make(map[int]bool)
	for range 2000 {
		i, err := b.ChooseRandom()
		if err != nil {
			t.Fatal(err)
		}
		seen[i] = true
	}
	if len(seen) != b.Len() {
		t.Errorf("saw %d of %d markers", len(seen), b.Len())
	}
}

func TestChooseAndEmphasizeNeverRepeats(t *testing.T) {
	tests := []Pattern{
		mustGet(t, 3),
		{{0, 1}},
		{{0}, {}, {}, {}, {}, {2}},
	}
	for _, p := range tests {
		b := newTestBoard(20)
		b.Plot(p)
		prev := NoEmphasis
		for range 500 {
			if err := b.ChooseAndEmphasizeRandom(); err != nil {
				t.Fatal(err)
			}
			cur := b.EmphasizedIndex()
			if cur == prev {
				t.Fatalf("marker %d emphasized twice in a row", cur)
			}
			if emphasizedCount(b) != 1 {
				t.Fatal("more than one marker emphasized")
			}
			prev = cur
		}
	}
}

func TestChooseAndEmphasizeSingleton(t *testing.T) {
	b := newTestBoard(20)
	b.Plot(Pattern{{}, {}, {4}})
	for range 3 {
		if err := b.ChooseAndEmphasizeRandom(); err != nil {
			t.Fatal(err)
		}
	}
	m, ok := b.Emphasized()
	if !ok || m.String != 2 || m.Fret != 4 {
		t.Errorf("emphasized = %+v, %v", m, ok)
	}
}

func TestGetOutOfRange(t *testing.T) {
	for _, i := range []int{-1, Count()} {
		if _, err := Get(i); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Get(%d) = %v", i, err)
		}
	}
}

func TestSpan(t *testing.T) {
	lo, hi := mustGet(t, 2).Span()
	if lo != 0 || hi != 4 {
		t.Errorf("span = %d..%d", lo, hi)
	}
	lo, hi = Pattern{}.Span()
	if lo != 0 || hi != 0 {
		t.Errorf("empty span = %d..%d", lo, hi)
	}
}

func TestRenderDrawsEveryMarker(t *testing.T) {
	b := newTestBoard(20)
	b.Plot(mustGet(t, 0))
	_ = b.Emphasize(0)
	out := Render(b, 3)
	if got := strings.Count(out, "●"); got != b.Len() {
		t.Errorf("rendered %d dots, want %d", got, b.Len())
	}
	if lines := strings.Count(out, "\n") + 1; lines != StringCount+1 {
		t.Errorf("rendered %d lines", lines)
	}
}

func mustGet(t *testing.T, i int) Pattern {
	t.Helper()
	p, err := Get(i)
	if err != nil {
		t.Fatal(err)
	}
	return p
}
