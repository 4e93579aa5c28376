package worm

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-worm/internal/core"
)

func testBoard(t *testing.T, w, h int) Board {
	t.Helper()
	b, err := NewBoard(w, h, DefaultBorder())
	if err != nil {
		t.Fatalf("NewBoard(%d, %d) failed: %v", w, h, err)
	}
	return b
}

func placers() map[string]Placer {
	return map[string]Placer{
		PlacementScan:      ScanPlacer{},
		PlacementRejection: RejectionPlacer{},
	}
}

func TestPlaceStaysInsideAndFree(t *testing.T) {
	b := testBoard(t, 10, 6)
	occupied := make(OccupiedSet)
	for col := 2; col <= 9; col++ {
		occupied.Add(core.Pos(col, 4))
	}

	for name, p := range placers() {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(7))
			for round := 0; round < 50; round++ {
				got, err := p.Place(b, occupied, 12, rng)
				if err != nil {
					t.Fatalf("Place() failed: %v", err)
				}
				if len(got) != 12 {
					t.Fatalf("Place() returned %d positions, expected 12", len(got))
				}
				seen := make(OccupiedSet)
				for _, pos := range got {
					if !b.Contains(pos) {
						t.Errorf("position %v outside interior", pos)
					}
					if occupied.Has(pos) {
						t.Errorf("position %v is occupied", pos)
					}
					if seen.Has(pos) {
						t.Errorf("position %v placed twice", pos)
					}
					seen.Add(pos)
				}
			}
		})
	}
}

func TestPlaceBoardFull(t *testing.T) {
	b := testBoard(t, 3, 2)
	occupied := make(OccupiedSet)
	occupied.Add(core.Pos(2, 2))
	occupied.Add(core.Pos(3, 2))
	occupied.Add(core.Pos(4, 2))
	occupied.Add(core.Pos(2, 3))

	for name, p := range placers() {
		t.Run(name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			_, err := p.Place(b, occupied, 3, rng)
			if !errors.Is(err, ErrBoardFull) {
				t.Errorf("Place() error = %v, expected ErrBoardFull", err)
			}

			// Exactly as many fruit as free cells fills the board.
			got, err := p.Place(b, occupied, 2, rng)
			if err != nil {
				t.Fatalf("Place() failed: %v", err)
			}
			if len(got) != 2 {
				t.Errorf("Place() returned %d positions, expected 2", len(got))
			}
		})
	}
}

func TestPlaceIgnoresOccupiedOutsideInterior(t *testing.T) {
	b := testBoard(t, 2, 1)
	occupied := make(OccupiedSet)
	occupied.Add(core.Pos(1, 2)) // border cell, e.g. a dead worm's head

	got, err := ScanPlacer{}.Place(b, occupied, 2, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("Place() failed: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("Place() returned %d positions, expected 2", len(got))
	}
}

func TestPlaceZero(t *testing.T) {
	b := testBoard(t, 1, 1)
	occupied := make(OccupiedSet)
	occupied.Add(core.Pos(2, 2))

	for name, p := range placers() {
		got, err := p.Place(b, occupied, 0, rand.New(rand.NewSource(1)))
		if err != nil || len(got) != 0 {
			t.Errorf("%s: Place(0) = %v, %v, expected nothing", name, got, err)
		}
	}
}

func TestScanPlacerIsRoughlyUniform(t *testing.T) {
	b := testBoard(t, 4, 1)
	rng := rand.New(rand.NewSource(42))
	counts := make(map[core.Position]int)

	const rounds = 8000
	for i := 0; i < rounds; i++ {
		got, err := ScanPlacer{}.Place(b, make(OccupiedSet), 1, rng)
		if err != nil {
			t.Fatalf("Place() failed: %v", err)
		}
		counts[got[0]]++
	}

	for col := 2; col <= 5; col++ {
		n := counts[core.Pos(col, 2)]
		if n < rounds/4-300 || n > rounds/4+300 {
			t.Errorf("column %d chosen %d times, expected about %d", col, n, rounds/4)
		}
	}
}

func TestPlacerByName(t *testing.T) {
	if p, err := PlacerByName("scan"); err != nil || p != (ScanPlacer{}) {
		t.Errorf("PlacerByName(scan) = %v, %v", p, err)
	}
	if p, err := PlacerByName("Rejection"); err != nil || p != (RejectionPlacer{}) {
		t.Errorf("PlacerByName(Rejection) = %v, %v", p, err)
	}
	if _, err := PlacerByName("spiral"); err == nil {
		t.Error("PlacerByName(spiral) should fail")
	}
}

func TestFruitFieldRelocate(t *testing.T) {
	f := NewFruitField([]core.Position{core.Pos(2, 2), core.Pos(3, 3)})
	f.Relocate(1, core.Pos(4, 4))

	if f.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", f.Len())
	}
	if f.At(1) != core.Pos(4, 4) {
		t.Errorf("At(1) = %v, expected (4, 4)", f.At(1))
	}

	// Positions returns a copy.
	ps := f.Positions()
	ps[0] = core.Pos(9, 9)
	if f.At(0) != core.Pos(2, 2) {
		t.Error("Positions() should not alias the field")
	}
}

func TestBoard(t *testing.T) {
	if _, err := NewBoard(0, 5, DefaultBorder()); !errors.Is(err, ErrBoardTooSmall) {
		t.Errorf("NewBoard(0, 5) error = %v, expected ErrBoardTooSmall", err)
	}
	if _, err := BoardFromTerminal(2, 10, DefaultBorder()); !errors.Is(err, ErrBoardTooSmall) {
		t.Errorf("BoardFromTerminal(2, 10) error = %v, expected ErrBoardTooSmall", err)
	}

	b, err := BoardFromTerminal(80, 24, DefaultBorder())
	if err != nil {
		t.Fatalf("BoardFromTerminal failed: %v", err)
	}
	if b.Width() != 78 || b.Height() != 22 || b.Cells() != 78*22 {
		t.Errorf("board = %dx%d (%d cells)", b.Width(), b.Height(), b.Cells())
	}
	if !b.Contains(core.Pos(2, 2)) || !b.Contains(core.Pos(79, 23)) {
		t.Error("interior corners should be contained")
	}
	if b.Contains(core.Pos(1, 2)) || b.Contains(core.Pos(80, 2)) || b.Contains(core.Pos(2, 24)) {
		t.Error("border cells should not be contained")
	}
	if start := b.StartPosition(4); start != core.Pos(5, 12) {
		t.Errorf("StartPosition(4) = %v, expected (5, 12)", start)
	}
	if start := b.StartPosition(10); start != core.Pos(11, 12) {
		t.Errorf("StartPosition(10) = %v, expected (11, 12)", start)
	}
}
