package worm

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// ErrBoardFull is returned when fewer free cells remain than fruit to place.
var ErrBoardFull = errors.New("worm: no free cells left")

// OccupiedSet is the union of worm segments and fruit positions.
type OccupiedSet map[core.Position]struct{}

// Has reports whether p is occupied.
func (s OccupiedSet) Has(p core.Position) bool {
	_, ok := s[p]
	return ok
}

// Add marks p as occupied.
func (s OccupiedSet) Add(p core.Position) {
	s[p] = struct{}{}
}

// FruitField is the set of fruit on the board. Its size is fixed for an
// episode: eaten fruit is relocated, not removed.
type FruitField struct {
	positions []core.Position
}

// NewFruitField creates a field holding the given positions.
func NewFruitField(positions []core.Position) *FruitField {
	p := make([]core.Position, len(positions))
	copy(p, positions)
	return &FruitField{positions: p}
}

// Len returns the number of fruit.
func (f *FruitField) Len() int {
	return len(f.positions)
}

// At returns the position of fruit i.
func (f *FruitField) At(i int) core.Position {
	return f.positions[i]
}

// Relocate moves fruit i to p.
func (f *FruitField) Relocate(i int, p core.Position) {
	f.positions[i] = p
}

// Positions returns a copy of all fruit positions.
func (f *FruitField) Positions() []core.Position {
	out := make([]core.Position, len(f.positions))
	copy(out, f.positions)
	return out
}

// Placer chooses n distinct free interior cells.
// Implementations return ErrBoardFull when fewer than n cells are free.
type Placer interface {
	Place(b Board, occupied OccupiedSet, n int, rng *rand.Rand) ([]core.Position, error)
}

// Placement strategy names accepted by PlacerByName.
const (
	PlacementScan      = "scan"
	PlacementRejection = "rejection"
)

// PlacerByName returns the placement strategy for a config name.
func PlacerByName(name string) (Placer, error) {
	switch strings.ToLower(name) {
	case "", PlacementScan:
		return ScanPlacer{}, nil
	case PlacementRejection:
		return RejectionPlacer{}, nil
	default:
		return nil, fmt.Errorf("worm: unknown placement strategy %q", name)
	}
}

// freeCells counts interior cells not in occupied.
func freeCells(b Board, occupied OccupiedSet) int {
	taken := 0
	for p := range occupied {
		if b.Contains(p) {
			taken++
		}
	}
	return b.Cells() - taken
}

// ScanPlacer visits interior cells once in row-major order and picks each
// free cell with probability remaining/free, where free counts the free
// cells not yet visited. Every n-subset of free cells is equally likely and
// exactly n cells are chosen in a single pass.
type ScanPlacer struct{}

// Place implements Placer.
func (ScanPlacer) Place(b Board, occupied OccupiedSet, n int, rng *rand.Rand) ([]core.Position, error) {
	if n <= 0 {
		return nil, nil
	}
	free := freeCells(b, occupied)
	if free < n {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrBoardFull, n, free)
	}

	out := make([]core.Position, 0, n)
	remaining := n
	area := b.Interior()
	for row := area.Y; row < area.Bottom() && remaining > 0; row++ {
		for col := area.X; col < area.Right() && remaining > 0; col++ {
			p := core.Pos(col, row)
			if occupied.Has(p) {
				continue
			}
			if rng.Intn(free) < remaining {
				out = append(out, p)
				remaining--
			}
			free--
		}
	}
	return out, nil
}

// RejectionPlacer draws uniform interior cells until it hits free ones.
// It checks capacity first so it never loops on a full board.
type RejectionPlacer struct{}

// Place implements Placer.
func (RejectionPlacer) Place(b Board, occupied OccupiedSet, n int, rng *rand.Rand) ([]core.Position, error) {
	if n <= 0 {
		return nil, nil
	}
	free := freeCells(b, occupied)
	if free < n {
		return nil, fmt.Errorf("%w: want %d, have %d", ErrBoardFull, n, free)
	}

	area := b.Interior()
	chosen := make(OccupiedSet, n)
	out := make([]core.Position, 0, n)
	for len(out) < n {
		p := core.Pos(area.X+rng.Intn(area.W), area.Y+rng.Intn(area.H))
		if occupied.Has(p) || chosen.Has(p) {
			continue
		}
		chosen.Add(p)
		out = append(out, p)
	}
	return out, nil
}
