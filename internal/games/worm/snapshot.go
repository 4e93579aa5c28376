package worm

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// Snapshot is an immutable copy of the game state, handed to the renderer
// and used by tests to verify behavior.
type Snapshot struct {
	Tick       uint64
	Episode    int
	Status     Status
	Board      Board
	Direction  core.Direction
	Segments   []core.Position // Head first
	OldTail    core.Position
	HasOldTail bool
	Fruits     []core.Position
	Eaten      int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	oldTail, hasOldTail := g.worm.OldTail()
	return Snapshot{
		Tick:       g.tick,
		Episode:    g.episode,
		Status:     g.status,
		Board:      g.board,
		Direction:  g.worm.Direction(),
		Segments:   g.worm.Segments(),
		OldTail:    oldTail,
		HasOldTail: hasOldTail,
		Fruits:     g.fruits.Positions(),
		Eaten:      g.eaten,
	}
}

// Length returns the worm length.
func (s Snapshot) Length() int {
	return len(s.Segments)
}

// Head returns the head position.
func (s Snapshot) Head() core.Position {
	return s.Segments[0]
}

// DebugState returns a string representation of the snapshot.
func (s Snapshot) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, Episode: %d, Status: %s\n", s.Tick, s.Episode, s.Status))
	b.WriteString(fmt.Sprintf("Worm len: %d, Direction: %s, Eaten: %d\n", s.Length(), s.Direction, s.Eaten))
	if len(s.Segments) > 0 {
		b.WriteString(fmt.Sprintf("Head: (%d, %d), Fruit: %v\n", s.Head().Col, s.Head().Row, s.Fruits))
	}
	return b.String()
}
