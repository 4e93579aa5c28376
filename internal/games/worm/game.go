// Package worm implements the worm arcade game: a growing chain of segments
// that eats fruit on a bordered board and dies on wall or self collision.
// The package is pure game logic; input decoding, timing and terminal output
// live in the platform layer.
package worm

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-worm/internal/core"
)

// ErrConfigImpossible is returned when the requested worm and fruit cannot fit on the board.
var ErrConfigImpossible = errors.New("worm: configuration does not fit the board")

// Status is the game's state machine position.
type Status int

const (
	StatusPlaying Status = iota
	StatusPaused
	StatusLost
	StatusWon
	StatusShowingStats
	StatusExiting
)

// String returns the status name used in the HUD and logs.
func (s Status) String() string {
	switch s {
	case StatusPlaying:
		return "Playing"
	case StatusPaused:
		return "Paused"
	case StatusLost:
		return "Lost"
	case StatusWon:
		return "Won"
	case StatusShowingStats:
		return "ShowingStats"
	case StatusExiting:
		return "Exiting"
	default:
		return "Unknown"
	}
}

// Ended reports whether the episode is over and waiting for quit or retry.
func (s Status) Ended() bool {
	return s == StatusLost || s == StatusWon
}

// Settings are the startup options consumed by the game.
type Settings struct {
	FruitCount int
	WormLength int
	Stats      bool   // Show the render statistics screen before exiting
	Placer     Placer // Defaults to ScanPlacer
}

// StepResult describes what one tick changed, so the renderer can draw only
// the difference.
type StepResult struct {
	Status         Status
	Changed        bool // Status differs from the previous tick
	EpisodeStarted bool // A fresh worm and fruit field were created
	Moved          bool // The worm advanced this tick
	Ate            bool
	Relocated      []core.Position // New positions of fruit eaten this tick
}

// Game owns the worm, the fruit and the status for one session.
// It is confined to the goroutine running the game loop.
type Game struct {
	board    Board
	settings Settings
	placer   Placer
	rng      *rand.Rand

	worm   *Worm
	fruits *FruitField
	status Status

	tick    uint64
	eaten   int // Fruit eaten in the current episode
	episode int
}

// New validates settings against the board and starts the first episode.
// A worm longer than the interior is wide, or more worm plus fruit than the
// interior holds, is refused with ErrConfigImpossible rather than played.
func New(board Board, settings Settings, rng *rand.Rand) (*Game, error) {
	if settings.WormLength < 1 {
		return nil, fmt.Errorf("worm: worm length must be positive, got %d", settings.WormLength)
	}
	if settings.FruitCount < 0 {
		return nil, fmt.Errorf("worm: fruit count must not be negative, got %d", settings.FruitCount)
	}
	if settings.WormLength > board.Width() {
		return nil, fmt.Errorf("%w: worm length %d exceeds board width %d",
			ErrConfigImpossible, settings.WormLength, board.Width())
	}
	if need := settings.WormLength + settings.FruitCount; need > board.Cells() {
		return nil, fmt.Errorf("%w: %d worm segments and %d fruit need %d cells, board has %d",
			ErrConfigImpossible, settings.WormLength, settings.FruitCount, need, board.Cells())
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	placer := settings.Placer
	if placer == nil {
		placer = ScanPlacer{}
	}

	g := &Game{
		board:    board,
		settings: settings,
		placer:   placer,
		rng:      rng,
	}
	if err := g.startEpisode(); err != nil {
		return nil, err
	}
	return g, nil
}

// startEpisode replaces the worm and fruit field and resumes play.
func (g *Game) startEpisode() error {
	length := g.settings.WormLength
	g.worm = NewWorm(g.board.StartPosition(length), length)
	g.fruits = NewFruitField(nil)

	positions, err := g.placer.Place(g.board, g.occupied(), g.settings.FruitCount, g.rng)
	if err != nil {
		return fmt.Errorf("worm: placing fruit: %w", err)
	}
	g.fruits = NewFruitField(positions)
	g.status = StatusPlaying
	g.eaten = 0
	g.episode++
	return nil
}

// occupied builds the set of cells taken by the worm and the fruit.
func (g *Game) occupied() OccupiedSet {
	set := make(OccupiedSet, g.worm.Len()+g.fruits.Len())
	for _, seg := range g.worm.segments {
		set.Add(seg)
	}
	for _, f := range g.fruits.positions {
		set.Add(f)
	}
	return set
}

// Step advances the state machine by one tick using the latest action.
func (g *Game) Step(action core.Action) StepResult {
	g.tick++
	prev := g.status
	var res StepResult

	switch g.status {
	case StatusPlaying:
		g.stepPlaying(action, &res)

	case StatusPaused:
		switch action {
		case core.ActionPause:
			g.status = StatusPlaying
		case core.ActionQuit:
			g.quit()
		}

	case StatusLost, StatusWon:
		switch action {
		case core.ActionQuit:
			g.quit()
		case core.ActionRestart:
			if err := g.startEpisode(); err != nil {
				// Capacity was validated in New, so only a full board can get here.
				g.status = StatusWon
				break
			}
			res.EpisodeStarted = true
		}

	case StatusShowingStats:
		if action == core.ActionQuit {
			g.status = StatusExiting
		}
	}

	res.Status = g.status
	res.Changed = g.status != prev
	return res
}

// stepPlaying runs one gameplay tick: steer, move, eat, collide.
func (g *Game) stepPlaying(action core.Action, res *StepResult) {
	switch action {
	case core.ActionQuit:
		g.quit()
		return
	case core.ActionPause:
		g.status = StatusPaused
		return
	}
	if dir, ok := action.Direction(); ok {
		g.worm.TrySetDirection(dir)
	}

	g.worm.MoveForward()
	res.Moved = true
	head := g.worm.Head()

	for i := range g.fruits.Len() {
		if g.fruits.At(i) != head {
			continue
		}
		g.worm.Grow()
		g.eaten++
		res.Ate = true

		next, err := g.placer.Place(g.board, g.occupied(), 1, g.rng)
		if err != nil {
			g.status = StatusWon
			return
		}
		g.fruits.Relocate(i, next[0])
		res.Relocated = append(res.Relocated, next[0])
		return
	}

	if !g.board.Contains(head) || g.worm.Collides() {
		g.status = StatusLost
	}
}

// quit leaves the game, via the statistics screen when enabled.
func (g *Game) quit() {
	if g.settings.Stats {
		g.status = StatusShowingStats
		return
	}
	g.status = StatusExiting
}

// Status returns the current status.
func (g *Game) Status() Status {
	return g.status
}

// Board returns the board geometry.
func (g *Game) Board() Board {
	return g.board
}
