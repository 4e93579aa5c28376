// Package render turns game snapshots into cursor-addressed cell writes.
//
// A fresh episode is drawn in full. Every following tick only touches the
// cells that changed: the vacated tail, the worm, relocated fruit and the
// status line on the top border.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm"
)

// HUD is the status line drawn into the top border.
type HUD struct {
	Status  worm.Status
	Length  int
	Eaten   int
	Elapsed time.Duration // Work done in the previous frame
	Slept   time.Duration // Sleep after the previous frame
}

// HUDFor builds the status line values from a snapshot.
func HUDFor(snap worm.Snapshot, elapsed, slept time.Duration) HUD {
	return HUD{
		Status:  snap.Status,
		Length:  snap.Length(),
		Eaten:   snap.Eaten,
		Elapsed: elapsed,
		Slept:   slept,
	}
}

func (h HUD) String() string {
	return fmt.Sprintf(" %s | len %d | fruit %d | %.1fms/%.1fms ",
		h.Status, h.Length, h.Eaten, ms(h.Elapsed), ms(h.Slept))
}

func ms(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

// Renderer produces frames for one board. It holds no per-tick state.
type Renderer struct {
	theme Theme
}

// New creates a renderer with the given theme.
func New(theme Theme) *Renderer {
	return &Renderer{theme: theme}
}

// Episode draws a fresh episode: border, fruit, worm and status line.
func (r *Renderer) Episode(snap worm.Snapshot, hud HUD) core.Frame {
	f := core.Frame{Clear: true}
	r.border(&f, snap.Board)
	for _, p := range snap.Fruits {
		f.Add(p, r.theme.Fruit, r.theme.FruitColor)
	}
	r.worm(&f, snap.Segments)
	r.hud(&f, snap.Board, hud)
	return f
}

// Tick draws the changes of one step. The old tail is erased before the worm
// is drawn, so a head moving into the vacated cell is never blanked.
func (r *Renderer) Tick(snap worm.Snapshot, relocated []core.Position, hud HUD) core.Frame {
	var f core.Frame
	if snap.HasOldTail {
		f.Add(snap.OldTail, r.theme.Erase, core.ColorDefault)
	}
	r.worm(&f, snap.Segments)
	for _, p := range relocated {
		f.Add(p, r.theme.Fruit, r.theme.FruitColor)
	}
	r.hud(&f, snap.Board, hud)
	return f
}

// Status redraws only the status line, used while paused.
func (r *Renderer) Status(board worm.Board, hud HUD) core.Frame {
	var f core.Frame
	r.hud(&f, board, hud)
	return f
}

// Message draws the end-of-episode screen with the given key hints.
func (r *Renderer) Message(snap worm.Snapshot, help string) core.Frame {
	icon, text, color := "✗", "You Died...", r.theme.LostColor
	if snap.Status == worm.StatusWon {
		icon, text, color = "★", "You Won!!", r.theme.WonColor
	}

	f := core.Frame{Clear: true}
	r.border(&f, snap.Board)
	r.centered(&f, snap.Board, []line{
		{fmt.Sprintf("%s %s %s", icon, text, icon), color},
		{fmt.Sprintf("length %d, fruit eaten %d", snap.Length(), snap.Eaten), r.theme.HUDColor},
		{"", core.ColorDefault},
		{ansi.Strip(help), r.theme.HUDColor},
	})
	return f
}

// Stats draws a pre-rendered statistics table in the middle of the board.
func (r *Renderer) Stats(board worm.Board, table, help string) core.Frame {
	f := core.Frame{Clear: true}
	r.border(&f, board)

	var lines []line
	for _, s := range strings.Split(strings.TrimRight(ansi.Strip(table), "\n"), "\n") {
		lines = append(lines, line{s, r.theme.HUDColor})
	}
	if help != "" {
		lines = append(lines, line{"", core.ColorDefault}, line{ansi.Strip(help), r.theme.HUDColor})
	}
	r.centered(&f, board, lines)
	return f
}

func (r *Renderer) worm(f *core.Frame, segments []core.Position) {
	for i := len(segments) - 1; i > 0; i-- {
		f.Add(segments[i], r.theme.Body, r.theme.BodyColor)
	}
	if len(segments) > 0 {
		f.Add(segments[0], r.theme.Head, r.theme.HeadColor)
	}
}

func (r *Renderer) border(f *core.Frame, board worm.Board) {
	b := board.Border()
	outer := board.Outer()
	left, top := outer.X, outer.Y
	right, bottom := outer.Right()-1, outer.Bottom()-1
	c := r.theme.BorderColor

	f.Add(core.Pos(left, top), b.TopLeft, c)
	f.Add(core.Pos(right, top), b.TopRight, c)
	f.Add(core.Pos(left, bottom), b.BottomLeft, c)
	f.Add(core.Pos(right, bottom), b.BottomRight, c)

	for col := left + 1; col < right; col++ {
		f.Add(core.Pos(col, top), b.Horizontal, c)
		f.Add(core.Pos(col, bottom), b.Horizontal, c)
	}
	for row := top + 1; row < bottom; row++ {
		f.Add(core.Pos(left, row), b.Vertical, c)
		f.Add(core.Pos(right, row), b.Vertical, c)
	}
}

// hud writes the status line over the top border, padding the rest of the
// row with border glyphs so a shorter line leaves no residue.
func (r *Renderer) hud(f *core.Frame, board worm.Board, h HUD) {
	interior := board.Interior()
	text := []rune(h.String())
	for i := range interior.W {
		p := core.Pos(interior.X+i, interior.Y-1)
		if i < len(text) {
			f.Add(p, string(text[i]), r.theme.HUDColor)
			continue
		}
		f.Add(p, board.Border().Horizontal, r.theme.BorderColor)
	}
}

type line struct {
	text  string
	color core.Color
}

// centered writes lines in the middle of the interior, clipping anything
// that would spill onto the border.
func (r *Renderer) centered(f *core.Frame, board worm.Board, lines []line) {
	interior := board.Interior()
	top := interior.Y + max(0, (interior.H-len(lines))/2)

	for i, l := range lines {
		row := top + i
		if row >= interior.Bottom() {
			return
		}
		col := interior.X + max(0, (interior.W-lipgloss.Width(l.text))/2)
		for _, ch := range l.text {
			if col >= interior.Right() {
				break
			}
			f.Add(core.Pos(col, row), string(ch), l.color)
			col++
		}
	}
}
