package worm

import "github.com/vovakirdan/tui-worm/internal/core"

// Worm is the player's chain of segments. The head is at index 0.
type Worm struct {
	segments  []core.Position
	direction core.Direction

	// Cell vacated by the last MoveForward, kept for one frame so the
	// renderer can erase it.
	oldTail    core.Position
	hasOldTail bool
}

// NewWorm creates a straight horizontal worm of the given length with its
// head at head and its body trailing to the left, moving right.
func NewWorm(head core.Position, length int) *Worm {
	if length < 1 {
		length = 1
	}
	segments := make([]core.Position, length)
	for i := range segments {
		segments[i] = core.Pos(head.Col-i, head.Row)
	}
	return &Worm{
		segments:  segments,
		direction: core.DirRight,
	}
}

// Len returns the number of segments.
func (w *Worm) Len() int {
	return len(w.segments)
}

// Head returns the head position.
func (w *Worm) Head() core.Position {
	return w.segments[0]
}

// Tail returns the last segment position.
func (w *Worm) Tail() core.Position {
	return w.segments[len(w.segments)-1]
}

// Direction returns the current movement direction.
func (w *Worm) Direction() core.Direction {
	return w.direction
}

// Segments returns a copy of the segment positions, head first.
func (w *Worm) Segments() []core.Position {
	out := make([]core.Position, len(w.segments))
	copy(out, w.segments)
	return out
}

// OldTail returns the cell vacated by the last move, if it still needs erasing.
func (w *Worm) OldTail() (core.Position, bool) {
	return w.oldTail, w.hasOldTail
}

// MoveForward shifts every segment onto its predecessor's cell and advances
// the head one unit. Length is unchanged. Bounds and collisions are the
// caller's concern.
func (w *Worm) MoveForward() {
	w.oldTail = w.Tail()
	w.hasOldTail = true

	copy(w.segments[1:], w.segments[:len(w.segments)-1])
	w.segments[0] = w.segments[0].Step(w.direction)
}

// Grow appends a segment one unit behind the tail along its trailing axis.
// After a move that is the cell the tail just left, which then no longer
// needs erasing. Call it before the next MoveForward.
func (w *Worm) Grow() {
	tail := w.Tail()

	var next core.Position
	switch {
	case w.hasOldTail:
		next = w.oldTail
	case len(w.segments) >= 2:
		prev := w.segments[len(w.segments)-2]
		next = core.Pos(2*tail.Col-prev.Col, 2*tail.Row-prev.Row)
	default:
		next = tail.Step(w.direction.Opposite())
	}

	w.segments = append(w.segments, next)
	w.hasOldTail = false
}

// TrySetDirection turns the worm if d is a 90 degree turn.
// Reversals and repeats are ignored. Returns whether the turn was taken.
func (w *Worm) TrySetDirection(d core.Direction) bool {
	if !w.direction.Perpendicular(d) {
		return false
	}
	w.direction = d
	return true
}

// Collides reports whether the head shares a cell with another segment.
func (w *Worm) Collides() bool {
	head := w.segments[0]
	for _, seg := range w.segments[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
