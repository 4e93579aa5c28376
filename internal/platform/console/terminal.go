// Package console drives the worm game on a raw-mode terminal: it owns the
// terminal handle and runs the fixed-rate session loop.
package console

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/x/ansi"
	"golang.org/x/term"
)

// ErrNotTerminal is returned when stdin or stdout is not a terminal.
var ErrNotTerminal = errors.New("console: not a terminal")

// Terminal is a scoped handle on the controlling terminal. Open puts it in
// raw mode on the alternate screen; Close restores it and is safe to call
// more than once, including from a deferred panic handler.
type Terminal struct {
	*Writer

	in    *os.File
	out   *os.File
	state *term.State

	closeOnce sync.Once
	closeErr  error
}

// Open prepares the terminal for drawing.
func Open(in, out *os.File) (*Terminal, error) {
	if !term.IsTerminal(int(in.Fd())) || !term.IsTerminal(int(out.Fd())) {
		return nil, ErrNotTerminal
	}

	state, err := term.MakeRaw(int(in.Fd()))
	if err != nil {
		return nil, fmt.Errorf("console: entering raw mode: %w", err)
	}

	t := &Terminal{
		Writer: NewWriter(out),
		in:     in,
		out:    out,
		state:  state,
	}

	// Alternate screen, no cursor, no wrap so the bottom-right corner never scrolls
	t.WriteString(ansi.SetAltScreenSaveCursorMode)
	t.WriteString(ansi.HideCursor)
	t.WriteString(ansi.ResetAutoWrapMode)
	t.WriteString(ansi.EraseEntireScreen)
	if err := t.Flush(); err != nil {
		//nolint:errcheck // Already failing, restore is best-effort
		term.Restore(int(in.Fd()), state)
		return nil, fmt.Errorf("console: preparing screen: %w", err)
	}
	return t, nil
}

// Size returns the terminal size in cells.
func (t *Terminal) Size() (cols, rows int, err error) {
	cols, rows, err = term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("console: reading terminal size: %w", err)
	}
	return cols, rows, nil
}

// Close flushes pending output and restores the terminal.
func (t *Terminal) Close() error {
	t.closeOnce.Do(func() {
		t.WriteString(ansi.ResetStyle)
		t.WriteString(ansi.ShowCursor)
		t.WriteString(ansi.ResetAltScreenSaveCursorMode)
		t.WriteString(ansi.SetAutoWrapMode)
		flushErr := t.Flush()
		restoreErr := term.Restore(int(t.in.Fd()), t.state)
		t.closeErr = errors.Join(flushErr, restoreErr)
	})
	return t.closeErr
}
