package console

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-worm/internal/core"
)

func TestFrameSleep(t *testing.T) {
	budget := 33 * time.Millisecond
	tests := []struct {
		name     string
		elapsed  time.Duration
		expected time.Duration
	}{
		{"idle frame", 0, budget},
		{"partial frame", 13 * time.Millisecond, 20 * time.Millisecond},
		{"exact budget", budget, 0},
		{"overrun", 50 * time.Millisecond, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FrameSleep(budget, tt.elapsed)
			if got != tt.expected {
				t.Errorf("FrameSleep() = %v, expected %v", got, tt.expected)
			}
			if got < 0 {
				t.Errorf("FrameSleep() = %v, must not be negative", got)
			}
		})
	}
}

func TestWriterApply(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	f := core.Frame{Clear: true}
	f.Add(core.Pos(2, 3), "a", core.ColorDefault)
	f.Add(core.Pos(3, 3), "b", core.ColorDefault)
	f.Add(core.Pos(5, 3), "c", core.ColorDefault)
	if err := w.Apply(f); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, ansi.EraseEntireScreen) {
		t.Error("Apply() with Clear should erase the screen")
	}
	expected := ansi.CursorPosition(2, 3) + "ab" + ansi.CursorPosition(5, 3) + "c"
	if !strings.HasSuffix(out, expected) {
		t.Errorf("Apply() = %q, expected suffix %q", out, expected)
	}
}

func TestWriterApplyWideGlyph(t *testing.T) {
	tests := []struct {
		name     string
		next     core.Position
		expected string
	}{
		{"after wide glyph", core.Pos(4, 1), ansi.CursorPosition(2, 1) + "🍎a"},
		{"inside wide glyph", core.Pos(3, 1), ansi.CursorPosition(2, 1) + "🍎" + ansi.CursorPosition(3, 1) + "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			w := NewWriter(&buf)

			var f core.Frame
			f.Add(core.Pos(2, 1), "🍎", core.ColorDefault)
			f.Add(tt.next, "a", core.ColorDefault)
			if err := w.Apply(f); err != nil {
				t.Fatalf("Apply() error = %v", err)
			}
			if got := buf.String(); got != tt.expected {
				t.Errorf("Apply() = %q, expected %q", got, tt.expected)
			}
		})
	}
}

func TestWriterApplyEmpty(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	if err := w.Apply(core.Frame{}); err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Apply(empty) wrote %q", buf.String())
	}
}
