package input

import (
	"testing"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
)

func TestDefaultKeyMapAction(t *testing.T) {
	km := DefaultKeyMap()
	tests := []struct {
		key      Key
		expected core.Action
	}{
		{RuneKey('w'), core.ActionUp},
		{CodeKey(KeyUp), core.ActionUp},
		{RuneKey('s'), core.ActionDown},
		{CodeKey(KeyDown), core.ActionDown},
		{RuneKey('a'), core.ActionLeft},
		{CodeKey(KeyLeft), core.ActionLeft},
		{RuneKey('d'), core.ActionRight},
		{CodeKey(KeyRight), core.ActionRight},
		{RuneKey('p'), core.ActionPause},
		{RuneKey('r'), core.ActionRestart},
		{RuneKey('q'), core.ActionQuit},
		{CtrlKey('c'), core.ActionQuit},
		{RuneKey('x'), core.ActionNone},
		{CodeKey(KeyEnter), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			if got := km.Action(tt.key); got != tt.expected {
				t.Errorf("Action(%v) = %v, expected %v", tt.key, got, tt.expected)
			}
		})
	}
}

func TestKeyMapQuitWins(t *testing.T) {
	cfg := config.DefaultKeys()
	cfg.Up = []string{"q"}
	km := NewKeyMap(cfg)
	if got := km.Action(RuneKey('q')); got != core.ActionQuit {
		t.Errorf("Action(q) = %v, expected quit", got)
	}
}

func TestKeyMapUnboundAction(t *testing.T) {
	cfg := config.DefaultKeys()
	cfg.Pause = nil
	km := NewKeyMap(cfg)
	if got := km.Action(RuneKey('p')); got != core.ActionNone {
		t.Errorf("Action(p) = %v, expected none", got)
	}
	if km.Pause.Enabled() {
		t.Error("empty binding should be disabled")
	}
}

func TestKeyMapHelp(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.ShortHelp()); got != 6 {
		t.Errorf("len(ShortHelp()) = %d, expected 6", got)
	}
	if got := km.Quit.Help().Key; got != "q" {
		t.Errorf("Quit help key = %q, expected q", got)
	}
	end := km.EndHelp()
	if len(end) != 2 || end[1].Help().Desc != "retry" {
		t.Errorf("EndHelp() = %v, expected quit and retry", end)
	}
}
