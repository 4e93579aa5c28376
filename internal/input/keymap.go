package input

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
)

// KeyMap translates decoded keys to game actions.
// It centralizes key bindings and makes them testable.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Pause key.Binding
	Retry key.Binding
	Quit  key.Binding
}

// DefaultKeyMap returns the default WASD/arrow bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultKeys())
}

// NewKeyMap builds bindings from the configured key lists.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	return KeyMap{
		Up:    binding(cfg.Up, "up"),
		Down:  binding(cfg.Down, "down"),
		Left:  binding(cfg.Left, "left"),
		Right: binding(cfg.Right, "right"),
		Pause: binding(cfg.Pause, "pause"),
		Retry: binding(cfg.Retry, "retry"),
		Quit:  binding(cfg.Quit, "quit"),
	}
}

func binding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(keys[0], desc),
	)
}

// Action maps a key to a game action. Unbound keys map to ActionNone.
// Quit is checked first so it can never be shadowed by a movement binding.
func (km KeyMap) Action(k Key) core.Action {
	switch {
	case key.Matches(k, km.Quit):
		return core.ActionQuit
	case key.Matches(k, km.Up):
		return core.ActionUp
	case key.Matches(k, km.Down):
		return core.ActionDown
	case key.Matches(k, km.Left):
		return core.ActionLeft
	case key.Matches(k, km.Right):
		return core.ActionRight
	case key.Matches(k, km.Pause):
		return core.ActionPause
	case key.Matches(k, km.Retry):
		return core.ActionRestart
	}
	return core.ActionNone
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Left, km.Right, km.Pause, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Up, km.Down, km.Left, km.Right},
		{km.Pause, km.Retry, km.Quit},
	}
}

// EndHelp returns the bindings offered once an episode has ended.
func (km KeyMap) EndHelp() []key.Binding {
	return []key.Binding{km.Quit, km.Retry}
}
