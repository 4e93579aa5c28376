package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-worm/internal/games/worm"
)

//go:embed defaults/worm.yaml
var defaultWormYAML []byte

// DefaultWormConfig returns the default worm configuration.
func DefaultWormConfig() WormConfig {
	return WormConfig{
		Game: GameConfig{
			FruitCount: 5,
			WormLength: 4,
			Stats:      false,
			Placement:  worm.PlacementScan,
		},
		Timing: TimingConfig{
			FPS:   30,
			Speed: "",
			Seed:  0,
		},
		Keys: DefaultKeys(),
		Glyphs: GlyphConfig{
			Head:  "◉",
			Body:  "●",
			Fruit: "◆",
			Erase: " ",
			Border: BorderConfig{
				Horizontal:  "─",
				Vertical:    "│",
				TopLeft:     "╭",
				TopRight:    "╮",
				BottomLeft:  "╰",
				BottomRight: "╯",
			},
		},
		Colors: ColorConfig{
			Head:   "bright_magenta",
			Body:   "magenta",
			Fruit:  "green",
			Border: "default",
			HUD:    "gray",
			Won:    "yellow",
			Lost:   "bright_white",
		},
	}
}

// DefaultKeys returns the default WASD/arrow key bindings.
func DefaultKeys() KeysConfig {
	return KeysConfig{
		Up:    []string{"w", "up"},
		Down:  []string{"s", "down"},
		Left:  []string{"a", "left"},
		Right: []string{"d", "right"},
		Pause: []string{"p"},
		Retry: []string{"r"},
		Quit:  []string{"q", "ctrl+c"},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultWormYAML
}
