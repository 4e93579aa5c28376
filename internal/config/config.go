// Package config provides YAML-based configuration loading and validation
// for the worm game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// WormConfig contains all configuration for the worm game.
type WormConfig struct {
	Game   GameConfig   `yaml:"game"`
	Timing TimingConfig `yaml:"timing"`
	Keys   KeysConfig   `yaml:"keys"`
	Glyphs GlyphConfig  `yaml:"glyphs"`
	Colors ColorConfig  `yaml:"colors"`
}

// GameConfig defines the episode setup.
type GameConfig struct {
	FruitCount int    `yaml:"fruit_count"` // Fruit on the board at once
	WormLength int    `yaml:"worm_length"` // Initial chain length
	Stats      bool   `yaml:"stats"`       // Show render statistics before exiting
	Placement  string `yaml:"placement"`   // "scan" or "rejection"
}

// TimingConfig defines the tick rate.
type TimingConfig struct {
	FPS   int    `yaml:"fps"`   // Ticks per second, one worm step per tick
	Speed string `yaml:"speed"` // Optional preset overriding fps: easy, normal, hard
	Seed  int64  `yaml:"seed"`  // 0 = random based on time
}

// KeysConfig lists the key names bound to each action.
type KeysConfig struct {
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Pause []string `yaml:"pause"`
	Retry []string `yaml:"retry"`
	Quit  []string `yaml:"quit"`
}

// GlyphConfig defines the characters drawn for each entity.
type GlyphConfig struct {
	Head   string       `yaml:"head"`
	Body   string       `yaml:"body"`
	Fruit  string       `yaml:"fruit"`
	Erase  string       `yaml:"erase"`
	Border BorderConfig `yaml:"border"`
}

// BorderConfig defines the board frame glyphs.
type BorderConfig struct {
	Horizontal  string `yaml:"horizontal"`
	Vertical    string `yaml:"vertical"`
	TopLeft     string `yaml:"top_left"`
	TopRight    string `yaml:"top_right"`
	BottomLeft  string `yaml:"bottom_left"`
	BottomRight string `yaml:"bottom_right"`
}

// ColorConfig names the color of each entity (see core.ParseColor).
type ColorConfig struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Fruit  string `yaml:"fruit"`
	Border string `yaml:"border"`
	HUD    string `yaml:"hud"`
	Won    string `yaml:"won"`
	Lost   string `yaml:"lost"`
}

// Validate checks value ranges. Board capacity is checked later, once the
// terminal size is known.
func (c WormConfig) Validate() error {
	if c.Game.FruitCount < 0 {
		return fmt.Errorf("%w: fruit_count must not be negative, got %d", ErrInvalid, c.Game.FruitCount)
	}
	if c.Game.WormLength < 1 {
		return fmt.Errorf("%w: worm_length must be at least 1, got %d", ErrInvalid, c.Game.WormLength)
	}
	if _, err := worm.PlacerByName(c.Game.Placement); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Timing.FPS < 1 || c.Timing.FPS > 240 {
		return fmt.Errorf("%w: fps must be within [1, 240], got %d", ErrInvalid, c.Timing.FPS)
	}
	if c.Timing.Speed != "" {
		if _, ok := TickRateForPreset(SpeedPreset(c.Timing.Speed)); !ok {
			return fmt.Errorf("%w: unknown speed preset %q", ErrInvalid, c.Timing.Speed)
		}
	}
	if len(c.Keys.Quit) == 0 {
		return fmt.Errorf("%w: at least one quit key is required", ErrInvalid)
	}

	glyphs := map[string]string{
		"head":  c.Glyphs.Head,
		"body":  c.Glyphs.Body,
		"fruit": c.Glyphs.Fruit,
		"erase": c.Glyphs.Erase,
	}
	for name, g := range glyphs {
		if g == "" {
			return fmt.Errorf("%w: glyph %s is empty", ErrInvalid, name)
		}
	}

	colors := map[string]string{
		"head":   c.Colors.Head,
		"body":   c.Colors.Body,
		"fruit":  c.Colors.Fruit,
		"border": c.Colors.Border,
		"hud":    c.Colors.HUD,
		"won":    c.Colors.Won,
		"lost":   c.Colors.Lost,
	}
	for name, col := range colors {
		if _, ok := core.ParseColor(col); !ok {
			return fmt.Errorf("%w: unknown %s color %q", ErrInvalid, name, col)
		}
	}
	return nil
}

// TickRate returns the effective ticks per second, honoring the speed preset.
func (c WormConfig) TickRate() int {
	if rate, ok := TickRateForPreset(SpeedPreset(c.Timing.Speed)); ok {
		return rate
	}
	return c.Timing.FPS
}
