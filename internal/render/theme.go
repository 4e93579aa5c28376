package render

import (
	"fmt"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
)

// Theme holds the glyphs and colors the renderer draws with.
type Theme struct {
	Head  string
	Body  string
	Fruit string
	Erase string

	HeadColor   core.Color
	BodyColor   core.Color
	FruitColor  core.Color
	BorderColor core.Color
	HUDColor    core.Color
	WonColor    core.Color
	LostColor   core.Color
}

// DefaultTheme returns the theme built from the default configuration.
func DefaultTheme() Theme {
	t, err := ThemeFromConfig(config.DefaultWormConfig())
	if err != nil {
		panic(err) // defaults are validated by tests
	}
	return t
}

// ThemeFromConfig resolves configured glyphs and color names.
func ThemeFromConfig(cfg config.WormConfig) (Theme, error) {
	t := Theme{
		Head:  cfg.Glyphs.Head,
		Body:  cfg.Glyphs.Body,
		Fruit: cfg.Glyphs.Fruit,
		Erase: cfg.Glyphs.Erase,
	}

	colors := []struct {
		name string
		dst  *core.Color
	}{
		{cfg.Colors.Head, &t.HeadColor},
		{cfg.Colors.Body, &t.BodyColor},
		{cfg.Colors.Fruit, &t.FruitColor},
		{cfg.Colors.Border, &t.BorderColor},
		{cfg.Colors.HUD, &t.HUDColor},
		{cfg.Colors.Won, &t.WonColor},
		{cfg.Colors.Lost, &t.LostColor},
	}
	for _, c := range colors {
		col, ok := core.ParseColor(c.name)
		if !ok {
			return Theme{}, fmt.Errorf("render: unknown color %q", c.name)
		}
		*c.dst = col
	}
	return t, nil
}
