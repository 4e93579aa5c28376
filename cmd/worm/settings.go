package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/config"
)

// loadConfig reads the config file and applies the flags the user set.
func loadConfig(cmd *cobra.Command) (config.WormConfig, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return cfg, "", err
	}

	flags := cmd.Flags()
	if flags.Changed("fruit-count") {
		cfg.Game.FruitCount = flagFruitCount
	}
	if flags.Changed("worm-length") {
		cfg.Game.WormLength = flagWormLength
	}
	if flags.Changed("stats") {
		cfg.Game.Stats = flagStats
	}
	if flags.Changed("placement") {
		cfg.Game.Placement = flagPlacement
	}
	if flags.Changed("fps") {
		cfg.Timing.FPS = flagFPS
		cfg.Timing.Speed = "" // An explicit rate beats a preset from the file
	}
	if flags.Changed("speed") {
		cfg.Timing.Speed = flagSpeed
	}
	if flags.Changed("seed") {
		cfg.Timing.Seed = flagSeed
	}

	if err := cfg.Validate(); err != nil {
		return cfg, source, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, source, nil
}
