package main

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-worm/internal/config"
	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm"
	"github.com/vovakirdan/tui-worm/internal/input"
	"github.com/vovakirdan/tui-worm/internal/platform/console"
	"github.com/vovakirdan/tui-worm/internal/render"
	"github.com/vovakirdan/tui-worm/internal/telemetry"
)

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, source, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	if source != "" {
		logger.Info("loaded config", "path", source)
	}

	summary, err := play(cfg, logger)
	if err != nil {
		logger.Error("session failed", "error", err)
		closeLog()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("render stats", summary.KeyVals()...)
	if cfg.Game.Stats {
		fmt.Println(summary.Table())
	}
}

// play runs one session. The terminal is restored before it returns, also
// when the game panics.
func play(cfg config.WormConfig, logger *log.Logger) (summary telemetry.Summary, err error) {
	placer, err := worm.PlacerByName(cfg.Game.Placement)
	if err != nil {
		return summary, err
	}
	theme, err := render.ThemeFromConfig(cfg)
	if err != nil {
		return summary, err
	}

	rc := core.DefaultConfig()
	rc.TickRate = cfg.TickRate()
	rc.Seed = cfg.Timing.Seed
	if rc.Seed == 0 {
		rc.Seed = time.Now().UnixNano()
	}

	terminal, err := console.Open(os.Stdin, os.Stdout)
	if err != nil {
		return summary, err
	}
	defer func() {
		if r := recover(); r != nil {
			//nolint:errcheck // Restoring the terminal matters more than the error
			terminal.Close()
			panic(r)
		}
		if closeErr := terminal.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	rc.ScreenW, rc.ScreenH, err = terminal.Size()
	if err != nil {
		return summary, err
	}
	board, err := worm.BoardFromTerminal(rc.ScreenW, rc.ScreenH, worm.BorderSet(cfg.Glyphs.Border))
	if err != nil {
		return summary, err
	}

	game, err := worm.New(board, worm.Settings{
		FruitCount: cfg.Game.FruitCount,
		WormLength: cfg.Game.WormLength,
		Stats:      cfg.Game.Stats,
		Placer:     placer,
	}, rand.New(rand.NewSource(rc.Seed)))
	if err != nil {
		return summary, err
	}

	keys, err := input.NewSource(os.Stdin, os.Getenv("TERM"), logger.WithPrefix("input"))
	if err != nil {
		return summary, err
	}
	keys.Start()
	defer keys.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting session",
		"board", fmt.Sprintf("%dx%d", board.Width(), board.Height()),
		"fruit", cfg.Game.FruitCount,
		"length", cfg.Game.WormLength,
		"tick_rate", rc.TickRate,
		"seed", rc.Seed,
		"placement", cfg.Game.Placement,
	)

	session := console.NewSession(console.SessionConfig{
		Game:     game,
		Keys:     keys,
		Output:   terminal,
		KeyMap:   input.NewKeyMap(cfg.Keys),
		Renderer: render.New(theme),
		Budget:   rc.FrameBudget(),
		Logger:   logger.WithPrefix("session"),
	})
	if err := session.Run(ctx); err != nil {
		return session.Stats().Summary(), err
	}
	return session.Stats().Summary(), nil
}

// newLogger writes to path, or discards everything when path is empty:
// stderr shares the terminal the game draws on.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "worm",
		Level:           log.DebugLevel,
	})

	var closed bool
	return logger, func() {
		if !closed {
			closed = true
			//nolint:errcheck // Best-effort close of the log file
			f.Close()
		}
	}, nil
}
