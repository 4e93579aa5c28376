package console

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-worm/internal/core"
	"github.com/vovakirdan/tui-worm/internal/games/worm"
	"github.com/vovakirdan/tui-worm/internal/input"
	"github.com/vovakirdan/tui-worm/internal/render"
	"github.com/vovakirdan/tui-worm/internal/telemetry"
)

// KeySource yields the most recent key press once per tick.
type KeySource interface {
	Latest() (input.Key, bool)
	Closed() bool
}

// Output receives rendered frames.
type Output interface {
	Apply(core.Frame) error
}

// SessionConfig wires a session together. Game, Keys and Output are required.
type SessionConfig struct {
	Game     *worm.Game
	Keys     KeySource
	Output   Output
	KeyMap   input.KeyMap
	Renderer *render.Renderer
	Budget   time.Duration // Wall-clock time per tick
	Logger   *log.Logger
}

// Session runs the fixed-rate game loop on the calling goroutine.
type Session struct {
	game     *worm.Game
	keys     KeySource
	out      Output
	keymap   input.KeyMap
	renderer *render.Renderer
	help     help.Model
	budget   time.Duration
	logger   *log.Logger
	stats    *telemetry.RenderStats

	now   func() time.Time
	sleep func(context.Context, time.Duration)

	elapsed time.Duration // Previous frame, shown in the HUD
	slept   time.Duration
}

// NewSession creates a session. Zero optional fields get defaults.
func NewSession(cfg SessionConfig) *Session {
	if cfg.Renderer == nil {
		cfg.Renderer = render.New(render.DefaultTheme())
	}
	if len(cfg.KeyMap.Quit.Keys()) == 0 {
		cfg.KeyMap = input.DefaultKeyMap()
	}
	if cfg.Budget <= 0 {
		cfg.Budget = core.DefaultConfig().FrameBudget()
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return &Session{
		game:     cfg.Game,
		keys:     cfg.Keys,
		out:      cfg.Output,
		keymap:   cfg.KeyMap,
		renderer: cfg.Renderer,
		help:     help.New(),
		budget:   cfg.Budget,
		logger:   cfg.Logger,
		stats:    telemetry.NewRenderStats(telemetry.DefaultWindow),
		now:      time.Now,
		sleep:    sleepContext,
	}
}

// Stats returns the render statistics collected so far.
func (s *Session) Stats() *telemetry.RenderStats {
	return s.stats
}

// Run plays until the game exits, the context is cancelled, or input ends
// while the game can only be left by a key press.
func (s *Session) Run(ctx context.Context) error {
	snap := s.game.Snapshot()
	if err := s.out.Apply(s.renderer.Episode(snap, render.HUDFor(snap, 0, 0))); err != nil {
		return err
	}
	s.logger.Info("episode started", "episode", snap.Episode, "length", snap.Length(), "fruit", len(snap.Fruits))

	for {
		start := s.now()

		if ctx.Err() != nil {
			s.logger.Info("session interrupted", "reason", context.Cause(ctx))
			return nil
		}

		action := core.ActionNone
		if k, ok := s.keys.Latest(); ok {
			action = s.keymap.Action(k)
		}
		if action == core.ActionNone && s.keys.Closed() && s.waitingForKey() {
			s.logger.Info("input closed, leaving", "status", s.game.Status())
			return nil
		}

		res := s.game.Step(action)
		if frame := s.frame(res); !frame.Empty() {
			if err := s.out.Apply(frame); err != nil {
				return err
			}
		}
		s.logStep(res)

		if res.Status == worm.StatusExiting {
			return nil
		}

		elapsed := s.now().Sub(start)
		if res.Moved {
			s.stats.Record(elapsed)
		}
		slept := FrameSleep(s.budget, elapsed)
		s.elapsed, s.slept = elapsed, slept
		s.sleep(ctx, slept)
	}
}

// waitingForKey reports whether the game can only progress on a key press.
func (s *Session) waitingForKey() bool {
	st := s.game.Status()
	return st.Ended() || st == worm.StatusShowingStats || st == worm.StatusPaused
}

// frame picks the smallest redraw for what the tick changed.
func (s *Session) frame(res worm.StepResult) core.Frame {
	snap := s.game.Snapshot()
	hud := render.HUDFor(snap, s.elapsed, s.slept)

	switch {
	case res.EpisodeStarted:
		return s.renderer.Episode(snap, hud)

	case res.Changed:
		switch res.Status {
		case worm.StatusLost, worm.StatusWon:
			return s.renderer.Message(snap, s.help.ShortHelpView(s.keymap.EndHelp()))
		case worm.StatusShowingStats:
			return s.renderer.Stats(snap.Board, s.stats.Summary().Table(), s.help.ShortHelpView(s.keymap.EndHelp()[:1]))
		case worm.StatusPaused, worm.StatusPlaying:
			return s.renderer.Status(snap.Board, hud)
		}
		return core.Frame{}

	case res.Moved:
		return s.renderer.Tick(snap, res.Relocated, hud)
	}
	return core.Frame{}
}

func (s *Session) logStep(res worm.StepResult) {
	if res.Ate {
		s.logger.Debug("fruit eaten", "relocated", res.Relocated)
	}
	if res.EpisodeStarted {
		snap := s.game.Snapshot()
		s.logger.Info("episode started", "episode", snap.Episode, "length", snap.Length(), "fruit", len(snap.Fruits))
		return
	}
	if res.Changed {
		snap := s.game.Snapshot()
		s.logger.Info("status changed", "status", res.Status, "episode", snap.Episode, "length", snap.Length(), "eaten", snap.Eaten)
	}
}
