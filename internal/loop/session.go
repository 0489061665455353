// Package loop drives one game: a fixed-period tick goroutine and an input
// activity sharing a single simulation lock.
package loop

import (
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"github.com/tomz197/textasteroids/internal/command"
	"github.com/tomz197/textasteroids/internal/config"
	"github.com/tomz197/textasteroids/internal/draw"
	"github.com/tomz197/textasteroids/internal/input"
	"github.com/tomz197/textasteroids/internal/world"
)

// ErrInterrupted is returned by Run when the player presses Ctrl+C.
var ErrInterrupted = errors.New("interrupted")

// errGameEnded stops the tick goroutine when the player leaves the game over screen.
var errGameEnded = errors.New("game ended")

// Session is one running game.
type Session struct {
	mu     sync.Mutex // Guards world and frame
	world  *world.World
	frame  *draw.Frame
	period time.Duration

	surface draw.Surface
	source  input.Source
	editor  *input.LineEditor // Owned by the input activity
	logger  *log.Logger
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the session logger. Sessions log nothing by default.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		s.logger = l
	}
}

// NewSession creates a game from validated settings, drawing to surface and
// reading keys from source.
func NewSession(cfg config.Game, surface draw.Surface, source input.Source, opts ...Option) *Session {
	s := &Session{
		world:   world.New(cfg),
		frame:   draw.NewFrame(cfg.Width, cfg.Height),
		period:  cfg.Tick,
		surface: surface,
		source:  source,
		editor:  input.NewLineEditor(cfg.Width),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot returns a copy of the current world state.
func (s *Session) Snapshot() world.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.world.Snapshot()
}

// Tick advances the world one step and presents the resulting frame.
// The whole step, including rendering, runs under the simulation lock.
func (s *Session) Tick() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.world.Step()
	if a := res.Spawned; a != nil {
		s.logger.Debug("asteroid spawned", "x", a.Position.X, "vx", a.Velocity.X, "health", a.Health)
	}
	if res.Hits > 0 {
		s.logger.Debug("projectile hits", "count", res.Hits)
	}
	if res.ShipDestroyed {
		s.logger.Info("ship destroyed", "tick", s.world.Tick())
	}

	draw.Render(s.frame, s.world.Snapshot())
	return s.surface.Present(s.frame)
}

// Run plays the game until the player leaves it, the context is done, or
// the surface or key source fails. It returns nil when the player submits a
// line on the game over screen and ErrInterrupted on Ctrl+C.
func (s *Session) Run(ctx context.Context) error {
	if err := s.surface.ShowInput("", 0); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.tickLoop(ctx) })
	g.Go(func() error { return s.inputLoop(ctx) })

	err := g.Wait()
	if errors.Is(err, errGameEnded) {
		return nil
	}
	return err
}

// tickLoop ticks, then sleeps for the tick period. The sleep is not
// shortened by the time the tick took.
func (s *Session) tickLoop(ctx context.Context) error {
	for {
		if err := s.Tick(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.period):
		}
	}
}

func (s *Session) inputLoop(ctx context.Context) error {
	for {
		k, err := s.source.Next(ctx)
		if err != nil {
			return err
		}
		if err := s.handleKey(k); err != nil {
			return err
		}
	}
}

// handleKey applies one key press: editing keys change the input line,
// Enter submits it.
func (s *Session) handleKey(k input.Key) error {
	switch k.Kind {
	case input.KeyInterrupt:
		return ErrInterrupted
	case input.KeyEnter:
		if s.submit(s.editor.Submit()) {
			return errGameEnded
		}
	default:
		if !s.editor.Handle(k) {
			return nil
		}
	}
	return s.surface.ShowInput(s.editor.Text(), s.editor.Cursor())
}

// submit executes a command line. Returns true if the game is over, in which
// case any submitted line ends the session.
func (s *Session) submit(line string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.world.GameOver() {
		return true
	}
	if cmd := command.Execute(s.world, line); cmd != command.None {
		s.logger.Debug("command", "cmd", cmd)
	} else {
		s.logger.Debug("ignored input", "line", line)
	}
	return false
}
