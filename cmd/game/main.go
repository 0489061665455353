// game runs TextAsteroids in the local terminal.
//
// Usage:
//
//	game [--config game.yaml] [--seed N] [--tick 500ms] [--display ansi|tcell] [--log-file game.log]
//
// Type a command and press enter: pew fires, w/a/s/d thrust, q/e turn.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/tomz197/textasteroids/internal/config"
	"github.com/tomz197/textasteroids/internal/draw"
	"github.com/tomz197/textasteroids/internal/input"
	"github.com/tomz197/textasteroids/internal/loop"
)

var (
	flagConfig  string
	flagSeed    int64
	flagTick    time.Duration
	flagDisplay string
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "game",
	Short: "Play TextAsteroids in your terminal",
	Long: `TextAsteroids is played by typing commands:

  pew   fire a projectile
  w s   thrust up / down
  a d   thrust left / right
  q e   turn left / right

Asteroids fall from the top edge. Touch one and the game is over;
press enter on the game over screen to exit.`,
	SilenceUsage: true,
	RunE:         runGame,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", config.GetEnv("GAME_CONFIG", ""), "Path to a YAML game config (defaults are embedded)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "Asteroid RNG seed (overrides the config)")
	rootCmd.Flags().DurationVar(&flagTick, "tick", 0, "Tick period (overrides the config)")
	rootCmd.Flags().StringVar(&flagDisplay, "display", "ansi", "Display backend: ansi or tcell")
	rootCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")
}

func runGame(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = flagSeed
	}
	if cmd.Flags().Changed("tick") {
		cfg.Tick = flagTick
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGHUP)
	defer stop()

	switch flagDisplay {
	case "ansi":
		err = runANSI(ctx, cfg, logger)
	case "tcell":
		err = runTcell(ctx, cfg, logger)
	default:
		return fmt.Errorf("unknown display %q (want ansi or tcell)", flagDisplay)
	}

	if errors.Is(err, loop.ErrInterrupted) {
		logger.Info("interrupted")
		return nil
	}
	return err
}

// newLogger logs to path, or nowhere when path is empty; stdout belongs to the game.
func newLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "textasteroids",
		Level:           log.DebugLevel,
	})
	return logger, func() { _ = f.Close() }, nil
}

func runANSI(ctx context.Context, cfg config.Game, logger *log.Logger) error {
	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	// Play area plus the separator and input rows.
	areaW, areaH := cfg.Width+2, draw.InputRow(cfg.Height)+1
	var opts []draw.TerminalOption
	if tw, th, err := draw.DefaultTermSizeFunc(); err == nil {
		col, row := draw.CenterOffset(tw, th, areaW, areaH)
		opts = append(opts, draw.WithOffset(col, row), draw.WithBorder())
	}

	surface := draw.NewTerminalSurface(os.Stdout, cfg.Width, cfg.Height, opts...)
	if err := surface.Init(); err != nil {
		return err
	}
	defer surface.Close()

	session := loop.NewSession(cfg, surface, input.StartStream(os.Stdin), loop.WithLogger(logger))
	logger.Info("game started", "display", "ansi", "seed", cfg.Seed, "tick", cfg.Tick)
	return session.Run(ctx)
}

func runTcell(ctx context.Context, cfg config.Game, logger *log.Logger) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.Clear()

	session := loop.NewSession(cfg,
		draw.NewTcellSurface(screen, cfg.Width, cfg.Height),
		input.NewTcellSource(screen),
		loop.WithLogger(logger),
	)
	logger.Info("game started", "display", "tcell", "seed", cfg.Seed, "tick", cfg.Tick)
	return session.Run(ctx)
}
