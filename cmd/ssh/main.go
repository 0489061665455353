// ssh serves TextAsteroids over SSH. Every connection plays its own game.
//
// Usage:
//
//	ssh [--host ::] [--port 2222] [--host-key /app/keys/host_key] [--config game.yaml]
//
// Players connect with: ssh -t -p 2222 host
package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/logging"
	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/tomz197/textasteroids/internal/config"
	"github.com/tomz197/textasteroids/internal/draw"
	"github.com/tomz197/textasteroids/internal/input"
	"github.com/tomz197/textasteroids/internal/loop"
)

const (
	defaultHost        = "::"
	defaultPort        = "2222"
	defaultHostKeyPath = "/app/keys/host_key"
	shutdownTimeout    = 5 * time.Second
)

var (
	flagHost        string
	flagPort        string
	flagHostKey     string
	flagConfig      string
	flagIdleTimeout time.Duration
	flagDebug       bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Serve TextAsteroids over SSH",
	Long: `Start an SSH server where every connection plays its own game of
TextAsteroids. A PTY is required.

Flags default to the SSH_HOST, SSH_PORT, SSH_HOST_KEY and GAME_CONFIG
environment variables when they are set.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.Flags().StringVar(&flagHost, "host", config.GetEnv("SSH_HOST", defaultHost), "Listen address")
	rootCmd.Flags().StringVar(&flagPort, "port", config.GetEnv("SSH_PORT", defaultPort), "Listen port")
	rootCmd.Flags().StringVar(&flagHostKey, "host-key", config.GetEnv("SSH_HOST_KEY", defaultHostKeyPath), "Path to the host key (generated if missing)")
	rootCmd.Flags().StringVar(&flagConfig, "config", config.GetEnv("GAME_CONFIG", ""), "Path to a YAML game config (defaults are embedded)")
	rootCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Disconnect idle sessions after this long (0 disables)")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Log game events")
}

func runServe(_ *cobra.Command, _ []string) error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "textasteroids-ssh",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	addr := net.JoinHostPort(flagHost, flagPort)
	logger.Info("ssh config", "addr", addr, "host_key", flagHostKey, "config", flagConfig)

	opts := []ssh.Option{
		wish.WithAddress(addr),
		wish.WithMiddleware(
			gameMiddleware(cfg, logger),
			activeterm.Middleware(),
			logging.MiddlewareWithLogger(logger),
		),
		// Set TCP_NODELAY to reduce latency for game input
		ssh.WrapConn(func(ctx ssh.Context, conn net.Conn) net.Conn {
			if tcpConn, ok := conn.(*net.TCPConn); ok {
				_ = tcpConn.SetNoDelay(true)
			}
			return conn
		}),
	}
	if flagHostKey != "" {
		opts = append(opts, wish.WithHostKeyPath(flagHostKey))
	}
	if flagIdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(flagIdleTimeout))
	}

	s, err := wish.NewServer(opts...)
	if err != nil {
		return fmt.Errorf("create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	logger.Info("starting ssh server", "addr", addr)
	go func() {
		if err := s.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// gameMiddleware runs one game per SSH session.
func gameMiddleware(cfg config.Game, logger *log.Logger) wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			pty, winCh, ok := sess.Pty()
			if !ok {
				fmt.Fprintln(sess, "Error: PTY required. Please connect with: ssh -t user@host")
				return
			}

			sessLog := logger.With("session", uuid.NewString(), "user", sess.User())
			sessLog.Info("game session started", "term", pty.Term, "width", pty.Window.Width, "height", pty.Window.Height)

			areaW, areaH := cfg.Width+2, draw.InputRow(cfg.Height)+1
			col, row := draw.CenterOffset(pty.Window.Width, pty.Window.Height, areaW, areaH)

			renderer := lipgloss.NewRenderer(sess, termenv.WithProfile(termenv.ANSI256))
			surface := draw.NewTerminalSurface(sess, cfg.Width, cfg.Height,
				draw.WithOffset(col, row),
				draw.WithBorder(),
				draw.WithStyles(draw.DefaultStyles(renderer)),
			)
			if err := surface.Init(); err != nil {
				sessLog.Error("init display", "error", err)
				return
			}

			// Re-centre on window changes
			go func() {
				for win := range winCh {
					col, row := draw.CenterOffset(win.Width, win.Height, areaW, areaH)
					if err := surface.SetOffset(col, row); err != nil {
						return
					}
				}
			}()

			session := loop.NewSession(cfg, surface, input.StartStream(sess), loop.WithLogger(sessLog))
			err := session.Run(sess.Context())
			_ = surface.Close()

			switch {
			case err == nil, errors.Is(err, loop.ErrInterrupted):
				sessLog.Info("game session ended")
			case errors.Is(err, input.ErrClosed), errors.Is(err, context.Canceled):
				sessLog.Info("player disconnected")
			default:
				sessLog.Error("game session failed", "error", err)
			}
			next(sess)
		}
	}
}
