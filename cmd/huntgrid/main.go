package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ugaemi/huntgrid/internal/config"
	"github.com/ugaemi/huntgrid/internal/game"
	"github.com/ugaemi/huntgrid/internal/round"
	"github.com/ugaemi/huntgrid/internal/trace"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("loading config failed", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("huntgrid failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config) error {
	rec, err := trace.Create(cfg.TracePath)
	if err != nil {
		return err
	}
	defer rec.Close()

	rm := round.NewManager()
	for i := range cfg.Rounds {
		s, err := rm.CreateSession(round.Options{
			Settings:     cfg.Settings(),
			Seed:         cfg.Seed + int64(i),
			TickInterval: cfg.TickInterval(),
			MaxTicks:     cfg.MaxTicks,
			Autopilot:    true,
		})
		if err != nil {
			return err
		}
		if rec != nil {
			s.OnTick = func(snap round.Snapshot) {
				if err := rec.Record(snap); err != nil {
					slog.Warn("trace write failed", "session", snap.Session, "error", err)
				}
			}
		}
	}

	slog.Info("running rounds", "rounds", cfg.Rounds, "seed", cfg.Seed, "max_ticks", cfg.MaxTicks)
	results := rm.RunAll(ctx)

	var won, lost, timedOut int
	for _, r := range results {
		switch {
		case errors.Is(r.Err, round.ErrTickLimit):
			timedOut++
		case r.Err != nil:
			return r.Err
		case r.State == game.StateWon:
			won++
		case r.State == game.StateLost:
			lost++
		}
		slog.Debug("round result", "session", r.Session, "round", r.Round, "state", r.State, "tick", r.Ticks)
	}

	slog.Info("rounds finished", "won", won, "lost", lost, "timeout", timedOut)
	return nil
}

func setupLogger(cfg *config.Config) {
	var h slog.Handler
	opts := &slog.HandlerOptions{}

	switch cfg.LogLevel {
	case "debug":
		opts.Level = slog.LevelDebug
	case "warn":
		opts.Level = slog.LevelWarn
	case "error":
		opts.Level = slog.LevelError
	default:
		opts.Level = slog.LevelInfo
	}

	switch cfg.LogFormat {
	case "json":
		h = slog.NewJSONHandler(os.Stdout, opts)
	default:
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	slog.SetDefault(slog.New(h))
}
