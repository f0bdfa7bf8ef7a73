package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"softcube/frame"
	"softcube/hal"
	"softcube/internal/buildinfo"
	"softcube/internal/config"
)

func main() {
	cfg, err := config.Parse("softcube", os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if cfg.Version {
		fmt.Println(buildinfo.String())
		return
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)
	log.Info("softcube starting", buildinfo.Attr(),
		"width", cfg.Width, "height", cfg.Height, "headless", cfg.Headless)

	o := frame.New(cfg.Options(log))
	if err := run(cfg, o, log); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg config.Config, o *frame.Orchestrator, log *slog.Logger) error {
	if cfg.Headless {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		return hal.RunHeadless(ctx, o, hal.HeadlessConfig{
			Hz:       cfg.Hz,
			Frames:   cfg.Frames,
			Snapshot: cfg.Snapshot,
			HUD:      cfg.HUD,
			Logger:   log,
		})
	}
	return hal.RunWindow(o, hal.WindowConfig{
		Scale:  cfg.Scale,
		TPS:    cfg.Hz,
		HUD:    cfg.HUD,
		Logger: log,
	})
}
