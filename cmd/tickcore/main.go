package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/tickcore/internal/config"
	"github.com/zeusync/tickcore/internal/core/observability/log"
	"github.com/zeusync/tickcore/internal/injector"
	"github.com/zeusync/tickcore/pkg/concurrent"
)

func main() {
	configPath := flag.String("config", "", "path to a .yaml, .yml or .toml config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, "tickcore:", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if err = cfg.Validate(); err != nil {
		return err
	}

	app, cleanup, err := injector.InitializeApp(cfg)
	if err != nil {
		return err
	}
	defer cleanup()
	defer func() { _ = app.Logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	simulate := func(ctx context.Context) error {
		world, err := app.Engine.Run(ctx, app.World)
		if err != nil {
			return err
		}
		app.Logger.Info("Simulation finished",
			log.Uint64("frame", app.Engine.Frame()),
			log.Int("entities", world.Len()),
			log.Uint64("fingerprint", world.Fingerprint()))
		// A finished run takes the spectator server down with it.
		stop()
		return nil
	}

	var spectate concurrent.Task
	if cfg.Spectator.Enabled {
		spectate = app.Spectator.Run
	}

	return concurrent.Supervise(ctx, simulate, spectate)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.Default()
		return cfg, cfg.ApplyEnv()
	}
	return config.Load(path)
}
