package main

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/tdiallo/suitoracle/internal/config"
	"github.com/tdiallo/suitoracle/internal/engine"
	"github.com/tdiallo/suitoracle/internal/health"
	"github.com/tdiallo/suitoracle/internal/logging"
	"github.com/tdiallo/suitoracle/internal/sched"
	"github.com/tdiallo/suitoracle/internal/telegram"
)

func main() {
	logging.Init()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("invalid configuration", "err", err)
	}
	logging.Info("configuration loaded",
		"source", cfg.SourceChannelID,
		"prediction", cfg.PredictionChannelID,
		"port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client, err := telegram.New(cfg)
	if err != nil {
		logging.Fatal("failed to start transport", "err", err)
	}
	client.VerifyChannels(ctx)

	eng := engine.New(client)
	listener := telegram.NewListener(client, eng)

	scheduler := sched.New(eng, client)
	scheduler.Start(ctx)

	srv := health.New(cfg.Port, eng)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return listener.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })

	logging.Info("bot operational, waiting for messages")

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error("shutting down after error", "err", err)
	}

	scheduler.Wait()
	logging.Info("shutdown complete")
}
