package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/matt-dz/recipecenter/internal/api"
	"github.com/matt-dz/recipecenter/internal/config"
	"github.com/matt-dz/recipecenter/internal/env"
	mHttp "github.com/matt-dz/recipecenter/internal/http"
	"github.com/matt-dz/recipecenter/internal/log"
	"github.com/matt-dz/recipecenter/internal/metrics"
	"github.com/matt-dz/recipecenter/internal/setup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	const setupTime = 30 * time.Second
	setupCtx, cancel := context.WithTimeout(ctx, setupTime)
	defer cancel()

	logger := log.New(nil)

	conf, err := config.LoadConfig()
	if err != nil {
		logger.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger = log.New(&slog.HandlerOptions{Level: conf.LogLevel.Level()})

	files, err := setup.FileStore(setupCtx, conf.Storage)
	if err != nil {
		logger.Error("failed to setup file store", slog.Any("error", err))
		os.Exit(1)
	}

	db, err := setup.Database(setupCtx, conf.Database)
	if err != nil {
		logger.Error("failed to setup database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	env := env.New(logger, conf, db, env.Services{
		Invites: setup.Mailer(conf),
		Files:   files,
		Metrics: metrics.New(),
		HTTP:    mHttp.New(mHttp.DefaultConfig(logger)),
	})

	logger.DebugContext(ctx, "setting up admin")
	if err := setup.Admin(setupCtx, env); err != nil {
		logger.Error("failed to setup admin", slog.Any("error", err))
		os.Exit(1)
	}

	if err := api.Start(ctx, env); err != nil {
		env.Logger.Error("API Failed", slog.Any("error", err))
		os.Exit(1)
	}
}
