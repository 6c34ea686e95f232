package main

import (
	"context"
	"os"

	"hello-window/internal/app"
	"hello-window/internal/config"
	"hello-window/internal/logger"
	"hello-window/internal/shutdown"

	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		logger.NewConsoleLogger(zerolog.InfoLevel).Error("Config", err, nil)
		return app.ExitFailure
	}

	appLogger := logger.New(cfg.Level, cfg.LogJSON)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	application, err := app.NewApplication(app.NewFyneApp(), appLogger)
	if err != nil {
		appLogger.Error("Application", err, nil)
		return app.ExitFailure
	}

	listenCtx, stopListening := context.WithCancel(ctx)
	shutdownManager := shutdown.NewManager(appLogger)
	shutdownManager.Register(application)
	shutdownManager.Listen(listenCtx)

	// Restore default signal handling once the window is gone.
	application.OnShutdown("signal listener", stopListening)

	return application.Run(ctx)
}
