// Package main implements the entry point for the practicelog server,
// the local persistence and analytics backend behind the study-practice
// tools: practice results, weakness detection, spaced repetition, the
// wrong-answer ledger, and the daily review plan.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/studykit/practicelog/internal/config"
	"github.com/studykit/practicelog/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		app.logger.Error("Server exited with error", "error", err)
	}
}

// initializeApp loads configuration and wires the application
// components together: logger, storage port, document store, service
// facade.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"storage_path", cfg.Storage.Path)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to build application: %w", err)
	}
	return app, nil
}
