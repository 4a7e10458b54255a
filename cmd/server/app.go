package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/studykit/practicelog/internal/config"
	"github.com/studykit/practicelog/internal/service"
	"github.com/studykit/practicelog/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config  *config.Config
	logger  *slog.Logger
	sqlite  *store.SQLitePort
	service *service.Service
}

// newApplication opens the storage backend and builds the service
// facade over it.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	sqlitePort, err := store.OpenSQLite(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage at %s: %w", cfg.Storage.Path, err)
	}

	docStore := store.NewDocumentStore(sqlitePort, logger, time.Now)
	svc := service.New(docStore, logger)

	return &application{
		config:  cfg,
		logger:  logger,
		sqlite:  sqlitePort,
		service: svc,
	}, nil
}

// cleanup releases resources held by the application.
func (app *application) cleanup() {
	if app.sqlite == nil {
		return
	}
	if err := app.sqlite.Close(); err != nil {
		app.logger.Error("Failed to close storage", "error", err)
	}
}
