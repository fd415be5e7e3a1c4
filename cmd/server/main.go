// Package main is the entry point for the task manager server.
//
// main stays minimal: load configuration, build the logger, create the data
// directory, hand everything to internal/server. All real logic lives in
// the imported packages so it can be tested without running a process.
package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/sakif/taskmanager/internal/config"
	"github.com/sakif/taskmanager/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	// Ensure the directory holding the SQLite file exists, like `mkdir -p`.
	if dbDir := filepath.Dir(cfg.DBPath); dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			logger.Error("failed to create database directory",
				slog.String("dir", dbDir),
				slog.String("error", err.Error()),
			)
			os.Exit(1)
		}
	}

	// A store that won't open is fatal — exit immediately.
	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create server", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Start blocks until the server is shut down via SIGINT/SIGTERM.
	if err := srv.Start(); err != nil {
		logger.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
