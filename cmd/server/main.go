// Package main implements the entry point for the TaskFlow API server,
// which provides priority analysis and summaries for the task manager.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
)

// main is the entry point for the taskflow-api server.
// It loads configuration, sets up logging, selects the operating mode and
// starts the HTTP server.
func main() {
	fmt.Println("TaskFlow API Server Starting...")

	ctx := context.Background()

	cfg, appLogger, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app := newApplication(ctx, cfg, appLogger)
	if err := app.Run(ctx); err != nil {
		appLogger.Error("Application stopped with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
// Returns the loaded config, the configured logger and any initialization error.
func initializeApp() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	appLogger.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"llm_enabled", cfg.LLM.Enabled,
		"llm_credential_present", cfg.LLM.GeminiAPIKey != "")

	return cfg, appLogger, nil
}
