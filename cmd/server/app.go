package main

import (
	"context"
	"log/slog"

	"github.com/phrazzld/taskflow-api/internal/analysis"
	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/domain/heuristic"
	"github.com/phrazzld/taskflow-api/internal/generation"
	"github.com/phrazzld/taskflow-api/internal/platform/gemini"
	"github.com/phrazzld/taskflow-api/internal/redact"
)

// newLLMClient builds the AI backend. Tests replace it to simulate a client
// that fails to load.
var newLLMClient = func(ctx context.Context, logger *slog.Logger, cfg config.LLMConfig) (generation.Client, error) {
	return gemini.NewClient(ctx, logger, cfg)
}

// application holds all the shared application dependencies to simplify management
// and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	mode     domain.OperatingMode
	analyzer *analysis.Service
}

// newApplication wires the analysis service. The operating mode is decided
// once here and never changes for the life of the process.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) *application {
	app := &application{
		config: cfg,
		logger: logger,
	}

	hasCredential := cfg.LLM.HasCredential()

	var client generation.Client
	if hasCredential {
		loaded, err := newLLMClient(ctx, logger.With("component", "llm_client"), cfg.LLM)
		if err != nil {
			logger.Warn("LLM client could not be loaded, falling back to heuristic analysis",
				"error", redact.Error(err))
		} else {
			client = loaded
		}
	} else {
		logger.Info("No LLM credential configured, using heuristic analysis")
	}

	app.mode = analysis.DecideMode(hasCredential, client != nil)

	engine := heuristic.NewServiceWithParams(heuristic.NewParams(heuristic.ParamsConfig{
		HighKeywords:            cfg.Heuristic.HighKeywords,
		MediumKeywords:          cfg.Heuristic.MediumKeywords,
		LowKeywords:             cfg.Heuristic.LowKeywords,
		ComplexityWordThreshold: cfg.Heuristic.ComplexityWordThreshold,
	}))

	app.analyzer = analysis.NewService(app.mode, client, engine,
		analysis.WithLogger(logger.With("component", "analysis")))

	logger.Info("Application initialized successfully", "mode", app.mode.String())
	return app
}

// Run starts the application server, handling lifecycle and cleanup.
// It returns an error if the server fails to start or encounters problems.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()
	return app.startHTTPServer(ctx, router)
}
