package app

import (
	"context"
	"log/slog"
	"time"

	"TreasuryCalendar/internal/config"
	"TreasuryCalendar/internal/infrastructure/gitrepo"
	"TreasuryCalendar/internal/infrastructure/treasurydirect"
	"TreasuryCalendar/internal/logging"
	"TreasuryCalendar/internal/ports"
	"TreasuryCalendar/internal/usecase"
)

// Application wires configs to the pipeline.
type Application struct {
	cfg      config.Config
	pipeline *usecase.Pipeline
}

// New builds a runnable application instance.
func New(cfg config.Config, baseLogger *slog.Logger) *Application {
	if baseLogger == nil {
		baseLogger = logging.New(cfg.Logging.Level)
	}

	source := treasurydirect.NewClient(cfg.Source, baseLogger.With("component", "source"))
	publisher := gitrepo.NewPublisher(cfg.Publish, baseLogger.With("component", "publisher"))

	pipeline := usecase.NewPipeline(usecase.PipelineDeps{
		Source:    source,
		Publisher: publisher,
		Clock:     ports.ClockFunc(time.Now),
		Logger:    baseLogger.With("component", "pipeline"),
	})
	return &Application{cfg: cfg, pipeline: pipeline}
}

// Run performs a single pipeline execution.
func (a *Application) Run(ctx context.Context, params usecase.RunParams) error {
	if params.OutputPath == "" {
		params.OutputPath = a.cfg.Output.Path
	}
	return a.pipeline.Run(ctx, params)
}
