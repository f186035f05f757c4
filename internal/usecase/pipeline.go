package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"TreasuryCalendar/internal/calendar"
	"TreasuryCalendar/internal/domain"
	"TreasuryCalendar/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source    ports.SecuritySource
	Publisher ports.Publisher
	Clock     ports.Clock
	Logger    *slog.Logger
}

// RunParams carries the per-run options resolved from the command line.
type RunParams struct {
	DaysBack   int
	Kinds      []domain.EventKind
	OutputPath string
	Commit     bool
}

// Pipeline implements the fetch, filter, map, write, publish workflow.
// Strictly sequential; the first failing stage fails the run.
type Pipeline struct {
	source    ports.SecuritySource
	publisher ports.Publisher
	clock     ports.Clock
	logger    *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:    deps.Source,
		publisher: deps.Publisher,
		clock:     deps.Clock,
		logger:    deps.Logger,
	}
}

// Run executes one full generation cycle.
func (p *Pipeline) Run(ctx context.Context, params RunParams) error {
	p.logger.Info("fetching Treasury auction data")
	securities, err := p.source.Fetch(ctx)
	if err != nil {
		return fmt.Errorf("fetch announced securities: %w", err)
	}
	p.logger.Info("found announced securities", "count", len(securities))

	now := p.clock.Now()
	kept := calendar.Recent(securities, params.DaysBack, now)
	p.logger.Info("filtered by auction date", "daysBack", params.DaysBack, "kept", len(kept), "dropped", len(securities)-len(kept))

	cal := calendar.Build(kept, params.Kinds, now)
	if err := calendar.Write(cal, params.OutputPath); err != nil {
		return fmt.Errorf("save calendar: %w", err)
	}
	p.logger.Info("calendar saved", "path", params.OutputPath)

	if !params.Commit {
		p.logger.Info("skipping commit (use --commit to enable)")
		return nil
	}

	p.logger.Info("committing and pushing changes")
	if err := p.publisher.Publish(ctx, params.OutputPath); err != nil {
		return fmt.Errorf("publish calendar: %w", err)
	}

	return nil
}
