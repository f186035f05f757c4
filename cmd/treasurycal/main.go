package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"TreasuryCalendar/internal/app"
	"TreasuryCalendar/internal/config"
	"TreasuryCalendar/internal/domain"
	"TreasuryCalendar/internal/logging"
	"TreasuryCalendar/internal/usecase"
)

// eventKinds is a repeatable --event-type flag value.
type eventKinds []domain.EventKind

func (e *eventKinds) String() string {
	parts := make([]string, len(*e))
	for i, k := range *e {
		parts[i] = string(k)
	}
	return strings.Join(parts, ",")
}

func (e *eventKinds) Set(value string) error {
	kind, err := domain.ParseEventKind(value)
	if err != nil {
		return err
	}
	for _, existing := range *e {
		if existing == kind {
			return nil
		}
	}
	*e = append(*e, kind)
	return nil
}

func main() {
	var (
		commit   bool
		daysBack int
		kinds    eventKinds
	)
	flag.BoolVar(&commit, "commit", false, "commit and push the generated calendar")
	flag.BoolVar(&commit, "c", false, "shorthand for -commit")
	flag.IntVar(&daysBack, "days-back", 7, "include auctions from the last N days")
	flag.Var(&kinds, "event-type", "event kind to include: announcement or auction (repeatable, default auction)")
	flag.Parse()

	if daysBack < 0 {
		fmt.Fprintln(os.Stderr, "days-back must not be negative")
		os.Exit(2)
	}
	if len(kinds) == 0 {
		kinds = eventKinds{domain.KindAuction}
	}

	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	err := application.Run(context.Background(), usecase.RunParams{
		DaysBack: daysBack,
		Kinds:    kinds,
		Commit:   commit,
	})
	if err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("done")
}
