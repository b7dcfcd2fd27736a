package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"flowlint.dev/pkg/flowlint/internal/adapter"
	"flowlint.dev/pkg/flowlint/internal/controller"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

// CheckBatchArgs drive a batch check over many files. Each file gets its
// own checker invocation on its own process handle.
type CheckBatchArgs struct {
	Files        []m.Path
	Root         m.Path
	Offset       m.Offset
	Threads      int
	Reports      m.Path
	RegisterStop bool
}

// CoverageRunArgs drive a coverage run for a single file.
type CoverageRunArgs struct {
	File         m.Path
	Root         m.Path
	RegisterStop bool
}

// ViewArgs drive re-rendering of previously saved reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow ties the collectors, the report store and the UI together.
type Workflow interface {
	Check(ctx context.Context, args CheckBatchArgs) error
	Coverage(ctx context.Context, args CoverageRunArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.SourceFSAdapter
	adapter.ReportStore
	controller.UI

	collector Collector
	coverage  CoverageCollector
}

// NewWorkflow creates a Workflow with the provided dependencies.
func NewWorkflow(
	fs adapter.SourceFSAdapter,
	store adapter.ReportStore,
	ui controller.UI,
	collector Collector,
	coverage CoverageCollector,
) Workflow {
	return &workflow{
		SourceFSAdapter: fs,
		ReportStore:     store,
		UI:              ui,
		collector:       collector,
		coverage:        coverage,
	}
}

// Check runs the collector over every file with a bounded worker pool,
// renders the results in input order and persists them to the reports dir.
func (w *workflow) Check(ctx context.Context, args CheckBatchArgs) error {
	threads := args.Threads
	if threads < 1 {
		threads = 1
	}

	results := make([]CheckResult, len(args.Files))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(threads)

	for i, file := range args.Files {
		group.Go(func() error {
			content, err := w.ReadFile(w.Abs(args.Root, file))
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}

			result, err := w.collector.Collect(groupCtx, CheckArgs{
				Input:        string(content),
				Root:         args.Root,
				File:         file,
				Offset:       args.Offset,
				RegisterStop: args.RegisterStop,
			})
			if err != nil {
				return fmt.Errorf("check %s: %w", file, err)
			}

			results[i] = result

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		slog.Error("batch check failed", "error", err)
		return err
	}

	reports := make([]m.FileReport, 0, len(args.Files))
	total := 0

	for i, file := range args.Files {
		result := results[i]

		switch result.Status {
		case m.InvokeSkipped:
			w.DisplaySkipped(ctx, file)
			continue
		case m.InvokeUnsupported:
			w.DisplayUnsupported(ctx, file)
			continue
		}

		if err := w.DisplayDiagnostics(ctx, file, result.Diagnostics); err != nil {
			return err
		}

		reports = append(reports, m.FileReport{
			File:           file,
			CheckerVersion: result.CheckerVersion,
			Diagnostics:    result.Diagnostics,
		})
		total += len(result.Diagnostics)
	}

	w.DisplaySummary(ctx, len(reports), total)

	if args.Reports != "" {
		if err := w.SaveReports(args.Reports, reports); err != nil {
			slog.Error("failed to save reports", "reports", args.Reports, "error", err)
			return err
		}
	}

	return nil
}

// Coverage runs the coverage collector for one file and renders the counters.
func (w *workflow) Coverage(ctx context.Context, args CoverageRunArgs) error {
	content, err := w.ReadFile(w.Abs(args.Root, args.File))
	if err != nil {
		return fmt.Errorf("read %s: %w", args.File, err)
	}

	outcome, err := w.coverage.Coverage(ctx, CoverageArgs{
		Input:        string(content),
		Root:         args.Root,
		File:         args.File,
		RegisterStop: args.RegisterStop,
	})
	if err != nil {
		return fmt.Errorf("coverage %s: %w", args.File, err)
	}

	switch outcome.Status {
	case m.InvokeSkipped:
		w.DisplaySkipped(ctx, args.File)
		return nil
	case m.InvokeUnsupported:
		w.DisplayUnsupported(ctx, args.File)
		return nil
	}

	return w.DisplayCoverage(ctx, args.File, outcome.Result)
}

// View loads previously saved reports and pages through them.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.LoadReports(args.Reports)
	if err != nil {
		slog.Error("failed to load reports", "reports", args.Reports, "error", err)
		return err
	}

	return w.DisplayReports(ctx, reports)
}
