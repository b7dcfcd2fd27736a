package domain

import (
	"context"
	"encoding/json"
	"log/slog"

	"flowlint.dev/pkg/flowlint/internal/adapter"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

// CoverageArgs are the inputs of a single coverage run.
type CoverageArgs struct {
	Input        string
	Root         m.Path
	File         m.Path
	RegisterStop bool
}

// CoverageOutcome carries the invocation status and, when the checker ran,
// the extracted counters.
type CoverageOutcome struct {
	Status m.InvokeStatus
	Result m.CoverageResult
}

// CoverageCollector extracts expression coverage counters from the checker.
type CoverageCollector interface {
	Coverage(ctx context.Context, args CoverageArgs) (CoverageOutcome, error)
}

type coverageCollector struct {
	runner adapter.CheckerRunnerAdapter
	stops  *adapter.StopRegistry
}

// NewCoverageCollector constructs a CoverageCollector backed by the
// provided runner.
func NewCoverageCollector(runner adapter.CheckerRunnerAdapter, stops *adapter.StopRegistry) CoverageCollector {
	return &coverageCollector{runner: runner, stops: stops}
}

// Coverage invokes the checker in coverage mode. Unusable output degrades
// silently to zero counts; coverage is advisory, not an error path.
func (c *coverageCollector) Coverage(ctx context.Context, args CoverageArgs) (CoverageOutcome, error) {
	if args.RegisterStop && c.stops != nil {
		c.stops.Register(args.Root)
	}

	res, err := c.runner.Invoke(ctx, adapter.ModeCoverage, args.Input, args.Root, args.File)
	if err != nil {
		return CoverageOutcome{}, err
	}

	if res.Status != m.InvokeRan {
		return CoverageOutcome{Status: res.Status}, nil
	}

	var envelope m.CoverageEnvelope
	if err := json.Unmarshal([]byte(res.Stdout), &envelope); err != nil || envelope.Expressions == nil {
		slog.Debug("coverage output not usable", "file", args.File)
		return CoverageOutcome{Status: m.InvokeRan}, nil
	}

	return CoverageOutcome{
		Status: m.InvokeRan,
		Result: m.CoverageResult{
			CoveredCount:   envelope.Expressions.CoveredCount,
			UncoveredCount: envelope.Expressions.UncoveredCount,
		},
	}, nil
}
