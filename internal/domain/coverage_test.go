package domain

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flowlint.dev/pkg/flowlint/internal/adapter"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

func coverageWith(t *testing.T, runner *stubRunner) CoverageOutcome {
	t.Helper()

	outcome, err := NewCoverageCollector(runner, nil).Coverage(context.Background(), CoverageArgs{
		Input: "var x = 1",
		Root:  "/project",
		File:  "main.js",
	})
	require.NoError(t, err)

	return outcome
}

func TestCoverage_UsesCoverageMode(t *testing.T) {
	runner := ranWith(`{"expressions":{"covered_count":10,"uncovered_count":2}}`)

	coverageWith(t, runner)

	assert.Equal(t, adapter.ModeCoverage, runner.mode)
}

func TestCoverage_ExtractsCounters(t *testing.T) {
	outcome := coverageWith(t, ranWith(`{"expressions":{"covered_count":10,"uncovered_count":2}}`))

	assert.Equal(t, m.InvokeRan, outcome.Status)
	assert.Equal(t, m.CoverageResult{CoveredCount: 10, UncoveredCount: 2}, outcome.Result)
}

func TestCoverage_MalformedOutputDegradesToZero(t *testing.T) {
	outcome := coverageWith(t, ranWith("not json"))

	assert.Equal(t, m.InvokeRan, outcome.Status)
	assert.Equal(t, m.CoverageResult{}, outcome.Result)
}

func TestCoverage_MissingExpressionsDegradesToZero(t *testing.T) {
	outcome := coverageWith(t, ranWith(`{"something":"else"}`))

	assert.Equal(t, m.InvokeRan, outcome.Status)
	assert.Equal(t, m.CoverageResult{}, outcome.Result)
}

func TestCoverage_SkippedPassesThrough(t *testing.T) {
	outcome := coverageWith(t, &stubRunner{result: m.InvokeResult{Status: m.InvokeSkipped}})

	assert.Equal(t, m.InvokeSkipped, outcome.Status)
}

func TestCoverage_UnsupportedPassesThrough(t *testing.T) {
	outcome := coverageWith(t, &stubRunner{result: m.InvokeResult{Status: m.InvokeUnsupported}})

	assert.Equal(t, m.InvokeUnsupported, outcome.Status)
}

func TestCoverage_RegistersStopForRoot(t *testing.T) {
	runner := ranWith(`{"expressions":{"covered_count":1,"uncovered_count":0}}`)
	registry := adapter.NewStopRegistry(runner)

	_, err := NewCoverageCollector(runner, registry).Coverage(context.Background(), CoverageArgs{
		Input:        "var x = 1",
		Root:         "/project",
		File:         "main.js",
		RegisterStop: true,
	})
	require.NoError(t, err)

	assert.Equal(t, []m.Path{"/project"}, registry.Roots())
}
