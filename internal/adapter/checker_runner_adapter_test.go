package adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

// writeStub creates a fake checker binary from a shell script body.
func writeStub(t *testing.T, script string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "flow-stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))

	return path
}

func TestInvoke_EmptyInputSkipsWithoutSpawning(t *testing.T) {
	// The binary does not exist; an empty input must never reach it.
	adapter := NewLocalCheckerRunnerAdapter(filepath.Join(t.TempDir(), "missing"))

	result, err := adapter.Invoke(context.Background(), ModeCheckContents, "", "/project", "main.js")
	require.NoError(t, err)

	assert.Equal(t, m.InvokeSkipped, result.Status)
	assert.Empty(t, result.Stdout)
}

func TestInvoke_CapturesStdout(t *testing.T) {
	adapter := NewLocalCheckerRunnerAdapter(writeStub(t, `echo '{"diagnostics":[]}'`))

	result, err := adapter.Invoke(context.Background(), ModeCheckContents, "var x = 1", "/project", "main.js")
	require.NoError(t, err)

	assert.Equal(t, m.InvokeRan, result.Status)
	assert.Contains(t, result.Stdout, `"diagnostics"`)
}

func TestInvoke_NoStdoutMeansUnsupported(t *testing.T) {
	adapter := NewLocalCheckerRunnerAdapter(writeStub(t, `exit 0`))

	result, err := adapter.Invoke(context.Background(), ModeCheckContents, "var x = 1", "/project", "main.js")
	require.NoError(t, err)

	assert.Equal(t, m.InvokeUnsupported, result.Status)
}

func TestInvoke_PipesInputToStdin(t *testing.T) {
	adapter := NewLocalCheckerRunnerAdapter(writeStub(t, `cat`))

	result, err := adapter.Invoke(context.Background(), ModeCheckContents, "var x = 1\n", "/project", "main.js")
	require.NoError(t, err)

	assert.Equal(t, m.InvokeRan, result.Status)
	assert.Equal(t, "var x = 1\n", result.Stdout)
}

func TestInvoke_PassesModeAndArguments(t *testing.T) {
	adapter := NewLocalCheckerRunnerAdapter(writeStub(t, `echo "$@"`))

	result, err := adapter.Invoke(context.Background(), ModeCoverage, "var x = 1", "/project", "main.js")
	require.NoError(t, err)

	assert.Contains(t, result.Stdout, "coverage --json --root=/project main.js")
}

func TestInvoke_NonZeroExitStillReturnsStdout(t *testing.T) {
	// The checker exits non-zero when it finds errors; that is not a failure.
	adapter := NewLocalCheckerRunnerAdapter(writeStub(t, `echo '{"diagnostics":[]}'; exit 2`))

	result, err := adapter.Invoke(context.Background(), ModeCheckContents, "var x = 1", "/project", "main.js")
	require.NoError(t, err)

	assert.Equal(t, m.InvokeRan, result.Status)
}

func TestStop_RunsStopMode(t *testing.T) {
	marker := filepath.Join(t.TempDir(), "args")
	adapter := NewLocalCheckerRunnerAdapter(writeStub(t, `echo "$@" > `+marker))

	require.NoError(t, adapter.Stop("/project"))

	recorded, err := os.ReadFile(marker)
	require.NoError(t, err)
	assert.Equal(t, "stop /project\n", string(recorded))
}

func TestStop_ReportsFailure(t *testing.T) {
	adapter := NewLocalCheckerRunnerAdapter(writeStub(t, `exit 1`))

	err := adapter.Stop("/project")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "/project")
}

func TestResolveCheckerBinary_OverrideWins(t *testing.T) {
	binary, err := ResolveCheckerBinary("/opt/flow/bin/flow")
	require.NoError(t, err)

	assert.Equal(t, "/opt/flow/bin/flow", binary)
}

func TestResolveCheckerBinary_MissingFromPath(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := ResolveCheckerBinary("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "flow")
}
