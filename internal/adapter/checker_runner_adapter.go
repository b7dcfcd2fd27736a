// Package adapter contains infrastructure adapters for the flowlint CLI.
package adapter

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

// Checker command modes.
const (
	// ModeCheckContents type-checks source text piped on stdin.
	ModeCheckContents = "check-contents"
	// ModeCoverage reports expression coverage for source text on stdin.
	ModeCoverage = "coverage"
	// ModeStop asks the checker to shut down its background server.
	ModeStop = "stop"
)

// DefaultCheckerBinary is the binary looked up on PATH when no override
// is configured.
const DefaultCheckerBinary = "flow"

// CheckerRunnerAdapter abstracts invocations of the external Flow binary so
// the collection pipeline can be tested without spawning processes.
type CheckerRunnerAdapter interface {
	// Invoke runs the checker in the given mode with input piped to its
	// stdin. It blocks until the process exits; no timeout is imposed at
	// this layer, callers needing bounded latency pass a deadline ctx.
	Invoke(ctx context.Context, mode, input string, root, file m.Path) (m.InvokeResult, error)

	// Stop synchronously asks the checker to stop its background server
	// for the given root.
	Stop(root m.Path) error
}

// LocalCheckerRunnerAdapter runs the checker via os/exec.
type LocalCheckerRunnerAdapter struct {
	binary string
}

// NewLocalCheckerRunnerAdapter constructs an adapter around the resolved
// checker binary path.
func NewLocalCheckerRunnerAdapter(binary string) *LocalCheckerRunnerAdapter {
	return &LocalCheckerRunnerAdapter{binary: binary}
}

// ResolveCheckerBinary returns the checker binary to run: the override when
// non-empty, else a PATH lookup of the default binary name.
func ResolveCheckerBinary(override string) (string, error) {
	if strings.TrimSpace(override) != "" {
		return override, nil
	}

	path, err := exec.LookPath(DefaultCheckerBinary)
	if err != nil {
		return "", fmt.Errorf("checker binary %q not found on PATH: %w", DefaultCheckerBinary, err)
	}

	return path, nil
}

// Invoke runs the checker synchronously with input on stdin and captures its
// stdout. An empty input short-circuits to InvokeSkipped without spawning a
// process; empty stdout maps to InvokeUnsupported.
func (a *LocalCheckerRunnerAdapter) Invoke(ctx context.Context, mode, input string, root, file m.Path) (m.InvokeResult, error) {
	if input == "" {
		return m.InvokeResult{Status: m.InvokeSkipped}, nil
	}

	cmd := exec.CommandContext(ctx, a.binary, mode, "--json", "--root="+string(root), string(file))
	cmd.Stdin = strings.NewReader(input)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	// The checker exits non-zero when it finds errors; only the absence of
	// stdout signals a broken environment.
	if err := cmd.Run(); err != nil {
		slog.Debug("checker exited with error", "mode", mode, "file", file, "error", err, "stderr", stderr.String())
	}

	if stdout.Len() == 0 {
		return m.InvokeResult{Status: m.InvokeUnsupported}, nil
	}

	return m.InvokeResult{Status: m.InvokeRan, Stdout: stdout.String()}, nil
}

// Stop runs the checker's stop mode for root. No stdin, output discarded.
func (a *LocalCheckerRunnerAdapter) Stop(root m.Path) error {
	cmd := exec.Command(a.binary, ModeStop, string(root))

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("stop checker server for %s: %w", root, err)
	}

	return nil
}
