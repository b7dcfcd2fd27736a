// Package controller provides output adapters for displaying normalized
// checker results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

// UI defines the interface for rendering checker results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayDiagnostics(ctx context.Context, file m.Path, diagnostics []m.Diagnostic) error
	DisplaySkipped(ctx context.Context, file m.Path)
	DisplayUnsupported(ctx context.Context, file m.Path)
	DisplayCoverage(ctx context.Context, file m.Path, result m.CoverageResult) error
	DisplaySummary(ctx context.Context, files, diagnostics int)
	DisplayReports(ctx context.Context, reports []m.FileReport) error
}

// NewUI builds the UI for the given command. On a TTY the report viewer
// pages long output; otherwise everything is printed straight through.
func NewUI(cmd *cobra.Command, tty bool) UI {
	return NewSimpleUI(cmd, tty)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
