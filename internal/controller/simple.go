package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd   *cobra.Command
	pager bool
}

// NewSimpleUI creates a new SimpleUI. When pager is true, DisplayReports
// hands long output to the interactive viewer.
func NewSimpleUI(cmd *cobra.Command, pager bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, pager: pager}
}

// DisplayDiagnostics renders one file's diagnostics as a table.
func (s *SimpleUI) DisplayDiagnostics(ctx context.Context, file m.Path, diagnostics []m.Diagnostic) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s", renderDiagnosticsTable(file, diagnostics))

	return nil
}

// DisplaySkipped notes a file that had no content to check.
func (s *SimpleUI) DisplaySkipped(ctx context.Context, file m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s: nothing to check\n", file)
}

// DisplayUnsupported notes a file the checker could not run against.
func (s *SimpleUI) DisplayUnsupported(ctx context.Context, file m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("%s: checker produced no output (unsupported environment?)\n", file)
}

// DisplayCoverage prints the coverage counters for a file.
func (s *SimpleUI) DisplayCoverage(ctx context.Context, file m.Path, result m.CoverageResult) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	total := result.CoveredCount + result.UncoveredCount
	if total == 0 {
		s.printf("%s: no expressions\n", file)
		return nil
	}

	percent := float64(result.CoveredCount) / float64(total) * 100
	s.printf("%s: %d/%d expressions covered (%.1f%%)\n", file, result.CoveredCount, total, percent)

	return nil
}

// DisplaySummary prints the final file/diagnostic totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, files, diagnostics int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Checked %d file(s), %d issue(s)\n", files, diagnostics)
}

// DisplayReports re-renders saved reports, paging on a TTY when the output
// is long.
func (s *SimpleUI) DisplayReports(ctx context.Context, reports []m.FileReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(reports) == 0 {
		s.printf("No saved reports\n")
		return nil
	}

	var content bytes.Buffer
	for _, report := range reports {
		content.WriteString(renderDiagnosticsTable(report.File, report.Diagnostics))
	}

	if s.pager {
		return pageContent(s.cmd.OutOrStdout(), content.String())
	}

	s.printf("%s", content.String())

	return nil
}

func renderDiagnosticsTable(file m.Path, diagnostics []m.Diagnostic) string {
	if len(diagnostics) == 0 {
		return fmt.Sprintf("%s: no issues found\n", file)
	}

	var buffer bytes.Buffer

	fmt.Fprintf(&buffer, "%s\n", file)

	table := tablewriter.NewWriter(&buffer)
	table.SetHeader([]string{"Line", "Col", "Severity", "Category", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, diagnostic := range diagnostics {
		table.Append([]string{
			strconv.Itoa(diagnostic.StartLine),
			strconv.Itoa(diagnostic.Location.Start.Column),
			severityLabel(diagnostic.Severity),
			string(diagnostic.Category),
			diagnostic.Message,
		})
	}

	table.Render()

	return buffer.String()
}

func severityLabel(severity m.Severity) string {
	switch severity {
	case m.SeverityWarning:
		return warningStyle.Render(string(severity))
	default:
		return errorStyle.Render(string(severity))
	}
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
