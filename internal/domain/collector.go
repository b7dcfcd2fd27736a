// Package domain implements the diagnostic-normalization pipeline around
// the external Flow checker.
package domain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"flowlint.dev/pkg/flowlint/internal/adapter"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

// invalidJSONMessage is the fatal diagnostic text for unparseable
// checker output.
const invalidJSONMessage = "Flow returned invalid json"

// noisyLibraryWarning suppresses a known cross-library-definition warning
// that fires on files the user cannot fix.
const noisyLibraryWarning = "inconsistent use of"

// CheckArgs are the inputs of a single check-contents run.
type CheckArgs struct {
	Input        string
	Root         m.Path
	File         m.Path
	Offset       m.Offset
	RegisterStop bool
}

// CheckResult carries the invocation status and, when the checker ran, the
// ordered normalized diagnostics for the target file.
type CheckResult struct {
	Status         m.InvokeStatus
	CheckerVersion string
	Diagnostics    []m.Diagnostic
}

// Collector turns raw checker output into normalized per-file diagnostics.
type Collector interface {
	Collect(ctx context.Context, args CheckArgs) (CheckResult, error)
}

type collector struct {
	runner adapter.CheckerRunnerAdapter
	stops  *adapter.StopRegistry
	debug  bool
}

// NewCollector constructs a Collector backed by the provided runner. When
// debug is true every diagnostic carries the raw checker envelope.
func NewCollector(runner adapter.CheckerRunnerAdapter, stops *adapter.StopRegistry, debug bool) Collector {
	return &collector{runner: runner, stops: stops, debug: debug}
}

// Collect invokes the checker in check-contents mode, validates the JSON
// envelope, filters diagnostics to the target file and maps each survivor
// into a normalized record. Malformed output becomes a single fatal
// diagnostic instead of an error; the caller's process is never aborted.
func (c *collector) Collect(ctx context.Context, args CheckArgs) (CheckResult, error) {
	if args.RegisterStop && c.stops != nil {
		c.stops.Register(args.Root)
	}

	res, err := c.runner.Invoke(ctx, adapter.ModeCheckContents, args.Input, args.Root, args.File)
	if err != nil {
		return CheckResult{}, err
	}

	if res.Status != m.InvokeRan {
		return CheckResult{Status: res.Status}, nil
	}

	envelope, state := decodeEnvelope([]byte(res.Stdout))

	switch state {
	case envelopeMalformedJSON:
		slog.Warn("checker produced unparseable output", "file", args.File)
		return fatalResult(invalidJSONMessage), nil
	case envelopeMissingDiagnostics:
		return fatalResult(envelopeErrorMessage(envelope.ExitInfo)), nil
	}

	absFile := absolutePath(args.Root, args.File)
	diagnostics := make([]m.Diagnostic, 0, len(envelope.Diagnostics))

	for _, raw := range envelope.Diagnostics {
		primary := raw.PrimaryMessage()
		span := raw.PrimarySpan()

		if primary == nil || span == nil {
			continue
		}

		if span.Kind != m.SpanSourceFile {
			continue
		}

		if primary.Description == "" || strings.Contains(primary.Description, noisyLibraryWarning) {
			continue
		}

		if absolutePath(args.Root, m.Path(span.Source)) != absFile {
			continue
		}

		diagnostics = append(diagnostics, c.normalize(&envelope, raw, *primary, args.Root, args.Offset))
	}

	return CheckResult{
		Status:         m.InvokeRan,
		CheckerVersion: envelope.CheckerVersion,
		Diagnostics:    diagnostics,
	}, nil
}

// normalize maps one surviving raw diagnostic into the output record.
func (c *collector) normalize(envelope *m.CheckerEnvelope, raw m.RawDiagnostic, primary m.RawMessage, root m.Path, offset m.Offset) m.Diagnostic {
	message := primary.Description
	if len(raw.Extras) > 0 {
		message = Format(primary, flattenExtras(raw.Extras), root, envelope.CheckerVersion, offset.Line)
	}

	span := degenerateSpan()
	if primary.Location != nil {
		span = *primary.Location
	}

	location := m.Range{
		Start: shiftPosition(span.Start, offset),
		End:   shiftPosition(span.End, offset),
	}

	severity := m.SeverityError
	if raw.SeverityLevel != "" {
		severity = m.Severity(raw.SeverityLevel)
	}

	diagnostic := m.Diagnostic{
		Severity:  severity,
		Category:  classify(message),
		Message:   message,
		Path:      m.Path(primary.Path),
		StartLine: location.Start.Line,
		EndLine:   location.End.Line,
		Location:  location,
	}

	if c.debug {
		diagnostic.Raw = envelope
	}

	return diagnostic
}

// envelopeState classifies the decoded checker output.
type envelopeState int

const (
	envelopeOK envelopeState = iota
	envelopeMalformedJSON
	envelopeMissingDiagnostics
)

// decodeEnvelope probes the output for a diagnostics sequence before fully
// decoding it, so a structurally wrong envelope is classified instead of
// half-decoded.
func decodeEnvelope(data []byte) (m.CheckerEnvelope, envelopeState) {
	var probe struct {
		Diagnostics    json.RawMessage `json:"diagnostics"`
		CheckerVersion string          `json:"checkerVersion"`
		ExitInfo       *m.ExitInfo     `json:"exitInfo"`
	}

	if err := json.Unmarshal(data, &probe); err != nil {
		return m.CheckerEnvelope{}, envelopeMalformedJSON
	}

	trimmed := bytes.TrimSpace(probe.Diagnostics)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return m.CheckerEnvelope{
			CheckerVersion: probe.CheckerVersion,
			ExitInfo:       probe.ExitInfo,
		}, envelopeMissingDiagnostics
	}

	var envelope m.CheckerEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return m.CheckerEnvelope{}, envelopeMalformedJSON
	}

	return envelope, envelopeOK
}

// envelopeErrorMessage prefers the checker's own exit report when present.
func envelopeErrorMessage(exit *m.ExitInfo) string {
	if exit == nil {
		return invalidJSONMessage
	}

	return fmt.Sprintf("Flow returned an error: %s (code: %d)", exit.Message, exit.Code)
}

// shiftPosition translates a checker-native coordinate into the embedding
// document. The column shift applies only on line 0, since only the
// snippet's first line shares a line with preceding content.
func shiftPosition(p m.Position, offset m.Offset) m.Position {
	out := p
	out.Line = p.Line + offset.Line

	if p.Line == 0 {
		out.Column = p.Column + offset.Column
	}

	return out
}

func degenerateSpan() m.Span {
	pos := m.Position{Line: 1, Column: 1, Offset: 0}
	return m.Span{Start: pos, End: pos}
}

func classify(message string) m.Category {
	if strings.Contains(strings.ToLower(message), "missing type annotation") {
		return m.CategoryMissingAnnotation
	}

	return m.CategoryDefault
}

// flattenExtras collects the first message of each extra group; those are
// the targets of "[N]" references.
func flattenExtras(extras []m.RawExtra) []m.RawMessage {
	out := make([]m.RawMessage, 0, len(extras))

	for _, extra := range extras {
		if len(extra.Messages) == 0 {
			continue
		}

		out = append(out, extra.Messages[0])
	}

	return out
}

func fatalResult(message string) CheckResult {
	pos := m.Position{Line: 1, Column: 1}

	return CheckResult{
		Status: m.InvokeRan,
		Diagnostics: []m.Diagnostic{{
			Severity:  m.SeverityError,
			Category:  m.CategoryDefault,
			Message:   message,
			StartLine: 1,
			EndLine:   1,
			Location:  m.Range{Start: pos, End: pos},
		}},
	}
}

func absolutePath(root, path m.Path) m.Path {
	p := string(path)
	if !filepath.IsAbs(p) {
		p = filepath.Join(string(root), p)
	}

	return m.Path(filepath.Clean(p))
}
