package model

// Severity is the normalized diagnostic level.
type Severity string

// Available Severity values.
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Category classifies a normalized diagnostic for consumers that want to
// treat annotation gaps differently from ordinary type errors.
type Category string

// Available Category values.
const (
	CategoryMissingAnnotation Category = "missing-annotation"
	CategoryDefault           Category = "default"
)

// Position is a checker-native line/column coordinate plus an optional
// byte offset into the file.
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
	Offset int `json:"offset,omitempty" yaml:"offset,omitempty"`
}

// Span location kinds as reported by the checker.
const (
	// SpanSourceFile marks a location inside user code.
	SpanSourceFile = "SourceFile"
	// SpanLibFile marks a location inside the checker's bundled
	// type-definition files.
	SpanLibFile = "LibFile"
)

// Span locates a run of text in a source or library file.
type Span struct {
	Start  Position `json:"start"`
	End    Position `json:"end"`
	Source string   `json:"source,omitempty"`
	Kind   string   `json:"kind,omitempty"`
}

// Raw message kinds as reported by the checker.
const (
	MessageBlame   = "Blame"
	MessageComment = "Comment"
)

// RawMessage is one segment of a checker diagnostic. A diagnostic is a
// non-empty ordered sequence of these; the first is the primary message.
type RawMessage struct {
	Path        string `json:"path"`
	Description string `json:"description"`
	Kind        string `json:"kind"`
	Line        int    `json:"line"`
	EndLine     int    `json:"endLine"`
	Location    *Span  `json:"location,omitempty"`
}

// RawExtra is an auxiliary message group referenced by bracketed "[N]"
// placeholders inside another message's description.
type RawExtra struct {
	Messages []RawMessage `json:"messages"`
}

// RawDiagnostic is one diagnostic as emitted by the checker.
type RawDiagnostic struct {
	Messages      []RawMessage `json:"messages"`
	SeverityLevel string       `json:"severityLevel,omitempty"`
	Operation     *RawMessage  `json:"operation,omitempty"`
	Extras        []RawExtra   `json:"extras,omitempty"`
}

// PrimaryMessage returns the first message, or nil for a malformed
// (empty) diagnostic.
func (d RawDiagnostic) PrimaryMessage() *RawMessage {
	if len(d.Messages) == 0 {
		return nil
	}

	return &d.Messages[0]
}

// PrimarySpan returns the location that decides which file the diagnostic
// belongs to: the operation's location when present, else the first
// message's location.
func (d RawDiagnostic) PrimarySpan() *Span {
	if d.Operation != nil && d.Operation.Location != nil {
		return d.Operation.Location
	}

	if primary := d.PrimaryMessage(); primary != nil {
		return primary.Location
	}

	return nil
}

// ExitInfo is the checker's own exit report inside the envelope.
type ExitInfo struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// CheckerEnvelope is the full JSON result of a check-contents invocation.
type CheckerEnvelope struct {
	Diagnostics    []RawDiagnostic `json:"diagnostics"`
	CheckerVersion string          `json:"checkerVersion"`
	ExitInfo       *ExitInfo       `json:"exitInfo,omitempty"`
}

// Range is the normalized output location, already shifted by the
// embedding offset.
type Range struct {
	Start Position `yaml:"start"`
	End   Position `yaml:"end"`
}

// Diagnostic is the normalized per-file output record. Produced fresh per
// invocation; there is no persistent identity across runs.
type Diagnostic struct {
	Severity  Severity `yaml:"severity"`
	Category  Category `yaml:"category"`
	Message   string   `yaml:"message"`
	Path      Path     `yaml:"path"`
	StartLine int      `yaml:"startLine"`
	EndLine   int      `yaml:"endLine"`
	Location  Range    `yaml:"location"`

	// Raw carries the entire checker envelope when debug output is
	// enabled. Not part of the stable contract.
	Raw *CheckerEnvelope `yaml:"raw,omitempty"`
}
