// Package model defines the data structures exchanged with the Flow checker
// and the normalized records handed to consumers.
package model

// Path represents a file system path.
type Path string

// Offset is the line/column adjustment applied when the checked text is an
// excerpt embedded in a larger document (e.g. a script block inside a
// template). Line is added to every reported line; Column applies only to
// coordinates the checker reports on line 0, since only the snippet's first
// line shares a line with preceding content.
type Offset struct {
	Line   int
	Column int
}

// InvokeStatus distinguishes the three outcomes of running the checker.
type InvokeStatus int

const (
	// InvokeSkipped means the input was empty; no process was spawned.
	InvokeSkipped InvokeStatus = iota
	// InvokeUnsupported means the checker produced no output, e.g. an
	// unsupported platform or architecture.
	InvokeUnsupported
	// InvokeRan means the checker ran and produced stdout text.
	InvokeRan
)

// String returns a human-readable label for the status.
func (s InvokeStatus) String() string {
	switch s {
	case InvokeSkipped:
		return "skipped"
	case InvokeUnsupported:
		return "unsupported"
	case InvokeRan:
		return "ran"
	}

	return "unknown"
}

// InvokeResult is the outcome of a single checker invocation. Stdout is only
// meaningful when Status is InvokeRan.
type InvokeResult struct {
	Status InvokeStatus
	Stdout string
}
