package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

// refToken matches a trailing bracketed cross-reference such as " [3]".
var refToken = regexp.MustCompile(` \[(\d+)\]`)

// libReferenceURL points a library-file reference at the checker's bundled
// definitions, pinned to the checker version so the line numbers stay valid.
const libReferenceURL = "https://github.com/facebook/flow/blob/v%s/lib/%s#L%d"

// Format resolves every " [N]" reference token in the message's description
// against the extra messages. Tokens with no matching extra are left
// verbatim. Pure text substitution; inputs are not mutated.
func Format(message m.RawMessage, extras []m.RawMessage, root m.Path, checkerVersion string, lineOffset int) string {
	return refToken.ReplaceAllStringFunc(message.Description, func(match string) string {
		token := strings.TrimPrefix(match, " ")

		extra := findExtra(extras, token)
		if extra == nil {
			return match
		}

		if extra.Path != message.Path {
			return fmt.Sprintf(" (see %s)", crossFileReference(*extra, root, checkerVersion))
		}

		// A reference to the very line it annotates adds nothing.
		if extra.Line == message.Line {
			return ""
		}

		return fmt.Sprintf(" (see line %d)", lineOffset+extra.Line)
	})
}

// findExtra returns the extra whose description equals the bracket token
// exactly, e.g. "[3]".
func findExtra(extras []m.RawMessage, token string) *m.RawMessage {
	for i := range extras {
		if extras[i].Description == token {
			return &extras[i]
		}
	}

	return nil
}

// crossFileReference renders a reference into another file: a version-pinned
// library URL for checker-bundled definitions, else a root-relative path
// with forward slashes regardless of platform.
func crossFileReference(extra m.RawMessage, root m.Path, checkerVersion string) string {
	if extra.Location != nil && extra.Location.Kind == m.SpanLibFile {
		return fmt.Sprintf(libReferenceURL, checkerVersion, filepath.Base(extra.Path), extra.Line)
	}

	rel := strings.TrimPrefix(extra.Path, string(root))

	return fmt.Sprintf(".%s:%d", filepath.ToSlash(rel), extra.Line)
}
