package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

func blame(path, description string, line int) m.RawMessage {
	return m.RawMessage{
		Path:        path,
		Description: description,
		Kind:        m.MessageBlame,
		Line:        line,
		EndLine:     line,
	}
}

func TestFormat_UnmatchedTokenLeftVerbatim(t *testing.T) {
	message := blame("/project/main.js", "Cannot unify A with B [9]", 2)

	out := Format(message, nil, "/project", "0.120.0", 0)

	assert.Equal(t, "Cannot unify A with B [9]", out)
}

func TestFormat_SameFileSameLineRemovesToken(t *testing.T) {
	message := blame("/project/main.js", "property is missing [1]", 2)
	extras := []m.RawMessage{blame("/project/main.js", "[1]", 2)}

	out := Format(message, extras, "/project", "0.120.0", 0)

	assert.Equal(t, "property is missing", out)
}

func TestFormat_SameFileDifferentLine(t *testing.T) {
	message := blame("/project/main.js", "property is missing [1]", 2)
	extras := []m.RawMessage{blame("/project/main.js", "[1]", 7)}

	out := Format(message, extras, "/project", "0.120.0", 0)

	assert.Equal(t, "property is missing (see line 7)", out)
}

func TestFormat_SameFileDifferentLineWithOffset(t *testing.T) {
	message := blame("/project/main.js", "property is missing [1]", 2)
	extras := []m.RawMessage{blame("/project/main.js", "[1]", 7)}

	out := Format(message, extras, "/project", "0.120.0", 5)

	assert.Equal(t, "property is missing (see line 12)", out)
}

func TestFormat_CrossFileSourceReference(t *testing.T) {
	message := blame("/project/main.js", "incompatible with tuple type [2]", 3)
	extras := []m.RawMessage{blame("/project/lib/util.js", "[2]", 12)}

	out := Format(message, extras, "/project", "0.120.0", 0)

	assert.Equal(t, "incompatible with tuple type (see ./lib/util.js:12)", out)
}

func TestFormat_LibFileReferenceIsVersionPinnedURL(t *testing.T) {
	extra := blame("/flow/lib/core.js", "[3]", 208)
	extra.Location = &m.Span{Kind: m.SpanLibFile}
	message := blame("/project/main.js", "incompatible with Promise [3]", 3)

	out := Format(message, []m.RawMessage{extra}, "/project", "0.120.0", 0)

	assert.Equal(t,
		"incompatible with Promise (see https://github.com/facebook/flow/blob/v0.120.0/lib/core.js#L208)",
		out)
}

func TestFormat_MultipleTokensInOnePass(t *testing.T) {
	message := blame("/project/main.js", "A [1] is incompatible with B [2]", 4)
	extras := []m.RawMessage{
		blame("/project/main.js", "[1]", 4),
		blame("/project/main.js", "[2]", 9),
	}

	out := Format(message, extras, "/project", "0.120.0", 0)

	assert.Equal(t, "A is incompatible with B (see line 9)", out)
}

func TestFormat_InputsNotMutated(t *testing.T) {
	message := blame("/project/main.js", "property is missing [1]", 2)
	extras := []m.RawMessage{blame("/project/main.js", "[1]", 7)}

	Format(message, extras, "/project", "0.120.0", 0)

	assert.Equal(t, "property is missing [1]", message.Description)
	assert.Equal(t, "[1]", extras[0].Description)
}
