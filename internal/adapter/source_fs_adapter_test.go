package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "flowlint.dev/pkg/flowlint/internal/model"
)

func TestLocalSourceFSAdapter_ReadFile(t *testing.T) {
	fs := NewLocalSourceFSAdapter()

	path := filepath.Join(t.TempDir(), "main.js")
	require.NoError(t, os.WriteFile(path, []byte("var x = 1\n"), 0o600))

	content, err := fs.ReadFile(m.Path(path))
	require.NoError(t, err)

	assert.Equal(t, "var x = 1\n", string(content))
}

func TestLocalSourceFSAdapter_Abs(t *testing.T) {
	fs := NewLocalSourceFSAdapter()

	assert.EqualValues(t, filepath.Join("/project", "src", "main.js"), fs.Abs("/project", "src/main.js"))
	assert.EqualValues(t, "/elsewhere/main.js", fs.Abs("/project", "/elsewhere/main.js"))
}
