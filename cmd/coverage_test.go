package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flowlint.dev/pkg/flowlint/internal/domain"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

func TestCoverageCmd_ForwardsArgs(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd, _ := newTestRootCmd()
	cmd.AddCommand(newCoverageCmd())

	mockWorkflow.On("Coverage", mock.Anything, mock.MatchedBy(func(args domain.CoverageRunArgs) bool {
		return args.File == m.Path("main.js")
	})).Return(nil)

	cmd.SetArgs([]string{"coverage", "main.js"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}

func TestCoverageCmd_RequiresExactlyOneFile(t *testing.T) {
	withMockWorkflow(t)

	cmd, _ := newTestRootCmd()
	cmd.AddCommand(newCoverageCmd())

	cmd.SetArgs([]string{"coverage", "a.js", "b.js"})
	err := cmd.Execute()

	require.Error(t, err)
}
