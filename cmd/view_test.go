package cmd

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"flowlint.dev/pkg/flowlint/internal/domain"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

func TestViewCmd_UsesConfiguredReportsDir(t *testing.T) {
	mockWorkflow := withMockWorkflow(t)

	cmd, _ := newTestRootCmd()
	cmd.AddCommand(newViewCmd())

	mockWorkflow.On("View", mock.Anything, mock.MatchedBy(func(args domain.ViewArgs) bool {
		return args.Reports == m.Path(".flowlint-reports")
	})).Return(nil)

	cmd.SetArgs([]string{"view"})
	err := cmd.Execute()
	require.NoError(t, err)

	mockWorkflow.AssertExpectations(t)
}
