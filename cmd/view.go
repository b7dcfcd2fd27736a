package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flowlint.dev/pkg/flowlint/internal/domain"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View previously generated diagnostic reports",
		Long:  "View previously generated diagnostic reports from a reports directory.",
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			ensureViewer()

			reportsPath := m.Path(viper.GetString(outputFlagName))
			return workflow.View(context.Background(), domain.ViewArgs{Reports: reportsPath})
		},
	}

	return cmd
}

// ensureViewer wires a workflow without resolving the checker binary; view
// only reads saved reports.
func ensureViewer() {
	if workflow != nil {
		return
	}

	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, nil, nil)
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
