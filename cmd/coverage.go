package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flowlint.dev/pkg/flowlint/internal/domain"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

var coverageStopOnExitFlag bool

// coverageCmd represents the coverage command.
var coverageCmd = newCoverageCmd()

func newCoverageCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "coverage <file>",
		Short: "Report Flow expression coverage for a file",
		Long:  "Report how many expressions Flow could type in the given file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ensureChecker()

			return workflow.Coverage(context.Background(), domain.CoverageRunArgs{
				File:         m.Path(args[0]),
				Root:         m.Path(viper.GetString(rootFlagName)),
				RegisterStop: coverageStopOnExitFlag,
			})
		},
	}

	cmd.Flags().BoolVar(&coverageStopOnExitFlag, "stop-on-exit", false, "stop the Flow background server for the root when flowlint exits")

	return cmd
}

func init() {
	rootCmd.AddCommand(coverageCmd)
}
