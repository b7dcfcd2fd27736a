package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"flowlint.dev/pkg/flowlint/internal/domain"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

var checkParallelFlag int
var checkOffsetLineFlag int
var checkOffsetColumnFlag int
var checkStopOnExitFlag bool

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Check files with Flow and report diagnostics",
		Long:  checkLongDescription,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			ensureChecker()

			return workflow.Check(context.Background(), domain.CheckBatchArgs{
				Files: parsePaths(args),
				Root:  m.Path(viper.GetString(rootFlagName)),
				Offset: m.Offset{
					Line:   checkOffsetLineFlag,
					Column: checkOffsetColumnFlag,
				},
				Threads:      viper.GetInt(checkParallelConfigKey),
				Reports:      m.Path(viper.GetString(outputFlagName)),
				RegisterStop: checkStopOnExitFlag,
			})
		},
	}

	configureCheckFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func configureCheckFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&checkParallelFlag, checkParallelFlagName, "p", viper.GetInt(checkParallelConfigKey), "number of parallel checker invocations")
	bindFlagToConfig(cmd.Flags().Lookup(checkParallelFlagName), checkParallelConfigKey)

	cmd.Flags().IntVar(&checkOffsetLineFlag, "offset-line", 0, "line offset of the snippet within its embedding document")
	cmd.Flags().IntVar(&checkOffsetColumnFlag, "offset-column", 0, "column offset applied to coordinates on the snippet's first line")
	cmd.Flags().BoolVar(&checkStopOnExitFlag, "stop-on-exit", false, "stop the Flow background server for the root when flowlint exits")
}
