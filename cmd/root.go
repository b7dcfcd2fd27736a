// Package cmd provides the root command and CLI setup for flowlint.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"flowlint.dev/pkg/flowlint/internal/adapter"
	"flowlint.dev/pkg/flowlint/internal/controller"
	"flowlint.dev/pkg/flowlint/internal/domain"
	m "flowlint.dev/pkg/flowlint/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var checkerAdapter adapter.CheckerRunnerAdapter
var stopRegistry *adapter.StopRegistry
var checkCollector domain.Collector
var coverageCollector domain.CoverageCollector
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that
// read/write reports.
var reportsOutputDirFlag string

// rootPathFlag is the Flow project root diagnostics are resolved against.
var rootPathFlag string

// logFileFlag overrides the log file location.
var logFileFlag string

// verboseFlag forces debug-level logging.
var verboseFlag bool

const rootLongDescription = `Flowlint wraps the Flow static type checker: it pipes source text to the
flow binary, parses its JSON result, filters diagnostics to the file under
analysis and reports them with locations adjusted for embedded snippets and
cross-references resolved.`

const checkLongDescription = `Check files with Flow and print normalized diagnostics.

Each file is piped to 'flow check-contents' against the configured project
root. Use --offset-line/--offset-column when the checked text is an excerpt
embedded in a larger document.`

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies. The checker-backed pipeline is wired
	// lazily because resolving the flow binary is fatal when it fails, and
	// commands like version must still work without one.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flowlint",
		Short: "Flow diagnostics normalizer",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(logFileFlag, verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for diagnostic reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&rootPathFlag, rootFlagName, "r", viper.GetString(rootFlagName), "Flow project root")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootFlagName)

	cmd.PersistentFlags().StringVar(&logFileFlag, "log", "", "log file path (default "+defaultLogFilename+")")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values
// feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// ensureChecker resolves the flow binary and wires the invocation pipeline.
// An unresolvable binary is a startup-fatal condition: guidance is printed
// and the process exits non-zero.
func ensureChecker() {
	if workflow != nil {
		return
	}

	binary, err := adapter.ResolveCheckerBinary(viper.GetString(flowBinKey))
	if err != nil {
		fmt.Fprintf(os.Stderr, "flowlint: %v\n", err)
		fmt.Fprintf(os.Stderr, "Install Flow (https://flow.org) or set %s_FLOW_BIN to the binary path.\n", envPrefix)
		os.Exit(1)
	}

	checkerAdapter = adapter.NewLocalCheckerRunnerAdapter(binary)
	stopRegistry = adapter.NewStopRegistry(checkerAdapter)
	checkCollector = domain.NewCollector(checkerAdapter, stopRegistry, viper.GetBool(debugKey))
	coverageCollector = domain.NewCoverageCollector(checkerAdapter, stopRegistry)
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, checkCollector, coverageCollector)
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Registered checker servers
// are stopped on the way out regardless of the command's outcome.
func Execute() {
	err := rootCmd.Execute()

	if stopRegistry != nil {
		stopRegistry.StopAll()
	}

	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}
