// Package cmd provides the root command and CLI setup for boundsmith.
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"boundsmith.dev/pkg/boundsmith/internal/adapter"
	"boundsmith.dev/pkg/boundsmith/internal/controller"
	"boundsmith.dev/pkg/boundsmith/internal/domain"
)

var goFileAdapter adapter.GoFileAdapter
var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var extractor domain.Extractor
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that
// read/write reports.
var reportsOutputDirFlag string

// excludePatterns is a root-level flag that filters files for applicable
// commands.
var excludePatterns []string

// verboseFlag raises log verbosity to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	goFileAdapter = adapter.NewLocalGoFileAdapter()
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	extractor = domain.NewExtractor(goFileAdapter)
	workflow = domain.NewWorkflow(fsAdapter, reportStore, ui, extractor)
}

const rootLongDescription = `BoundSmith scans Go source for numeric boundary conditions (x > 3,
len(items) == 0), derives the three critical values around each boundary,
and cross-references literals present in your _test.go files to find
boundaries your tests never exercise.`

const scanLongDescription = `Scan a Go source file or directory for boundary conditions.

With --tests, literals found in the test path are cross-checked against each
boundary's critical values and only the uncovered boundaries are reported;
the command exits non-zero when gaps remain.`

const listLongDescription = `List source files and the number of boundary conditions in each.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "boundsmith",
		Short: "Hunt uncovered boundary conditions in Go code",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
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
			"output directory for scan reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "enable debug logging")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
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

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). Exit codes: 2 for bad input
// paths, 1 for any other failure including uncovered boundaries.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		if errors.Is(err, domain.ErrBadInput) {
			os.Exit(2)
		}

		os.Exit(1)
	}
}
