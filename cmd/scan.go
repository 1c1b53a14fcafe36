package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"boundsmith.dev/pkg/boundsmith/internal/domain"
	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

var scanTestsFlag string
var scanGenerateFlag string
var scanJSONFlag bool
var scanParallelFlag int

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan <path>",
		Short: "Scan source for boundary conditions",
		Long:  scanLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tests, _ := cmd.Flags().GetString(testsFlagName)
			generate, _ := cmd.Flags().GetString(generateFlagName)
			asJSON, _ := cmd.Flags().GetBool(jsonFlagName)

			return workflow.Scan(context.Background(), domain.ScanArgs{
				Source:   m.Path(args[0]),
				Tests:    m.Path(tests),
				Generate: m.Path(generate),
				JSON:     asJSON,
				Exclude:  viper.GetStringSlice(excludeConfigKey),
				Threads:  viper.GetInt(scanParallelConfigKey),
				Reports:  m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureScanFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}

func configureScanFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&scanTestsFlag, testsFlagName, "t", "", "test file or directory to cross-check")
	cmd.Flags().StringVarP(&scanGenerateFlag, generateFlagName, "g", "", "write generated test stubs to this file")
	cmd.Flags().BoolVar(&scanJSONFlag, jsonFlagName, false, "emit uncovered boundaries as JSON for CI")
	cmd.Flags().IntVarP(&scanParallelFlag, scanParallelFlagName, "p", viper.GetInt(scanParallelConfigKey), "number of parallel workers for directory scans")
	bindFlagToConfig(cmd.Flags().Lookup(scanParallelFlagName), scanParallelConfigKey)
}
