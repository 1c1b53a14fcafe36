package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"boundsmith.dev/pkg/boundsmith/internal/domain"
	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// defaultGenerateTarget is where stubs land when no target is given.
const defaultGenerateTarget = "boundsmith_boundary_test.go"

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [target]",
		Short: "Generate test stubs for uncovered boundaries",
		Long: `Render parametrized test stubs for the uncovered boundaries of the last
scan's report. The stubs assert only that each boundary is evaluable at its
critical values; replace the assertions with domain-specific checks.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			target := defaultGenerateTarget
			if len(args) > 0 {
				target = args[0]
			}

			return workflow.Generate(context.Background(), domain.GenerateArgs{
				Reports: m.Path(viper.GetString(outputFlagName)),
				Target:  m.Path(target),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
