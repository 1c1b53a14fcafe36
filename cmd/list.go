package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"boundsmith.dev/pkg/boundsmith/internal/domain"
	m "boundsmith.dev/pkg/boundsmith/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [path]",
		Short: "List source files and boundary counts",
		Long:  listLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			source := "."
			if len(args) > 0 {
				source = args[0]
			}

			return workflow.List(context.Background(), domain.ListArgs{
				Source:  m.Path(source),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Threads: viper.GetInt(scanParallelConfigKey),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
