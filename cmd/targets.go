package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ctlint.dev/pkg/ctlint/internal/domain"
	m "ctlint.dev/pkg/ctlint/internal/model"
)

// targetsCmd represents the targets command.
var targetsCmd = newTargetsCmd()

func newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets",
		Short: "List targets found in the build metadata",
		Long:  "List targets found in the build metadata with their source, header and option counts.\n\n" + compdbHelp,
		Args:  cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Targets(context.Background(), domain.TargetsArgs{
				Compdb: m.Path(viper.GetString(compdbFlagName)),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(targetsCmd)
}
