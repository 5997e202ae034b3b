package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ctlint.dev/pkg/ctlint/internal/domain"
	m "ctlint.dev/pkg/ctlint/internal/model"
)

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [targets...]",
		Short: "Run clang-tidy with automatic fixes and emit patches",
		Long:  fixLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			options, err := builderOptions(true)
			if err != nil {
				return err
			}

			return workflow.Run(context.Background(), domain.RunArgs{
				Compdb:  m.Path(viper.GetString(compdbFlagName)),
				Targets: args,
				Reports: m.Path(viper.GetString(outputFlagName)),
				Threads: viper.GetInt(runParallelConfigKey),
				Options: options,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
