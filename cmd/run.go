package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ctlint.dev/pkg/ctlint/internal/domain"
	m "ctlint.dev/pkg/ctlint/internal/model"
)

var runParallelFlag int

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [targets...]",
		Short: "Run a clang-tidy pass over build targets",
		Long:  runLongDescription,
		RunE: func(_ *cobra.Command, args []string) error {
			options, err := builderOptions(false)
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

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of targets linted in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
}
