package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ctlint.dev/pkg/ctlint/internal/domain"
	m "ctlint.dev/pkg/ctlint/internal/model"
)

// flagsCmd represents the flags command.
var flagsCmd = newFlagsCmd()

func newFlagsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flags <target>",
		Short: "Preview the translated compiler flags for a target",
		Long: `Show which of a target's compiler flags survive translation into the
clang-tidy dialect, and which are dropped, without running the linter.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options, err := builderOptions(false)
			if err != nil {
				return err
			}

			return workflow.Flags(context.Background(), domain.FlagsArgs{
				Compdb:  m.Path(viper.GetString(compdbFlagName)),
				Target:  args[0],
				Options: options,
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(flagsCmd)
}
