package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"ctlint.dev/pkg/ctlint/internal/adapter"
	"ctlint.dev/pkg/ctlint/internal/domain"
	m "ctlint.dev/pkg/ctlint/internal/model"
)

var patchRunnerSpecFlag string

// patchRunnerCmd is the hidden fix-mode helper. The fix action invokes this
// binary again with a serialized invocation spec instead of re-deriving the
// linter command line in a second place.
var patchRunnerCmd = newPatchRunnerCmd()

func newPatchRunnerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:    "patch-runner",
		Short:  "Internal helper that computes fix-mode patches",
		Hidden: true,
		Args:   cobra.ExactArgs(0),
		RunE: func(_ *cobra.Command, _ []string) error {
			spec, err := loadInvocationSpec(patchRunnerSpecFlag)
			if err != nil {
				return err
			}

			patcher := domain.NewPatcher(
				adapter.NewLocalWorkspaceAdapter(),
				adapter.NewDifflibPatchAdapter(),
				adapter.NewLocalFixRunnerAdapter(actionTimeout()),
			)

			return patcher.Apply(context.Background(), spec)
		},
	}

	cmd.Flags().StringVar(&patchRunnerSpecFlag, "spec", "", "path to the invocation spec document")
	cobra.CheckErr(cmd.MarkFlagRequired("spec"))

	return cmd
}

func loadInvocationSpec(path string) (m.InvocationSpec, error) {
	var spec m.InvocationSpec

	data, err := os.ReadFile(path)
	if err != nil {
		return spec, fmt.Errorf("read invocation spec: %w", err)
	}

	if err := yaml.Unmarshal(data, &spec); err != nil {
		return spec, fmt.Errorf("parse invocation spec %s: %w", path, err)
	}

	return spec, nil
}

func init() {
	rootCmd.AddCommand(patchRunnerCmd)
}
