package cmd

import (
	"context"

	"ctlint.dev/pkg/ctlint/internal/domain"
)

// fakeWorkflow records the arguments each workflow entry point received so
// command tests can assert on flag and config plumbing.
type fakeWorkflow struct {
	runArgs     []domain.RunArgs
	targetsArgs []domain.TargetsArgs
	flagsArgs   []domain.FlagsArgs
	viewArgs    []domain.ViewArgs
	err         error
}

func (f *fakeWorkflow) Run(_ context.Context, args domain.RunArgs) error {
	f.runArgs = append(f.runArgs, args)
	return f.err
}

func (f *fakeWorkflow) Targets(_ context.Context, args domain.TargetsArgs) error {
	f.targetsArgs = append(f.targetsArgs, args)
	return f.err
}

func (f *fakeWorkflow) Flags(_ context.Context, args domain.FlagsArgs) error {
	f.flagsArgs = append(f.flagsArgs, args)
	return f.err
}

func (f *fakeWorkflow) View(_ context.Context, args domain.ViewArgs) error {
	f.viewArgs = append(f.viewArgs, args)
	return f.err
}

// swapWorkflow installs a fake workflow and returns a restore func.
func swapWorkflow(fake domain.Workflow) func() {
	original := workflow
	workflow = fake

	return func() { workflow = original }
}
