package domain

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"ctlint.dev/pkg/ctlint/internal/adapter"
	"ctlint.dev/pkg/ctlint/internal/controller"
	m "ctlint.dev/pkg/ctlint/internal/model"
	"ctlint.dev/pkg/ctlint/pkg"
)

// RunArgs contains the arguments for a lint pass over targets.
type RunArgs struct {
	Compdb  m.Path
	Targets []string // target name filter; empty means all
	Reports m.Path
	Threads int
	Options BuilderOptions
}

// TargetsArgs contains the arguments for listing targets.
type TargetsArgs struct {
	Compdb m.Path
}

// FlagsArgs contains the arguments for the flag-translation preview.
type FlagsArgs struct {
	Compdb  m.Path
	Target  string
	Options BuilderOptions
}

// ViewArgs contains the arguments for viewing stored reports.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the top-level orchestration behind the CLI commands.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	Targets(ctx context.Context, args TargetsArgs) error
	Flags(ctx context.Context, args FlagsArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	meta    adapter.BuildMetaAdapter
	runner  adapter.LinterRunnerAdapter
	patches adapter.PatchAdapter
	store   adapter.ReportStore
	ui      controller.UI
}

// NewWorkflow creates a Workflow backed by the provided adapters.
func NewWorkflow(
	meta adapter.BuildMetaAdapter,
	runner adapter.LinterRunnerAdapter,
	patches adapter.PatchAdapter,
	store adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		meta:    meta,
		runner:  runner,
		patches: patches,
		store:   store,
		ui:      ui,
	}
}

// Run lints every selected target. Targets are independent build-graph
// nodes, so they run in parallel up to the configured limit; each one is a
// pure function of its own compilation context.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	targets, err := w.selectTargets(args.Compdb, args.Targets)
	if err != nil {
		return err
	}

	builder, err := NewActionBuilder(args.Options)
	if err != nil {
		return fmt.Errorf("configure action builder: %w", err)
	}

	reports := make([]m.TargetReport, len(targets))

	group, groupCtx := errgroup.WithContext(ctx)
	if args.Threads > 0 {
		group.SetLimit(args.Threads)
	}

	for i, target := range targets {
		group.Go(func() error {
			report, err := w.lintTarget(groupCtx, builder, target)
			if err != nil {
				return fmt.Errorf("target %s: %w", target.Name, err)
			}

			reports[i] = report

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	if err := w.store.SaveReports(args.Reports, reports); err != nil {
		return fmt.Errorf("save reports: %w", err)
	}

	return w.ui.DisplaySummary(ctx, reports)
}

// lintTarget builds and executes the actions of one target and folds the
// results into a report.
func (w *workflow) lintTarget(ctx context.Context, builder *ActionBuilder, target m.Target) (m.TargetReport, error) {
	actions, dropped := builder.Build(target)

	report := m.TargetReport{Target: target.Name, DroppedFlags: dropped}

	var machineReport m.Path

	for _, action := range actions {
		result, err := w.runner.Execute(ctx, action)
		if err != nil {
			return report, err
		}

		switch action.Mode {
		case m.ModeFix:
			summary, err := w.patchSummary(action.Outputs.Patch)
			if err != nil {
				return report, err
			}

			report.Patch = summary

		case m.ModeReport:
			report.ExitCode = result.ExitCode
			report.NoOp = action.NoOp
			report.Findings = ParseFindings(result.Output)

			if !action.NoOp {
				report.Command = pkg.JoinCommand(action.Binary, action.Args)
				report.ConfigFiles = action.ConfigFiles
			}

			machineReport = action.Outputs.MachineReport
		}
	}

	if machineReport != "" {
		if err := w.store.SaveTargetReport(machineReport, report); err != nil {
			return report, err
		}
	}

	return report, nil
}

func (w *workflow) patchSummary(patchPath m.Path) (*m.PatchSummary, error) {
	if patchPath == "" {
		return nil, nil
	}

	patch, err := readPatch(patchPath)
	if err != nil {
		return nil, err
	}

	stats, err := w.patches.Stats(patch)
	if err != nil {
		return nil, err
	}

	return &m.PatchSummary{Patch: patchPath, Files: stats}, nil
}

func readPatch(path m.Path) ([]byte, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read patch: %w", err)
	}

	return data, nil
}

// Targets lists the targets found in the build metadata.
func (w *workflow) Targets(ctx context.Context, args TargetsArgs) error {
	targets, err := w.meta.LoadTargets(args.Compdb)
	if err != nil {
		return fmt.Errorf("load build metadata: %w", err)
	}

	return w.ui.DisplayTargets(ctx, targets)
}

// Flags shows the translated and dropped flags for one target without
// executing anything.
func (w *workflow) Flags(ctx context.Context, args FlagsArgs) error {
	targets, err := w.selectTargets(args.Compdb, []string{args.Target})
	if err != nil {
		return err
	}

	target := targets[0]

	flags := make(m.CompilationFlags, 0, len(args.Options.ToolchainFlags)+len(target.Copts))
	flags = append(flags, args.Options.ToolchainFlags...)
	flags = append(flags, target.Copts...)

	kept, dropped := Translate(flags)

	return w.ui.DisplayFlags(ctx, target.Name, kept, dropped)
}

// View renders previously stored reports.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Reports)
	if err != nil {
		return fmt.Errorf("load reports: %w", err)
	}

	if err := w.ui.DisplaySummary(ctx, reports); err != nil {
		return err
	}

	var findings []m.Finding
	for _, report := range reports {
		findings = append(findings, report.Findings...)
	}

	return w.ui.DisplayFindings(ctx, findings)
}

func (w *workflow) selectTargets(compdb m.Path, names []string) ([]m.Target, error) {
	targets, err := w.meta.LoadTargets(compdb)
	if err != nil {
		return nil, fmt.Errorf("load build metadata: %w", err)
	}

	if len(names) == 0 {
		if len(targets) == 0 {
			return nil, fmt.Errorf("no targets in %s", compdb)
		}

		return targets, nil
	}

	wanted := make(map[string]struct{}, len(names))
	for _, name := range names {
		wanted[name] = struct{}{}
	}

	var selected []m.Target

	for _, target := range targets {
		if _, ok := wanted[target.Name]; ok {
			selected = append(selected, target)
		}
	}

	if len(selected) == 0 {
		return nil, fmt.Errorf("no targets matched %v", names)
	}

	return selected, nil
}
