package domain

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// lintableExtensions are the C/C++ translation units clang-tidy consumes
// directly. Headers are scoped through -header-filter, never passed as
// inputs.
var lintableExtensions = map[string]struct{}{
	".c":   {},
	".cc":  {},
	".cpp": {},
	".cxx": {},
}

// BuilderOptions is the host-facing configuration of the action builder.
type BuilderOptions struct {
	Binary                string
	ConfigFiles           []m.Path
	GlobalConfig          m.Path
	HeaderFilter          string // explicit regex; wins over auto-derivation
	AutoHeaderFilter      bool
	AngleIncludesAsSystem bool
	ToolchainFlags        m.CompilationFlags
	CaptureExitCode       bool
	Verbose               bool
	OutputDir             m.Path
	Exclude               []string
	Fix                   bool
	SelfBinary            string // helper binary for fix mode (ctlint itself)
}

// ActionBuilder constructs external linter invocations for build targets.
// Construction is a pure function of the target and the options: no state
// is shared across targets, so built actions can be cached and re-run at
// target granularity.
type ActionBuilder struct {
	opts    BuilderOptions
	exclude []*regexp.Regexp
}

// NewActionBuilder compiles the exclude patterns and returns a builder.
func NewActionBuilder(opts BuilderOptions) (*ActionBuilder, error) {
	exclude := make([]*regexp.Regexp, 0, len(opts.Exclude))

	for _, pattern := range opts.Exclude {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		exclude = append(exclude, re)
	}

	return &ActionBuilder{opts: opts, exclude: exclude}, nil
}

// Build constructs the lint actions for one target: a single report action,
// or a fix action followed by a report action, or a single no-op action when
// no lintable sources remain after filtering. The dropped flags are returned
// for diagnostics.
func (b *ActionBuilder) Build(target m.Target) ([]m.LintAction, m.CompilationFlags) {
	sources := b.filterSources(target.Sources)
	outputs := b.outputsFor(target.Name)

	if len(sources) == 0 {
		return []m.LintAction{b.noOpAction(target.Name, outputs)}, nil
	}

	flags := make(m.CompilationFlags, 0, len(b.opts.ToolchainFlags)+len(target.Copts))
	flags = append(flags, b.opts.ToolchainFlags...)
	flags = append(flags, target.Copts...)

	kept, dropped := Translate(flags)

	if !b.opts.Fix {
		args := b.lintArgs(target, kept, sources)

		return []m.LintAction{b.reportAction(target.Name, args, sources, outputs)}, dropped
	}

	fixArgs := b.lintArgs(target, kept, sources, "--fix")
	reportArgs := b.lintArgs(target, kept, sources)

	// Fix mode suppresses the normal report, so a plain pass always runs
	// afterwards to produce the diagnostic output.
	return []m.LintAction{
		b.fixAction(target.Name, fixArgs, sources, outputs),
		b.reportAction(target.Name, reportArgs, sources, outputs),
	}, dropped
}

// lintArgs assembles the linter argument vector:
//
//	[--config-file=<path>] [-header-filter=<regex>] [extra...] <sources>
//	-- <flags> [-D<define>]* [-iquote|-isystem|-I|-F <dir>]*
//
// Extra linter options (such as --fix) go before the sources; everything
// after the separator is compiler-facing.
func (b *ActionBuilder) lintArgs(target m.Target, flags m.CompilationFlags, sources []m.Path, extra ...string) []string {
	var args []string

	if b.opts.GlobalConfig != "" {
		args = append(args, "--config-file="+string(b.opts.GlobalConfig))
	}

	if filter := b.headerFilter(target); filter != "" {
		args = append(args, "-header-filter="+filter)
	}

	args = append(args, extra...)

	for _, src := range sources {
		args = append(args, string(src))
	}

	args = append(args, "--")
	args = append(args, flags...)

	for _, def := range target.Defines {
		args = append(args, "-D"+def)
	}

	args = append(args, includeArgs(target.Includes, b.opts.AngleIncludesAsSystem)...)

	return args
}

func (b *ActionBuilder) headerFilter(target m.Target) string {
	if b.opts.HeaderFilter != "" {
		return b.opts.HeaderFilter
	}

	if !b.opts.AutoHeaderFilter {
		return ""
	}

	return BuildHeaderFilter(target.Headers)
}

func includeArgs(includes m.IncludeSet, angleAsSystem bool) []string {
	angle := "-I"
	if angleAsSystem {
		angle = "-isystem"
	}

	var args []string

	for _, dir := range includes.Quote {
		args = append(args, "-iquote", string(dir))
	}

	for _, dir := range includes.System {
		args = append(args, angle, string(dir))
	}

	for _, dir := range includes.External {
		args = append(args, "-isystem", string(dir))
	}

	for _, dir := range includes.Framework {
		args = append(args, "-F", string(dir))
	}

	return args
}

func (b *ActionBuilder) filterSources(sources []m.Path) []m.Path {
	var kept []m.Path

	for _, src := range sources {
		ext := strings.ToLower(filepath.Ext(string(src)))
		if _, ok := lintableExtensions[ext]; !ok {
			continue
		}

		if b.excluded(string(src)) {
			continue
		}

		kept = append(kept, src)
	}

	return kept
}

func (b *ActionBuilder) excluded(src string) bool {
	for _, re := range b.exclude {
		if re.MatchString(src) {
			return true
		}
	}

	return false
}

func (b *ActionBuilder) outputsFor(name string) m.ActionOutputs {
	base := filepath.Join(string(b.opts.OutputDir), sanitizeTargetName(name))

	outputs := m.ActionOutputs{Report: m.Path(base + ".clang-tidy.out")}

	if b.opts.CaptureExitCode {
		outputs.ExitCode = m.Path(base + ".clang-tidy.exit")
	}

	if b.opts.Fix {
		outputs.Patch = m.Path(base + ".clang-tidy.patch")
		outputs.MachineReport = m.Path(base + ".clang-tidy.yaml")
	}

	return outputs
}

func (b *ActionBuilder) reportAction(targetName string, args []string, sources []m.Path, outputs m.ActionOutputs) m.LintAction {
	env := map[string]string{m.EnvOutputFile: string(outputs.Report)}

	if outputs.ExitCode != "" {
		env[m.EnvExitCodeFile] = string(outputs.ExitCode)
	}

	if b.opts.Verbose {
		env[m.EnvVerbose] = "1"
	}

	return m.LintAction{
		ID:          uuid.NewString(),
		Target:      targetName,
		Mode:        m.ModeReport,
		Binary:      b.opts.Binary,
		Args:        args,
		Env:         env,
		Sources:     sources,
		ConfigFiles: b.configInputs(),
		Outputs: m.ActionOutputs{
			Report:        outputs.Report,
			ExitCode:      outputs.ExitCode,
			MachineReport: outputs.MachineReport,
		},
	}
}

func (b *ActionBuilder) fixAction(targetName string, args []string, sources []m.Path, outputs m.ActionOutputs) m.LintAction {
	specFile := m.Path(filepath.Join(string(b.opts.OutputDir), sanitizeTargetName(targetName)+".clang-tidy.fix.yaml"))

	env := map[string]string{}
	if b.opts.Verbose {
		env[m.EnvVerbose] = "1"
	}

	spec := &m.InvocationSpec{
		Binary:      b.opts.Binary,
		Args:        args,
		Env:         env,
		Sources:     sources,
		PatchOutput: outputs.Patch,
	}

	return m.LintAction{
		ID:          uuid.NewString(),
		Target:      targetName,
		Mode:        m.ModeFix,
		Binary:      b.opts.SelfBinary,
		Args:        []string{"patch-runner", "--spec", string(specFile)},
		Env:         env,
		Sources:     sources,
		ConfigFiles: b.configInputs(),
		Outputs:     m.ActionOutputs{Patch: outputs.Patch},
		Spec:        spec,
		SpecFile:    specFile,
	}
}

// noOpAction keeps the output contract stable for targets with nothing to
// lint (header-only or generated-file-only targets): every declared output
// is still materialized, the linter is never invoked.
func (b *ActionBuilder) noOpAction(targetName string, outputs m.ActionOutputs) m.LintAction {
	return m.LintAction{
		ID:      uuid.NewString(),
		Target:  targetName,
		Mode:    m.ModeReport,
		NoOp:    true,
		Outputs: outputs,
	}
}

func (b *ActionBuilder) configInputs() []m.Path {
	inputs := make([]m.Path, 0, len(b.opts.ConfigFiles)+1)
	inputs = append(inputs, b.opts.ConfigFiles...)

	if b.opts.GlobalConfig != "" {
		inputs = append(inputs, b.opts.GlobalConfig)
	}

	return inputs
}

// sanitizeTargetName flattens label separators so each target maps to a
// distinct flat file name under the output directory.
func sanitizeTargetName(name string) string {
	return strings.NewReplacer("//", "", "/", "_", ":", "_", " ", "_").Replace(name)
}
