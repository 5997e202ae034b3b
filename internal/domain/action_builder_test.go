package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

func testTarget() m.Target {
	return m.Target{
		Name:    "//lib:parser",
		Sources: []m.Path{"lib/parser.cc", "lib/tables.cc"},
		Headers: []m.Path{"lib/parser.h"},
		Defines: []string{"NDEBUG"},
		Includes: m.IncludeSet{
			Quote:  []m.Path{"lib"},
			System: []m.Path{"third_party/abc/include"},
		},
		Copts: m.CompilationFlags{"-O2", "/W4", "/std:c++17"},
	}
}

func newTestBuilder(t *testing.T, opts BuilderOptions) *ActionBuilder {
	t.Helper()

	if opts.Binary == "" {
		opts.Binary = "clang-tidy"
	}

	if opts.OutputDir == "" {
		opts.OutputDir = "out"
	}

	builder, err := NewActionBuilder(opts)
	require.NoError(t, err)

	return builder
}

func TestNewActionBuilder_RejectsBadExcludePattern(t *testing.T) {
	_, err := NewActionBuilder(BuilderOptions{Exclude: []string{"["}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid exclude pattern")
}

func TestBuild_ReportOnlyAction(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{AutoHeaderFilter: true, AngleIncludesAsSystem: true})

	actions, dropped := builder.Build(testTarget())
	require.Len(t, actions, 1)

	action := actions[0]
	assert.Equal(t, m.ModeReport, action.Mode)
	assert.Equal(t, "clang-tidy", action.Binary)
	assert.NotEmpty(t, action.ID)
	assert.False(t, action.NoOp)

	assert.Equal(t, []string{
		"-header-filter=^lib/.*",
		"lib/parser.cc",
		"lib/tables.cc",
		"--",
		"-O2",
		"-std=c++17",
		"-DNDEBUG",
		"-iquote", "lib",
		"-isystem", "third_party/abc/include",
	}, action.Args)

	assert.Equal(t, m.CompilationFlags{"/W4"}, dropped)

	assert.Equal(t, m.Path("out/lib_parser.clang-tidy.out"), action.Outputs.Report)
	assert.Empty(t, action.Outputs.ExitCode)
	assert.Equal(t, string(action.Outputs.Report), action.Env[m.EnvOutputFile])
}

func TestBuild_AngleIncludesAsPlainI(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{})

	actions, _ := builder.Build(testTarget())
	require.Len(t, actions, 1)

	assert.Contains(t, actions[0].Args, "-I")
	assert.NotContains(t, actions[0].Args, "-header-filter=^lib/.*")
}

func TestBuild_ExplicitHeaderFilterWins(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{HeaderFilter: "^include/.*", AutoHeaderFilter: true})

	actions, _ := builder.Build(testTarget())

	assert.Contains(t, actions[0].Args, "-header-filter=^include/.*")
}

func TestBuild_GlobalConfigComesFirst(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{GlobalConfig: ".clang-tidy"})

	actions, _ := builder.Build(testTarget())

	assert.Equal(t, "--config-file=.clang-tidy", actions[0].Args[0])
	assert.Contains(t, actions[0].ConfigFiles, m.Path(".clang-tidy"))
}

func TestBuild_ExitCodeCapture(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{CaptureExitCode: true})

	actions, _ := builder.Build(testTarget())

	action := actions[0]
	assert.Equal(t, m.Path("out/lib_parser.clang-tidy.exit"), action.Outputs.ExitCode)
	assert.Equal(t, string(action.Outputs.ExitCode), action.Env[m.EnvExitCodeFile])
}

func TestBuild_FiltersNonLintableSources(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{})

	target := testTarget()
	target.Sources = append(target.Sources, "lib/parser.h", "lib/grammar.y", "README.md")

	actions, _ := builder.Build(target)
	require.Len(t, actions, 1)

	assert.Equal(t, []m.Path{"lib/parser.cc", "lib/tables.cc"}, actions[0].Sources)
}

func TestBuild_ExcludePatterns(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{Exclude: []string{`tables\.cc$`}})

	actions, _ := builder.Build(testTarget())

	assert.Equal(t, []m.Path{"lib/parser.cc"}, actions[0].Sources)
}

func TestBuild_EmptySourcesProducesNoOp(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{CaptureExitCode: true})

	target := testTarget()
	target.Sources = []m.Path{"lib/parser.h"} // header-only target

	actions, dropped := builder.Build(target)
	require.Len(t, actions, 1)

	action := actions[0]
	assert.True(t, action.NoOp)
	assert.Empty(t, action.Args)
	assert.Empty(t, action.Binary)
	assert.Empty(t, dropped)

	// The output contract stays stable even when nothing runs.
	assert.Equal(t, m.Path("out/lib_parser.clang-tidy.out"), action.Outputs.Report)
	assert.Equal(t, m.Path("out/lib_parser.clang-tidy.exit"), action.Outputs.ExitCode)
}

func TestBuild_FixModeEmitsPatchAndReportPair(t *testing.T) {
	builder := newTestBuilder(t, BuilderOptions{Fix: true, SelfBinary: "/usr/bin/ctlint"})

	actions, _ := builder.Build(testTarget())
	require.Len(t, actions, 2)

	fix, report := actions[0], actions[1]

	assert.Equal(t, m.ModeFix, fix.Mode)
	assert.Equal(t, "/usr/bin/ctlint", fix.Binary)
	assert.Equal(t, []string{"patch-runner", "--spec", string(fix.SpecFile)}, fix.Args)
	assert.Equal(t, m.Path("out/lib_parser.clang-tidy.patch"), fix.Outputs.Patch)

	require.NotNil(t, fix.Spec)
	assert.Equal(t, "clang-tidy", fix.Spec.Binary)
	assert.Contains(t, fix.Spec.Args, "--fix")
	assert.Equal(t, fix.Outputs.Patch, fix.Spec.PatchOutput)
	assert.Equal(t, []m.Path{"lib/parser.cc", "lib/tables.cc"}, fix.Spec.Sources)

	// --fix stays on the linter side of the separator.
	sepIdx := indexOf(fix.Spec.Args, "--")
	fixIdx := indexOf(fix.Spec.Args, "--fix")
	require.GreaterOrEqual(t, sepIdx, 0)
	assert.Less(t, fixIdx, sepIdx)

	// The diagnostic report pass always follows and never carries --fix.
	assert.Equal(t, m.ModeReport, report.Mode)
	assert.Equal(t, "clang-tidy", report.Binary)
	assert.NotContains(t, report.Args, "--fix")
	assert.Equal(t, m.Path("out/lib_parser.clang-tidy.yaml"), report.Outputs.MachineReport)
}

func TestSanitizeTargetName(t *testing.T) {
	assert.Equal(t, "lib_parser", sanitizeTargetName("//lib:parser"))
	assert.Equal(t, "a_b_c", sanitizeTargetName("a/b:c"))
}

func indexOf(args []string, want string) int {
	for i, arg := range args {
		if arg == want {
			return i
		}
	}

	return -1
}
