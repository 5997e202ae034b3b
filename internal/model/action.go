package model

// ActionMode distinguishes plain lint passes from fix passes.
type ActionMode string

const (
	// ModeReport captures linter diagnostics into a report file.
	ModeReport ActionMode = "report"
	// ModeFix runs the linter with automatic fixes and emits a patch.
	ModeFix ActionMode = "fix"
)

// Environment variable contract between actions and the executor.
const (
	// EnvOutputFile redirects the linter's combined stdout/stderr to a file.
	EnvOutputFile = "CTLINT_OUTPUT_FILE"
	// EnvExitCodeFile captures the linter's exit code to a file. When set,
	// a non-zero exit is data rather than a failure.
	EnvExitCodeFile = "CTLINT_EXIT_CODE_FILE"
	// EnvVerbose enables diagnostic output about dropped flags.
	EnvVerbose = "CTLINT_VERBOSE"
)

// ActionOutputs lists the files an action is declared to produce. Every
// declared output is materialized even when the action is a no-op, so the
// output shape stays uniform across all targets.
type ActionOutputs struct {
	Report        Path
	ExitCode      Path // empty when exit-code capture is off
	Patch         Path // fix mode only
	MachineReport Path // fix mode only
}

// LintAction is one external linter invocation for a target. It is built
// once per target pass and never mutated afterwards.
type LintAction struct {
	ID          string
	Target      string
	Mode        ActionMode
	Binary      string
	Args        []string
	Env         map[string]string
	Sources     []Path
	ConfigFiles []Path
	Outputs     ActionOutputs
	NoOp        bool

	// Fix-mode handoff: Spec is serialized to SpecFile before execution
	// and consumed by the patch-runner helper process.
	Spec     *InvocationSpec
	SpecFile Path
}

// ActionResult is what the executor hands back after running an action.
type ActionResult struct {
	Output   string
	ExitCode int
}
