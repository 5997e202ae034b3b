package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	m "ctlint.dev/pkg/ctlint/internal/model"
	"ctlint.dev/pkg/ctlint/pkg"
)

// LinterRunnerAdapter abstracts external linter execution so the workflow
// can be tested without spawning processes.
type LinterRunnerAdapter interface {
	// Execute runs one lint action and materializes its declared outputs.
	// When the action captures its exit code, a non-zero exit is data and
	// no error is returned; otherwise it is fatal for the action.
	Execute(ctx context.Context, action m.LintAction) (m.ActionResult, error)
}

// LocalLinterRunnerAdapter provides a concrete implementation using os/exec.
type LocalLinterRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalLinterRunnerAdapter constructs a runner with the given per-action
// timeout. A zero timeout means no limit beyond the caller's context.
func NewLocalLinterRunnerAdapter(timeout time.Duration) *LocalLinterRunnerAdapter {
	return &LocalLinterRunnerAdapter{timeout: timeout}
}

// Execute implements LinterRunnerAdapter.
func (a *LocalLinterRunnerAdapter) Execute(ctx context.Context, action m.LintAction) (m.ActionResult, error) {
	if action.NoOp {
		return m.ActionResult{}, a.materializeOutputs(action)
	}

	if action.Spec != nil && action.SpecFile != "" {
		if err := a.writeSpec(action); err != nil {
			return m.ActionResult{}, err
		}
	}

	runCtx := ctx

	if a.timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	slog.Debug("executing lint action",
		"target", action.Target,
		"mode", action.Mode,
		"command", pkg.JoinCommand(action.Binary, action.Args),
	)

	cmd := exec.CommandContext(runCtx, action.Binary, action.Args...)
	cmd.Env = append(os.Environ(), envList(action.Env)...)

	var buf bytes.Buffer

	cmd.Stdout = &buf
	cmd.Stderr = &buf

	runErr := cmd.Run()
	exitCode := 0

	if runErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(runErr, &exitErr) {
			return m.ActionResult{}, fmt.Errorf("run %s: %w", action.Binary, runErr)
		}

		exitCode = exitErr.ExitCode()
	}

	result := m.ActionResult{Output: buf.String(), ExitCode: exitCode}

	if file, ok := action.Env[m.EnvOutputFile]; ok && file != "" {
		if err := writeOutput(file, []byte(result.Output)); err != nil {
			return result, err
		}
	}

	if file, ok := action.Env[m.EnvExitCodeFile]; ok && file != "" {
		// Exit code requested as data: the build does not fail on it.
		return result, writeOutput(file, []byte(strconv.Itoa(exitCode)))
	}

	if exitCode != 0 {
		return result, fmt.Errorf("%s exited with code %d", filepath.Base(action.Binary), exitCode)
	}

	return result, nil
}

func (a *LocalLinterRunnerAdapter) writeSpec(action m.LintAction) error {
	data, err := yaml.Marshal(action.Spec)
	if err != nil {
		return fmt.Errorf("marshal invocation spec: %w", err)
	}

	return writeOutput(string(action.SpecFile), data)
}

// materializeOutputs satisfies the output contract of a no-op action: every
// declared file exists, the report is empty and the exit code is zero.
func (a *LocalLinterRunnerAdapter) materializeOutputs(action m.LintAction) error {
	outputs := []struct {
		path    m.Path
		content []byte
	}{
		{action.Outputs.Report, nil},
		{action.Outputs.ExitCode, []byte("0")},
		{action.Outputs.Patch, nil},
		{action.Outputs.MachineReport, nil},
	}

	for _, out := range outputs {
		if out.path == "" {
			continue
		}

		if err := writeOutput(string(out.path), out.content); err != nil {
			return err
		}
	}

	return nil
}

func writeOutput(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}

	return nil
}

func envList(env map[string]string) []string {
	list := make([]string, 0, len(env))
	for key, value := range env {
		list = append(list, key+"="+value)
	}

	return list
}
