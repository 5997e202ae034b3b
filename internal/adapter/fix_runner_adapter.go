package adapter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// FixRunnerAdapter executes the linter's fix pass inside a workspace copy.
type FixRunnerAdapter interface {
	// RunFix replays the invocation spec with dir as the working directory
	// and returns the combined stdout/stderr output. A non-zero linter exit
	// is not an error here: fixes for the clean files still count.
	RunFix(ctx context.Context, dir m.Path, spec m.InvocationSpec) (string, error)
}

// LocalFixRunnerAdapter provides a concrete implementation using os/exec.
type LocalFixRunnerAdapter struct {
	timeout time.Duration
}

// NewLocalFixRunnerAdapter constructs a LocalFixRunnerAdapter.
func NewLocalFixRunnerAdapter(timeout time.Duration) *LocalFixRunnerAdapter {
	return &LocalFixRunnerAdapter{timeout: timeout}
}

// RunFix implements FixRunnerAdapter.
func (a *LocalFixRunnerAdapter) RunFix(ctx context.Context, dir m.Path, spec m.InvocationSpec) (string, error) {
	runCtx := ctx

	if a.timeout > 0 {
		var cancel context.CancelFunc

		runCtx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(runCtx, spec.Binary, spec.Args...)
	cmd.Dir = string(dir)
	cmd.Env = append(os.Environ(), envList(spec.Env)...)

	var buf bytes.Buffer

	cmd.Stdout = &buf
	cmd.Stderr = &buf

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return buf.String(), fmt.Errorf("run %s: %w", spec.Binary, err)
		}
	}

	return buf.String(), nil
}
