package domain

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"ctlint.dev/pkg/ctlint/internal/adapter"
	m "ctlint.dev/pkg/ctlint/internal/model"
)

// Patcher is the fix-mode helper logic: it replays an invocation spec in a
// disposable copy of the project and turns whatever the linter changed into
// a unified patch. Originals are never touched.
type Patcher struct {
	workspace adapter.WorkspaceAdapter
	patches   adapter.PatchAdapter
	fixRunner adapter.FixRunnerAdapter
	validate  *validator.Validate
}

// NewPatcher constructs a Patcher backed by the provided adapters.
func NewPatcher(
	workspace adapter.WorkspaceAdapter,
	patches adapter.PatchAdapter,
	fixRunner adapter.FixRunnerAdapter,
) *Patcher {
	return &Patcher{
		workspace: workspace,
		patches:   patches,
		fixRunner: fixRunner,
		validate:  validator.New(),
	}
}

// Apply executes the fix pass described by spec. The patch output file is
// written even when the linter changed nothing, so the declared outputs of
// the enclosing action are always present.
func (p *Patcher) Apply(ctx context.Context, spec m.InvocationSpec) error {
	if err := p.validate.Struct(spec); err != nil {
		return fmt.Errorf("invalid invocation spec: %w", err)
	}

	root, err := p.workspace.FindProjectRoot(".")
	if err != nil {
		return fmt.Errorf("find project root: %w", err)
	}

	tmp, err := p.workspace.CreateTempDir("ctlint-fix-*")
	if err != nil {
		return err
	}

	defer func() {
		if err := p.workspace.RemoveAll(tmp); err != nil {
			slog.Warn("failed to clean up fix workspace", "dir", tmp, "error", err)
		}
	}()

	if err := p.workspace.CopyDir(root, tmp); err != nil {
		return fmt.Errorf("copy workspace: %w", err)
	}

	output, err := p.fixRunner.RunFix(ctx, tmp, spec)
	if err != nil {
		return fmt.Errorf("run fix pass: %w", err)
	}

	slog.Debug("fix pass finished", "binary", spec.Binary, "output_bytes", len(output))

	patch, err := p.diffSources(root, tmp, spec.Sources)
	if err != nil {
		return err
	}

	return p.workspace.WriteFile(spec.PatchOutput, []byte(patch), 0o644)
}

// diffSources compares every spec source against its fixed copy and
// concatenates the non-empty unified diffs. Source paths are project-root
// relative by the spec's contract.
func (p *Patcher) diffSources(root, tmp m.Path, sources []m.Path) (string, error) {
	var patch strings.Builder

	for _, src := range sources {
		original, err := p.workspace.ReadFile(m.Path(filepath.Join(string(root), string(src)))) // untouched file
		if err != nil {
			return "", fmt.Errorf("read original %s: %w", src, err)
		}

		fixed, err := p.workspace.ReadFile(m.Path(filepath.Join(string(tmp), string(src))))
		if err != nil {
			return "", fmt.Errorf("read fixed %s: %w", src, err)
		}

		if bytes.Equal(original, fixed) {
			continue
		}

		hunk, err := p.patches.UnifiedDiff(original, fixed, src)
		if err != nil {
			return "", err
		}

		patch.WriteString(hunk)
	}

	return patch.String(), nil
}
