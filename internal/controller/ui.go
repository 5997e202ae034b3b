// Package controller provides output adapters for displaying lint results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// UI defines the interface for presenting targets, flags and lint results.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	DisplayTargets(ctx context.Context, targets []m.Target) error
	DisplayFlags(ctx context.Context, target string, kept, dropped m.CompilationFlags) error
	DisplaySummary(ctx context.Context, reports []m.TargetReport) error
	DisplayFindings(ctx context.Context, findings []m.Finding) error
}

// NewUI picks the richest UI the output medium supports: the paging TUI on
// a terminal, plain tables otherwise (pipes, CI logs).
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether the file is attached to a terminal.
func IsTTY(file *os.File) bool {
	return term.IsTerminal(int(file.Fd()))
}
