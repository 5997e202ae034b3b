package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display. Short output
// is printed directly; long finding lists get a scrollable pager.
type TUI struct {
	*SimpleUI

	output *os.File
}

// NewTUI creates a new TUI. Tables and summaries reuse the simple renderer;
// only findings paging is interactive.
func NewTUI(cmd *cobra.Command) *TUI {
	output, _ := cmd.OutOrStdout().(*os.File)

	return &TUI{SimpleUI: NewSimpleUI(cmd), output: output}
}

// DisplayFindings pages through the findings when they do not fit on one
// screen, otherwise prints them directly.
func (t *TUI) DisplayFindings(ctx context.Context, findings []m.Finding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	model := newFindingsModel(findings)

	if t.output != nil {
		width, height, err := term.GetSize(int(t.output.Fd()))
		if err == nil {
			model.width = width
			model.height = height
		}
	}

	if t.output == nil || !model.needsPagination() {
		return t.SimpleUI.DisplayFindings(ctx, findings)
	}

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// findingsModel is the Bubble Tea model paging a finding list.
type findingsModel struct {
	findings []m.Finding
	height   int
	width    int
	offset   int
	quitting bool
}

func newFindingsModel(findings []m.Finding) findingsModel {
	return findingsModel{findings: findings}
}

func (fm findingsModel) Init() tea.Cmd {
	return nil
}

func (fm findingsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		fm.height = msg.Height
		fm.width = msg.Width

		return fm, nil

	case tea.KeyMsg:
		return fm.handleKeyPress(msg)
	}

	return fm, nil
}

func (fm findingsModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		fm.quitting = true

		return fm, tea.Quit
	default:
		// Handle other key types in the string switch below.
	}

	switch msg.String() {
	case "q":
		fm.quitting = true

		return fm, tea.Quit

	case "down", "j":
		fm.offset++
		if max := fm.maxOffset(); fm.offset > max {
			fm.offset = max
		}

		return fm, nil

	case "up", "k":
		fm.offset--
		if fm.offset < 0 {
			fm.offset = 0
		}

		return fm, nil
	}

	return fm, nil
}

func (fm findingsModel) View() string {
	if fm.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Findings (%d)", len(fm.findings))))
	b.WriteString("\n\n")

	for _, finding := range fm.visibleFindings() {
		severity := string(finding.Severity)
		if style, ok := severityStyle[finding.Severity]; ok {
			severity = style.Render(severity)
		}

		fmt.Fprintf(&b, "%s:%d:%d %s %s", finding.File, finding.Line, finding.Column, severity, finding.Message)

		if finding.Check != "" {
			fmt.Fprintf(&b, " %s", subduedStyle.Render("["+finding.Check+"]"))
		}

		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subduedStyle.Render("j/k scroll · q quit"))
	b.WriteString("\n")

	return b.String()
}

// chromeLines is the screen space taken by title, padding and footer.
const chromeLines = 5

func (fm findingsModel) pageSize() int {
	size := fm.height - chromeLines
	if size < 1 {
		return len(fm.findings)
	}

	return size
}

func (fm findingsModel) needsPagination() bool {
	return fm.height > 0 && len(fm.findings) > fm.pageSize()
}

func (fm findingsModel) maxOffset() int {
	max := len(fm.findings) - fm.pageSize()
	if max < 0 {
		return 0
	}

	return max
}

func (fm findingsModel) visibleFindings() []m.Finding {
	if fm.height <= 0 {
		return fm.findings
	}

	start := fm.offset
	if start > len(fm.findings) {
		start = len(fm.findings)
	}

	end := start + fm.pageSize()
	if end > len(fm.findings) {
		end = len(fm.findings)
	}

	return fm.findings[start:end]
}
