package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("81"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("221"))
	subduedStyle  = lipgloss.NewStyle().Faint(true)
	severityStyle = map[m.Severity]lipgloss.Style{
		m.SeverityError:   errorStyle,
		m.SeverityWarning: warningStyle,
		m.SeverityNote:    subduedStyle,
	}
)

// SimpleUI implements UI using cobra Command's Println.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayTargets prints one row per target with source and header counts.
func (s *SimpleUI) DisplayTargets(ctx context.Context, targets []m.Target) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n%s", titleStyle.Render("Targets"), renderTargetsTable(targets))

	return nil
}

// DisplayFlags prints the translated argument vector and the flags the
// translator dropped for one target.
func (s *SimpleUI) DisplayFlags(ctx context.Context, target string, kept, dropped m.CompilationFlags) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", titleStyle.Render("Flags for "+target))

	for _, flag := range kept {
		s.printf("  %s\n", flag)
	}

	if len(dropped) == 0 {
		return nil
	}

	s.printf("%s\n", titleStyle.Render("Dropped"))

	for _, flag := range dropped {
		s.printf("  %s\n", subduedStyle.Render(flag))
	}

	return nil
}

// DisplaySummary prints the per-target result table.
func (s *SimpleUI) DisplaySummary(ctx context.Context, reports []m.TargetReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(reports))

	return nil
}

// DisplayFindings prints every finding as a table row.
func (s *SimpleUI) DisplayFindings(ctx context.Context, findings []m.Finding) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(findings) == 0 {
		s.printf("No findings.\n")

		return nil
	}

	s.printf("\n%s", renderFindingsTable(findings))

	return nil
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.cmd.Printf(format, args...)
}

func renderTargetsTable(targets []m.Target) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Target", "Sources", "Headers", "Copts"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalSources := 0

	for _, target := range targets {
		table.Append([]string{
			target.Name,
			fmt.Sprintf("%d", len(target.Sources)),
			fmt.Sprintf("%d", len(target.Headers)),
			fmt.Sprintf("%d", len(target.Copts)),
		})

		totalSources += len(target.Sources)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Targets %d", len(targets)),
		fmt.Sprintf("%d", totalSources),
		"",
		"",
	})
	table.Render()

	return buf.String()
}

func renderSummaryTable(reports []m.TargetReport) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Target", "Findings", "Exit", "Dropped Flags", "Patched Files"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	totalFindings := 0

	for _, report := range reports {
		patched := "-"
		if report.Patch != nil {
			patched = fmt.Sprintf("%d", len(report.Patch.Files))
		}

		name := report.Target
		if report.NoOp {
			name += " (no-op)"
		}

		table.Append([]string{
			name,
			fmt.Sprintf("%d", len(report.Findings)),
			fmt.Sprintf("%d", report.ExitCode),
			fmt.Sprintf("%d", len(report.DroppedFlags)),
			patched,
		})

		totalFindings += len(report.Findings)
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Targets %d", len(reports)),
		fmt.Sprintf("%d", totalFindings),
		"",
		"",
		"",
	})
	table.Render()

	return buf.String()
}

func renderFindingsTable(findings []m.Finding) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Location", "Severity", "Check", "Message"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, finding := range findings {
		severity := string(finding.Severity)
		if style, ok := severityStyle[finding.Severity]; ok {
			severity = style.Render(severity)
		}

		table.Append([]string{
			fmt.Sprintf("%s:%d:%d", finding.File, finding.Line, finding.Column),
			severity,
			finding.Check,
			finding.Message,
		})
	}

	table.Render()

	return buf.String()
}
