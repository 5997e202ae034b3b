package domain

import (
	"regexp"
	"strconv"
	"strings"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// findingPattern matches clang-tidy diagnostic lines, e.g.
//
//	lib/parser.cc:12:5: warning: use of undeclared identifier [clang-diagnostic-error]
//
// The trailing check name is optional; compiler diagnostics omit it.
var findingPattern = regexp.MustCompile(`^(.+?):(\d+):(\d+): (fatal error|error|warning|note): (.*?)(?: \[([A-Za-z0-9.,_-]+)\])?$`)

// ParseFindings extracts structured findings from raw linter output.
// Non-diagnostic lines (code excerpts, caret markers, suppression stats)
// are ignored.
func ParseFindings(output string) []m.Finding {
	var findings []m.Finding

	for _, line := range strings.Split(output, "\n") {
		match := findingPattern.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if match == nil {
			continue
		}

		lineNo, _ := strconv.Atoi(match[2])
		colNo, _ := strconv.Atoi(match[3])

		severity := m.Severity(match[4])
		if match[4] == "fatal error" {
			// Unresolvable includes and the like; still an error class.
			severity = m.SeverityError
		}

		findings = append(findings, m.Finding{
			File:     m.Path(match[1]),
			Line:     lineNo,
			Column:   colNo,
			Severity: severity,
			Message:  match[5],
			Check:    match[6],
		})
	}

	return findings
}
