// Package domain implements flag translation and lint action construction.
package domain

import (
	"log/slog"
	"strings"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// ruleKind tags a translation rule variant.
type ruleKind int

const (
	ruleDrop ruleKind = iota
	ruleRename
)

// translationRule maps a flag pattern to an action. An exact pattern matches
// the whole flag; a prefix pattern matches its head and, for renames, the
// matched prefix is swapped for the replacement.
type translationRule struct {
	kind        ruleKind
	exact       string
	prefix      string
	replacement string
}

func (r translationRule) matches(flag string) bool {
	if r.exact != "" {
		return flag == r.exact
	}

	return strings.HasPrefix(flag, r.prefix)
}

func (r translationRule) apply(flag string) (string, bool) {
	if r.kind == ruleDrop {
		return "", false
	}

	return r.replacement + strings.TrimPrefix(flag, r.prefix), true
}

// translationRules is evaluated first-match-wins, one pass per input flag.
//
// Ordering matters: the exact denylist comes first, then MSVC warning
// toggles (they hard-fail clang-tidy, which does not know them), then the
// rewrites into clang dialect, and finally a blanket drop of every other
// MSVC-syntax option. Flags matching nothing pass through untouched.
var translationRules = []translationRule{
	// Build-system and GCC-only flags clang-tidy chokes on.
	{kind: ruleDrop, exact: "-fno-canonical-system-headers"},
	{kind: ruleDrop, exact: "-fstack-usage"},
	{kind: ruleDrop, exact: "/nologo"},
	{kind: ruleDrop, exact: "/showIncludes"},
	{kind: ruleDrop, prefix: "/W"},
	{kind: ruleDrop, prefix: "/w"},
	{kind: ruleRename, prefix: "/std:", replacement: "-std="},
	{kind: ruleRename, prefix: "/D", replacement: "-D"},
	{kind: ruleRename, prefix: "/FI", replacement: "-include="},
	{kind: ruleDrop, prefix: "/"},
}

// Translate filters a compiler argument vector down to what clang-tidy
// accepts. It never fails: unrecognized foreign flags are dropped rather
// than aborting, and everything else passes through unchanged. The dropped
// flags are returned so callers can surface them as diagnostics.
func Translate(flags m.CompilationFlags) (kept, dropped m.CompilationFlags) {
	kept = make(m.CompilationFlags, 0, len(flags))

	for _, flag := range flags {
		out, keep := translateFlag(flag)
		if !keep {
			dropped = append(dropped, flag)
			slog.Debug("dropped compiler flag", "flag", flag)

			continue
		}

		kept = append(kept, out)
	}

	return kept, dropped
}

func translateFlag(flag string) (string, bool) {
	for _, rule := range translationRules {
		if rule.matches(flag) {
			return rule.apply(flag)
		}
	}

	return flag, true
}
