// Package pkg is a package that provides utilities for ctlint.
package pkg

import "strings"

// safeRunes are the characters that never need quoting in a POSIX shell
// word. Everything else forces the word into single quotes.
const safeRunes = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
	"-_./=:+@%^,"

// QuoteArg renders one argument so it can be pasted into a POSIX shell and
// round-trip to the same value.
func QuoteArg(arg string) string {
	if arg == "" {
		return "''"
	}

	safe := true

	for _, r := range arg {
		if !strings.ContainsRune(safeRunes, r) {
			safe = false

			break
		}
	}

	if safe {
		return arg
	}

	return "'" + strings.ReplaceAll(arg, "'", `'\''`) + "'"
}

// JoinCommand renders a binary and its argument vector as a single
// copy-pasteable shell command line. Used for logs and reports so a failing
// lint invocation can be reproduced by hand.
func JoinCommand(binary string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, QuoteArg(binary))

	for _, arg := range args {
		parts = append(parts, QuoteArg(arg))
	}

	return strings.Join(parts, " ")
}
