// main package for the ctlint command-line tool
// Package main is the entry point for the ctlint CLI.
package main

import "ctlint.dev/pkg/ctlint/cmd"

func main() {
	cmd.Execute()
}
