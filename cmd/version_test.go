package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_NamesTheTool(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	// Test binaries carry no main-module version; "devel" stands in.
	output := out.String()
	assert.Contains(t, output, "ctlint ")
	assert.Contains(t, output, "(go")
}
