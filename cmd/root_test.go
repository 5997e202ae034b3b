package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

func TestParsePaths(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []m.Path
	}{
		{"empty", []string{}, []m.Path{}},
		{"single", []string{".clang-tidy"}, []m.Path{m.Path(".clang-tidy")}},
		{
			"multiple",
			[]string{"lib/.clang-tidy", "third_party/.clang-tidy"},
			[]m.Path{m.Path("lib/.clang-tidy"), m.Path("third_party/.clang-tidy")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePaths(tt.args)
			require.Len(t, got, len(tt.want))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "ctlint", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.Equal(t, rootLongDescription, cmd.Long)
}

func TestRootCmd_HelpOutput(t *testing.T) {
	cmd := newRootCmd()
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
	assert.Contains(t, output.String(), "clang-tidy")
}

func TestInit(t *testing.T) {
	// init() wires every shared dependency.
	assert.NotNil(t, ui)
	assert.NotNil(t, buildMetaAdapter)
	assert.NotNil(t, linterRunner)
	assert.NotNil(t, patchAdapter)
	assert.NotNil(t, reportStore)
	assert.NotNil(t, workflow)
}

func TestBuilderOptions_Defaults(t *testing.T) {
	options, err := builderOptions(false)
	require.NoError(t, err)

	assert.Equal(t, "clang-tidy", options.Binary)
	assert.True(t, options.AutoHeaderFilter)
	assert.True(t, options.AngleIncludesAsSystem)
	assert.False(t, options.CaptureExitCode)
	assert.False(t, options.Fix)
	assert.Empty(t, options.SelfBinary)
}

func TestBuilderOptions_FixModeResolvesSelfBinary(t *testing.T) {
	options, err := builderOptions(true)
	require.NoError(t, err)

	assert.True(t, options.Fix)
	// Fix actions re-invoke this binary as the patch-runner helper.
	assert.NotEmpty(t, options.SelfBinary)
}
