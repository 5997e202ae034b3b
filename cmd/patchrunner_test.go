package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

const sampleInvocationSpec = `binary: clang-tidy
args:
  - --fix
  - lib/a.cc
  - --
  - -std=c++17
sources:
  - lib/a.cc
patch_output: out/lib_a.clang-tidy.patch
`

func TestLoadInvocationSpec(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fix.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInvocationSpec), 0o644))

	spec, err := loadInvocationSpec(path)
	require.NoError(t, err)

	assert.Equal(t, "clang-tidy", spec.Binary)
	assert.Equal(t, []string{"--fix", "lib/a.cc", "--", "-std=c++17"}, spec.Args)
	assert.Equal(t, []m.Path{"lib/a.cc"}, spec.Sources)
	assert.Equal(t, m.Path("out/lib_a.clang-tidy.patch"), spec.PatchOutput)
}

func TestLoadInvocationSpec_MissingFile(t *testing.T) {
	_, err := loadInvocationSpec(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read invocation spec")
}

func TestLoadInvocationSpec_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fix.yaml")
	require.NoError(t, os.WriteFile(path, []byte("binary: [broken"), 0o644))

	_, err := loadInvocationSpec(path)
	require.Error(t, err)
}

func TestPatchRunnerCmd_IsHidden(t *testing.T) {
	cmd := newPatchRunnerCmd()
	assert.True(t, cmd.Hidden)
}

func TestPatchRunnerCmd_RequiresSpecFlag(t *testing.T) {
	cmd := newPatchRunnerCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}
