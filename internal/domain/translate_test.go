package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

func TestTranslate_DropsDenylistedFlags(t *testing.T) {
	tests := []string{
		"-fno-canonical-system-headers",
		"-fstack-usage",
		"/nologo",
		"/showIncludes",
	}

	for _, flag := range tests {
		t.Run(flag, func(t *testing.T) {
			kept, dropped := Translate(m.CompilationFlags{flag})

			assert.Empty(t, kept)
			assert.Equal(t, m.CompilationFlags{flag}, dropped)
		})
	}
}

func TestTranslate_DropsForeignWarningFlags(t *testing.T) {
	tests := []string{"/W3", "/W4", "/Wall", "/wd4996", "/we4289", "/w14640", "/w"}

	for _, flag := range tests {
		t.Run(flag, func(t *testing.T) {
			kept, dropped := Translate(m.CompilationFlags{flag})

			assert.Empty(t, kept)
			assert.Equal(t, m.CompilationFlags{flag}, dropped)
		})
	}
}

func TestTranslate_RewritesForeignFlags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"standard version", "/std:c++17", "-std=c++17"},
		{"standard version c", "/std:c11", "-std=c11"},
		{"macro definition", "/DFOO=1", "-DFOO=1"},
		{"macro definition bare", "/DNDEBUG", "-DNDEBUG"},
		{"force include", "/FIfoo.h", "-include=foo.h"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, dropped := Translate(m.CompilationFlags{tt.in})

			assert.Equal(t, m.CompilationFlags{tt.want}, kept)
			assert.Empty(t, dropped)
		})
	}
}

func TestTranslate_DropsUnknownForeignFlags(t *testing.T) {
	kept, dropped := Translate(m.CompilationFlags{"/arch:AVX2", "/GR-", "/EHsc"})

	assert.Empty(t, kept)
	assert.Len(t, dropped, 3)
}

func TestTranslate_PassesNativeFlagsThrough(t *testing.T) {
	flags := m.CompilationFlags{"-O2", "-Wall", "-Wextra", "-std=c++20", "-pthread", "-include", "config.h"}

	kept, dropped := Translate(flags)

	assert.Equal(t, flags, kept)
	assert.Empty(t, dropped)
}

func TestTranslate_MixedVectorKeepsOrder(t *testing.T) {
	kept, dropped := Translate(m.CompilationFlags{
		"-O2",
		"/W4",
		"/std:c++17",
		"-fno-canonical-system-headers",
		"/DUNICODE",
		"-Werror",
	})

	assert.Equal(t, m.CompilationFlags{"-O2", "-std=c++17", "-DUNICODE", "-Werror"}, kept)
	assert.Equal(t, m.CompilationFlags{"/W4", "-fno-canonical-system-headers"}, dropped)
}

func TestTranslate_EmptyInput(t *testing.T) {
	kept, dropped := Translate(nil)

	assert.Empty(t, kept)
	assert.Empty(t, dropped)
}
