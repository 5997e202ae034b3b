package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuoteArg(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want string
	}{
		{name: "plain flag", arg: "-std=c++17", want: "-std=c++17"},
		{name: "path", arg: "src/a.cc", want: "src/a.cc"},
		{name: "empty", arg: "", want: "''"},
		{name: "space", arg: "include dir", want: "'include dir'"},
		{name: "define with quotes", arg: `-DNAME="v"`, want: `'-DNAME="v"'`},
		{name: "single quote", arg: "it's", want: `'it'\''s'`},
		{name: "header filter regex", arg: "^lib/.*", want: "'^lib/.*'"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, QuoteArg(tc.arg))
		})
	}
}

func TestJoinCommand(t *testing.T) {
	command := JoinCommand("clang-tidy", []string{
		"-header-filter=^lib/.*",
		"src/a.cc",
		"--",
		"-DNAME=a b",
	})

	assert.Equal(t, `clang-tidy '-header-filter=^lib/.*' src/a.cc -- '-DNAME=a b'`, command)
}

func TestJoinCommand_NoArgs(t *testing.T) {
	assert.Equal(t, "clang-tidy", JoinCommand("clang-tidy", nil))
}
