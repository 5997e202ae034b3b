// Package adapter contains infrastructure adapters for the ctlint CLI.
package adapter

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	m "ctlint.dev/pkg/ctlint/internal/model"
)

// BuildMetaAdapter loads target compilation metadata exported by the build
// system. It hides the on-disk format so the domain layer only ever sees
// targets.
type BuildMetaAdapter interface {
	// LoadTargets reads a YAML target manifest or a clang
	// compile_commands.json, detected by file extension.
	LoadTargets(path m.Path) ([]m.Target, error)
}

// LocalBuildMetaAdapter is the file-based implementation.
type LocalBuildMetaAdapter struct{}

// NewLocalBuildMetaAdapter constructs a LocalBuildMetaAdapter.
func NewLocalBuildMetaAdapter() *LocalBuildMetaAdapter {
	return &LocalBuildMetaAdapter{}
}

// targetManifest is the YAML export shape: a flat list of targets.
type targetManifest struct {
	Targets []m.Target `yaml:"targets"`
}

// compileCommand is one entry of a clang compilation database.
type compileCommand struct {
	Directory string   `json:"directory"`
	Command   string   `json:"command"`
	Arguments []string `json:"arguments"`
	File      string   `json:"file"`
	Output    string   `json:"output"`
}

// LoadTargets implements BuildMetaAdapter.
func (a *LocalBuildMetaAdapter) LoadTargets(path m.Path) ([]m.Target, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read build metadata: %w", err)
	}

	if strings.EqualFold(filepath.Ext(string(path)), ".json") {
		return parseCompileCommands(data)
	}

	var manifest targetManifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parse target manifest %s: %w", path, err)
	}

	return manifest.Targets, nil
}

// parseCompileCommands converts a compilation database into per-file
// targets. Each entry becomes one single-source target; build-only argv
// entries (compiler binary, -c, -o, the source itself) are stripped and
// defines/includes are lifted into their categorized fields.
func parseCompileCommands(data []byte) ([]m.Target, error) {
	var entries []compileCommand
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse compilation database: %w", err)
	}

	targets := make([]m.Target, 0, len(entries))
	for _, entry := range entries {
		targets = append(targets, targetFromCompileCommand(entry))
	}

	return targets, nil
}

func targetFromCompileCommand(entry compileCommand) m.Target {
	args := entry.Arguments
	if len(args) == 0 {
		args = splitCommand(entry.Command)
	}

	if len(args) > 0 {
		args = args[1:] // compiler binary
	}

	target := m.Target{
		Name:    entry.File,
		Sources: []m.Path{m.Path(entry.File)},
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]

		switch {
		case arg == entry.File || arg == "-c":
			// Consumed by the compile step, meaningless to the linter.
		case arg == "-o":
			i++
		case entry.Output != "" && arg == "-o"+entry.Output:
			// Attached output form; other -o* flags (-objcmt-..., etc.)
			// are real options and fall through to Copts.
		case arg == "-D":
			if i+1 < len(args) {
				i++
				target.Defines = append(target.Defines, args[i])
			}
		case strings.HasPrefix(arg, "-D"):
			target.Defines = append(target.Defines, strings.TrimPrefix(arg, "-D"))
		case arg == "-iquote":
			if i+1 < len(args) {
				i++
				target.Includes.Quote = append(target.Includes.Quote, m.Path(args[i]))
			}
		case arg == "-isystem":
			if i+1 < len(args) {
				i++
				target.Includes.External = append(target.Includes.External, m.Path(args[i]))
			}
		case arg == "-I":
			if i+1 < len(args) {
				i++
				target.Includes.System = append(target.Includes.System, m.Path(args[i]))
			}
		case strings.HasPrefix(arg, "-I"):
			target.Includes.System = append(target.Includes.System, m.Path(strings.TrimPrefix(arg, "-I")))
		case arg == "-F":
			if i+1 < len(args) {
				i++
				target.Includes.Framework = append(target.Includes.Framework, m.Path(args[i]))
			}
		default:
			target.Copts = append(target.Copts, arg)
		}
	}

	return target
}

// splitCommand breaks a compile_commands "command" string into argv. The
// database escapes with quotes and backslashes; full shell evaluation is
// out of scope, these entries are never more than quoted words.
func splitCommand(command string) []string {
	var (
		args    []string
		current strings.Builder
		quote   rune
		word    bool
	)

	flush := func() {
		if word {
			args = append(args, current.String())
			current.Reset()

			word = false
		}
	}

	runes := []rune(command)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			word = true
		case r == '\\' && i+1 < len(runes):
			i++
			current.WriteRune(runes[i])

			word = true
		case r == ' ' || r == '\t':
			flush()
		default:
			current.WriteRune(r)

			word = true
		}
	}

	flush()

	return args
}
