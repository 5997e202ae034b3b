// Package model defines the data structures for lint action construction.
package model

// Path represents a file system path.
type Path string

// CompilationFlags is an ordered, flat compiler argument vector.
type CompilationFlags []string

// IncludeSet groups a target's include directories by the category the
// compilation context reports them under.
type IncludeSet struct {
	Quote     []Path `yaml:"quote,omitempty"`
	System    []Path `yaml:"system,omitempty"`
	Framework []Path `yaml:"framework,omitempty"`
	External  []Path `yaml:"external,omitempty"`
}

// Target is the compilation context of a single build target: the sources
// and headers it compiles, its preprocessor defines, its include directories
// and its rule-level compiler options.
type Target struct {
	Name     string           `yaml:"name"`
	Sources  []Path           `yaml:"srcs"`
	Headers  []Path           `yaml:"hdrs,omitempty"`
	Defines  []string         `yaml:"defines,omitempty"`
	Includes IncludeSet       `yaml:"includes,omitempty"`
	Copts    CompilationFlags `yaml:"copts,omitempty"`
}
