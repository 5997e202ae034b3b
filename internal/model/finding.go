package model

// Severity of a linter finding.
type Severity string

const (
	// SeverityError is a diagnostic clang-tidy treats as an error.
	SeverityError Severity = "error"
	// SeverityWarning is a regular check finding.
	SeverityWarning Severity = "warning"
	// SeverityNote is supplementary context attached to another finding.
	SeverityNote Severity = "note"
)

// Finding is a single diagnostic parsed from linter output.
type Finding struct {
	File     Path     `yaml:"file"`
	Line     int      `yaml:"line"`
	Column   int      `yaml:"column"`
	Severity Severity `yaml:"severity"`
	Message  string   `yaml:"message"`
	Check    string   `yaml:"check,omitempty"`
}
