package model

// FilePatchStat summarizes the patch hunks touching a single file.
type FilePatchStat struct {
	File    Path `yaml:"file"`
	Added   int  `yaml:"added"`
	Changed int  `yaml:"changed"`
	Deleted int  `yaml:"deleted"`
}

// PatchSummary aggregates fix-mode patch statistics for a target.
type PatchSummary struct {
	Patch Path            `yaml:"patch"`
	Files []FilePatchStat `yaml:"files,omitempty"`
}

// TargetReport is the per-target result of a lint pass.
type TargetReport struct {
	Target       string        `yaml:"target"`
	Command      string        `yaml:"command,omitempty"`      // reproducible linter invocation
	ConfigFiles  []Path        `yaml:"config_files,omitempty"` // configs the invocation depended on
	ExitCode     int           `yaml:"exit_code"`
	NoOp         bool          `yaml:"no_op,omitempty"`
	Findings     []Finding     `yaml:"findings,omitempty"`
	DroppedFlags []string      `yaml:"dropped_flags,omitempty"`
	Patch        *PatchSummary `yaml:"patch,omitempty"`
}
