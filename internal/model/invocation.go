package model

// InvocationSpec is the config-as-data document handed to the fix-mode
// helper process. The builder serializes it to YAML; the helper validates
// and replays it instead of re-deriving the invocation. Source paths are
// relative to the project root so the helper can mirror them into a
// temporary workspace.
type InvocationSpec struct {
	Binary      string            `yaml:"binary" validate:"required"`
	Args        []string          `yaml:"args" validate:"required,min=1"`
	Env         map[string]string `yaml:"env,omitempty"`
	Sources     []Path            `yaml:"sources" validate:"required,min=1,dive,required"`
	PatchOutput Path              `yaml:"patch_output" validate:"required"`
}
