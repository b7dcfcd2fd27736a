package model

// FileReport holds the normalized diagnostics for a single checked file,
// as persisted to the reports directory.
type FileReport struct {
	File           Path         `yaml:"file"`
	CheckerVersion string       `yaml:"checkerVersion,omitempty"`
	Diagnostics    []Diagnostic `yaml:"diagnostics"`
}
