package model

// SkipReason explains why a bindings entry is not a generator input
type SkipReason string

const (
	SkipNone          SkipReason = ""
	SkipNotDirectory  SkipReason = "not_directory"
	SkipExcluded      SkipReason = "excluded"
	SkipMissingMarker SkipReason = "missing_marker"
	SkipNotSelected   SkipReason = "not_selected"
)

// Folder is one entry of the bindings directory
type Folder struct {
	Name       string     `json:"name"`
	Path       string     `json:"path"`
	SkipReason SkipReason `json:"skip_reason,omitempty"`
}

// Qualifies reports whether the generator should run on this folder
func (f *Folder) Qualifies() bool {
	return f.SkipReason == SkipNone
}

// FolderResult records one generator invocation
type FolderResult struct {
	Folder    Folder `json:"folder"`
	ExitCode  int    `json:"exit_code"`
	Succeeded bool   `json:"succeeded"`
	Error     string `json:"error,omitempty"`
}
