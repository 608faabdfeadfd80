package model

// CopyStatus is the outcome of copying one version's artifact
type CopyStatus string

const (
	CopyStatusCopied  CopyStatus = "copied"
	CopyStatusMissing CopyStatus = "missing"
	CopyStatusFailed  CopyStatus = "failed"
)

// CopyResult records one artifact copy
type CopyResult struct {
	Version string     `json:"version"`
	Source  string     `json:"source"`
	DestDir string     `json:"dest_dir"`
	Dest    string     `json:"dest"`
	Status  CopyStatus `json:"status"`
	Error   string     `json:"error,omitempty"`
}

// Report summarises a full pipeline run
type Report struct {
	RunID      string         `json:"run_id"`
	Executable string         `json:"executable"`
	Built      bool           `json:"built"`
	Folders    []FolderResult `json:"folders"`
	Succeeded  []string       `json:"succeeded"`
	Copies     []CopyResult   `json:"copies"`
}

// Failed returns the names of folders whose generator run did not succeed
func (r *Report) Failed() []string {
	var names []string
	for _, f := range r.Folders {
		if !f.Succeeded {
			names = append(names, f.Folder.Name)
		}
	}
	return names
}

// Copied counts artifacts that made it to the output tree
func (r *Report) Copied() int {
	var n int
	for _, c := range r.Copies {
		if c.Status == CopyStatusCopied {
			n++
		}
	}
	return n
}
