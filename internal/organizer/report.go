package organizer

import (
	"sort"
	"time"
)

// ActionKind identifies what a run did to the filesystem.
type ActionKind string

const (
	ActionCreateFolder ActionKind = "create_folder"
	ActionMoveFile     ActionKind = "move_file"
	ActionMoveMeta     ActionKind = "move_meta"
	ActionMovePlugin   ActionKind = "move_plugin"
	ActionUndoMove     ActionKind = "undo_move"
	ActionRemoveFolder ActionKind = "remove_folder"
)

// Action is a single filesystem change made by a run.
type Action struct {
	Kind   ActionKind `json:"kind" yaml:"kind"`
	Name   string     `json:"name" yaml:"name"`
	Folder string     `json:"folder" yaml:"folder"`
	Path   string     `json:"path" yaml:"path"`
}

// Skipped is an entry left in place.
type Skipped struct {
	Name  string `json:"name" yaml:"name"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
	Hint  string `json:"hint,omitempty" yaml:"hint,omitempty"`
}

// Report summarizes a run. On failure it holds what completed before the error.
type Report struct {
	RunID      string        `json:"run_id" yaml:"run_id"`
	Root       string        `json:"root" yaml:"root"`
	StartedAt  time.Time     `json:"started_at" yaml:"started_at"`
	Duration   time.Duration `json:"duration" yaml:"duration"`
	Created    []string      `json:"created,omitempty" yaml:"created,omitempty"`
	Moves      []Action      `json:"moves,omitempty" yaml:"moves,omitempty"`
	Skipped    []Skipped     `json:"skipped,omitempty" yaml:"skipped,omitempty"`
	Excluded   []string      `json:"excluded,omitempty" yaml:"excluded,omitempty"`
	RolledBack bool          `json:"rolled_back,omitempty" yaml:"rolled_back,omitempty"`
	Error      string        `json:"error,omitempty" yaml:"error,omitempty"`
}

// FolderCount is the number of entries moved into one folder.
type FolderCount struct {
	Folder string
	Moved  int
}

// CountByFolder returns per-folder move counts for every destination folder,
// in creation order.
func (r *Report) CountByFolder() []FolderCount {
	counts := make(map[string]int)
	for _, m := range r.Moves {
		counts[m.Folder]++
	}
	out := make([]FolderCount, 0, len(folders))
	for _, f := range folders {
		out = append(out, FolderCount{Folder: f, Moved: counts[f]})
	}
	return out
}

// Hints returns the skipped entries that carry a hint, sorted by name.
func (r *Report) Hints() []Skipped {
	var out []Skipped
	for _, s := range r.Skipped {
		if s.Hint != "" {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Changed reports whether the run left any change on disk.
func (r *Report) Changed() bool {
	return !r.RolledBack && (len(r.Created) > 0 || len(r.Moves) > 0)
}
