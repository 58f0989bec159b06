// Package stage implements the staging area: per-path pending changes relative to HEAD.
package stage

import (
	"encoding"
	"fmt"
	"maps"

	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/util"
)

// State is the staging state of one path.
type State int

const (
	Unchanged State = iota
	StagedAdd
	StagedRemove
)

var (
	_ encoding.TextMarshaler   = State(0)
	_ encoding.TextUnmarshaler = (*State)(nil)
)

func (s State) String() string {
	switch s {
	case StagedAdd:
		return "add"
	case StagedRemove:
		return "remove"
	default:
		return "unchanged"
	}
}

func (s State) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

func (s *State) UnmarshalText(text []byte) error {
	switch string(text) {
	case "add":
		*s = StagedAdd
	case "remove":
		*s = StagedRemove
	case "unchanged", "":
		*s = Unchanged
	default:
		return fmt.Errorf("unknown staging state %q", text)
	}
	return nil
}

// Entry is one staged path. Blob is set only for StagedAdd.
type Entry struct {
	State State  `json:"state"`
	Blob  string `json:"blob,omitempty"`
}

// Area holds every staged path. A path has exactly one state, so a path can
// never be staged for addition and removal at once.
type Area struct {
	entries map[string]Entry
}

func New() *Area {
	return &Area{entries: map[string]Entry{}}
}

// Add stages path with blob, replacing any pending removal.
func (a *Area) Add(path, blob string) {
	a.entries[path] = Entry{State: StagedAdd, Blob: blob}
}

// MarkRemoved stages path for removal, replacing any pending addition.
func (a *Area) MarkRemoved(path string) {
	a.entries[path] = Entry{State: StagedRemove}
}

// Drop forgets any pending change for path.
func (a *Area) Drop(path string) {
	delete(a.entries, path)
}

// State returns the staging state of path.
func (a *Area) State(path string) State {
	return a.entries[path].State
}

// Entry returns the staged entry for path.
func (a *Area) Entry(path string) (Entry, bool) {
	e, ok := a.entries[path]
	return e, ok
}

// Added returns staged additions as path -> blob.
func (a *Area) Added() map[string]string {
	out := map[string]string{}
	for p, e := range a.entries {
		if e.State == StagedAdd {
			out[p] = e.Blob
		}
	}
	return out
}

// Removed returns the sorted paths staged for removal.
func (a *Area) Removed() []string {
	var out []string
	for _, p := range util.SortedKeys(a.entries) {
		if a.entries[p].State == StagedRemove {
			out = append(out, p)
		}
	}
	return out
}

func (a *Area) IsEmpty() bool { return len(a.entries) == 0 }

func (a *Area) Len() int { return len(a.entries) }

func (a *Area) Clear() {
	a.entries = map[string]Entry{}
}

// Apply returns the tree the next commit would record: base minus removals plus additions.
// base is not modified.
func (a *Area) Apply(base map[string]string) map[string]string {
	tree := maps.Clone(base)
	if tree == nil {
		tree = map[string]string{}
	}
	for p, e := range a.entries {
		switch e.State {
		case StagedAdd:
			tree[p] = e.Blob
		case StagedRemove:
			delete(tree, p)
		}
	}
	return tree
}

// Load reads the staging area from path. A missing file yields an empty area.
func Load(fsys fs.FS, path string) (*Area, error) {
	a := New()
	err := util.ReadJSON(fsys, path, &a.entries)
	if err != nil {
		if fsys.IsNotExist(err) {
			return New(), nil
		}
		return nil, fmt.Errorf("load staging area %q: %w", path, err)
	}
	if a.entries == nil {
		a.entries = map[string]Entry{}
	}
	return a, nil
}

// Save writes the staging area to path atomically.
func (a *Area) Save(fsys fs.FS, path string) error {
	if err := util.WriteJSON(fsys, path, a.entries); err != nil {
		return fmt.Errorf("save staging area %q: %w", path, err)
	}
	return nil
}
