package merge

import (
	"github.com/keshon/gitlet/internal/util"
)

// Action says what a merge does with one path.
type Action int

const (
	// Keep leaves the current version (or absence) alone.
	Keep Action = iota
	// TakeGiven checks out and stages the given branch's version.
	TakeGiven
	// Remove deletes the path and stages the removal.
	Remove
	// Conflict writes both versions with markers and stages the result.
	Conflict
)

func (a Action) String() string {
	switch a {
	case TakeGiven:
		return "take-given"
	case Remove:
		return "remove"
	case Conflict:
		return "conflict"
	default:
		return "keep"
	}
}

// Outcome is the decision for a single path. Blob ids are "" when the path is
// absent from that side.
type Outcome struct {
	Path    string
	Action  Action
	Base    string
	Current string
	Given   string
}

// Decide classifies one path from its base, current and given blob ids.
func Decide(base, current, given string) Action {
	switch {
	case current == given:
		return Keep
	case base == current:
		if given == "" {
			return Remove
		}
		return TakeGiven
	case base == given:
		return Keep
	default:
		return Conflict
	}
}

// Classify decides every path present in any of the three trees, sorted by path.
func Classify(base, current, given map[string]string) []Outcome {
	paths := map[string]struct{}{}
	for _, tree := range []map[string]string{base, current, given} {
		for p := range tree {
			paths[p] = struct{}{}
		}
	}

	out := make([]Outcome, 0, len(paths))
	for _, p := range util.SortedKeys(paths) {
		b, c, g := base[p], current[p], given[p]
		out = append(out, Outcome{
			Path:    p,
			Action:  Decide(b, c, g),
			Base:    b,
			Current: c,
			Given:   g,
		})
	}
	return out
}

// Conflicts filters outcomes down to the conflicting paths.
func Conflicts(outcomes []Outcome) []string {
	var paths []string
	for _, o := range outcomes {
		if o.Action == Conflict {
			paths = append(paths, o.Path)
		}
	}
	return paths
}
