package repo

import (
	"fmt"
	"strings"

	"github.com/keshon/gitlet/internal/repo/store/object"
)

// DateLayout is how commit dates are printed in logs.
const DateLayout = "Mon Jan 02 15:04:05 2006 -0700"

const shortIDLen = 7

// LogEntry pairs a commit with its id.
type LogEntry struct {
	ID     string
	Commit *object.Commit
}

// Log walks the first-parent chain from HEAD back to the initial commit.
func (r *Repository) Log() ([]LogEntry, error) {
	var out []LogEntry
	seen := map[string]bool{}
	for id := r.Meta.Head(); id != "" && !seen[id]; {
		seen[id] = true
		c, err := r.Objects.GetCommit(id)
		if err != nil {
			return nil, err
		}
		out = append(out, LogEntry{ID: id, Commit: c})
		id = c.FirstParent()
	}
	return out, nil
}

// GlobalLog returns every stored commit in id order.
func (r *Repository) GlobalLog() ([]LogEntry, error) {
	ids, err := r.Objects.CommitIDs()
	if err != nil {
		return nil, err
	}
	out := make([]LogEntry, 0, len(ids))
	for _, id := range ids {
		c, err := r.Objects.GetCommit(id)
		if err != nil {
			return nil, err
		}
		out = append(out, LogEntry{ID: id, Commit: c})
	}
	return out, nil
}

// Find returns the ids of every commit whose message is exactly message.
func (r *Repository) Find(message string) ([]string, error) {
	all, err := r.GlobalLog()
	if err != nil {
		return nil, err
	}
	var ids []string
	for _, e := range all {
		if e.Commit.Message == message {
			ids = append(ids, e.ID)
		}
	}
	if len(ids) == 0 {
		return nil, ErrNoMatchingCommit
	}
	return ids, nil
}

// FormatLogEntry renders one log block, trailing blank line included.
func (r *Repository) FormatLogEntry(e LogEntry) string {
	var b strings.Builder
	b.WriteString("===\n")
	fmt.Fprintf(&b, "commit %s\n", e.ID)
	if e.Commit.IsMerge() {
		fmt.Fprintf(&b, "Merge: %s %s\n", short(e.Commit.Parents[0]), short(e.Commit.Parents[1]))
	}
	fmt.Fprintf(&b, "Date: %s\n", e.Commit.Timestamp.In(r.Location).Format(DateLayout))
	b.WriteString(e.Commit.Message)
	b.WriteString("\n\n")
	return b.String()
}

func short(id string) string {
	if len(id) > shortIDLen {
		return id[:shortIDLen]
	}
	return id
}
