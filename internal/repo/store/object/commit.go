package object

import (
	"encoding/json"
	"time"

	"github.com/keshon/gitlet/internal/hash"
)

// Commit is an immutable snapshot of the full tracked tree.
type Commit struct {
	Message   string            `json:"message"`
	Parents   []string          `json:"parents"`
	Tree      map[string]string `json:"tree"`
	Timestamp time.Time         `json:"timestamp"`
	// Branch is informational and does not take part in the commit id.
	Branch string `json:"branch,omitempty"`
}

// NewCommit normalizes fields so that equal inputs always hash the same.
func NewCommit(message string, parents []string, tree map[string]string, ts time.Time, branch string) *Commit {
	if parents == nil {
		parents = []string{}
	}
	if tree == nil {
		tree = map[string]string{}
	}
	return &Commit{
		Message:   message,
		Parents:   parents,
		Tree:      tree,
		Timestamp: ts.UTC().Truncate(time.Second),
		Branch:    branch,
	}
}

// FirstParent returns the first parent id or "" for the root commit.
func (c *Commit) FirstParent() string {
	if len(c.Parents) == 0 {
		return ""
	}
	return c.Parents[0]
}

// IsMerge reports whether the commit has two parents.
func (c *Commit) IsMerge() bool { return len(c.Parents) > 1 }

// canonical is the content a commit id is computed from.
// encoding/json sorts map keys, so the encoding is stable.
type canonical struct {
	Message   string            `json:"message"`
	Parents   []string          `json:"parents"`
	Tree      map[string]string `json:"tree"`
	Timestamp int64             `json:"timestamp"`
}

// ID computes the commit id with the given hasher.
func (c *Commit) ID(h hash.Hasher) (string, error) {
	parents := c.Parents
	if parents == nil {
		parents = []string{}
	}
	tree := c.Tree
	if tree == nil {
		tree = map[string]string{}
	}
	data, err := json.Marshal(canonical{
		Message:   c.Message,
		Parents:   parents,
		Tree:      tree,
		Timestamp: c.Timestamp.Unix(),
	})
	if err != nil {
		return "", err
	}
	return h(data)
}
