package repo

import (
	"fmt"
	"maps"
	"strings"

	"github.com/keshon/gitlet/internal/repo/store/object"
)

// Commit records HEAD's tree with the staged changes applied and advances the
// current branch. It returns the new commit id.
func (r *Repository) Commit(message string) (string, error) {
	return r.commit(message, "")
}

// commit is shared by Commit and Merge. With a merge parent the commit gets two
// parents and is allowed even when the tree is unchanged.
func (r *Repository) commit(message, mergeParent string) (string, error) {
	if strings.TrimSpace(message) == "" {
		return "", ErrEmptyMessage
	}

	headID := r.Meta.Head()
	head, err := r.Objects.GetCommit(headID)
	if err != nil {
		return "", err
	}

	tree := r.Stage.Apply(head.Tree)
	if mergeParent == "" && maps.Equal(tree, head.Tree) {
		return "", ErrNoChanges
	}

	parents := []string{headID}
	if mergeParent != "" {
		parents = append(parents, mergeParent)
	}

	branch := r.Meta.CurrentBranch()
	c := object.NewCommit(message, parents, tree, r.Now(), branch)
	id, err := r.Objects.PutCommit(c)
	if err != nil {
		return "", err
	}
	if err := r.Meta.SetBranchHead(branch, id); err != nil {
		return "", fmt.Errorf("advance branch %q: %w", branch, err)
	}
	r.Stage.Clear()

	r.Logger.Debug("committed", "branch", branch, "commit", id, "files", len(tree))
	return id, nil
}
