package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/repo/meta"
)

// CreateBranch adds a branch pointing at HEAD. It does not switch to it.
func (r *Repository) CreateBranch(name string) error {
	if err := meta.ValidateBranchName(name); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBranchName, err)
	}
	if r.Meta.BranchExists(name) {
		return fmt.Errorf("branch %q: %w", name, ErrBranchExists)
	}
	if err := r.Meta.CreateBranch(name, r.Meta.Head()); err != nil {
		return err
	}
	r.Logger.Debug("created branch", "branch", name, "commit", r.Meta.Head())
	return nil
}

// DeleteBranch removes the branch pointer. Commits are never deleted.
func (r *Repository) DeleteBranch(name string) error {
	if !r.Meta.BranchExists(name) {
		return fmt.Errorf("branch %q: %w", name, ErrNoSuchBranch)
	}
	if name == r.Meta.CurrentBranch() {
		return fmt.Errorf("branch %q: %w", name, ErrCannotDeleteCurrent)
	}
	if err := r.Meta.DeleteBranch(name); err != nil {
		return err
	}
	r.Logger.Debug("deleted branch", "branch", name)
	return nil
}
