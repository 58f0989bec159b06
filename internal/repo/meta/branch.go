package meta

import (
	"fmt"
	"os"
	"strings"

	"github.com/keshon/gitlet/internal/util"
)

// ValidateBranchName rejects names that cannot be stored as a branch file.
func ValidateBranchName(name string) error {
	switch {
	case name == "", name == ".", name == "..":
		return fmt.Errorf("invalid branch name %q", name)
	case strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".tmp-"):
		return fmt.Errorf("invalid branch name %q", name)
	}
	return nil
}

// CurrentBranch returns the name HEAD refers to.
func (mc *MetaContext) CurrentBranch() string { return mc.current }

// Head returns the commit id at the tip of the current branch.
func (mc *MetaContext) Head() string { return mc.branches[mc.current] }

// BranchHead returns the tip of name.
func (mc *MetaContext) BranchHead(name string) (string, bool) {
	id, ok := mc.branches[name]
	return id, ok
}

func (mc *MetaContext) BranchExists(name string) bool {
	_, ok := mc.branches[name]
	return ok
}

// ListBranches returns branch names sorted case-insensitively.
func (mc *MetaContext) ListBranches() []string {
	names := util.SortedKeys(mc.branches)
	util.SortFold(names)
	return names
}

// CreateBranch adds a branch pointing at head.
func (mc *MetaContext) CreateBranch(name, head string) error {
	if err := ValidateBranchName(name); err != nil {
		return err
	}
	if mc.BranchExists(name) {
		return fmt.Errorf("branch %q already exists: %w", name, os.ErrExist)
	}
	mc.branches[name] = head
	delete(mc.deleted, name)
	return nil
}

// DeleteBranch removes a branch pointer. The current branch cannot be deleted.
func (mc *MetaContext) DeleteBranch(name string) error {
	if !mc.BranchExists(name) {
		return fmt.Errorf("branch %q does not exist: %w", name, os.ErrNotExist)
	}
	if name == mc.current {
		return fmt.Errorf("cannot delete current branch %q", name)
	}
	delete(mc.branches, name)
	mc.deleted[name] = struct{}{}
	return nil
}

// SetBranchHead moves an existing branch to id.
func (mc *MetaContext) SetBranchHead(name, id string) error {
	if !mc.BranchExists(name) {
		return fmt.Errorf("branch %q does not exist: %w", name, os.ErrNotExist)
	}
	mc.branches[name] = id
	return nil
}

// SetCurrent makes name the current branch.
func (mc *MetaContext) SetCurrent(name string) error {
	if !mc.BranchExists(name) {
		return fmt.Errorf("branch %q does not exist: %w", name, os.ErrNotExist)
	}
	mc.current = name
	return nil
}

// Tips returns a copy of every branch pointer.
func (mc *MetaContext) Tips() map[string]string {
	out := make(map[string]string, len(mc.branches))
	for k, v := range mc.branches {
		out[k] = v
	}
	return out
}
