package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/repo/stage"
	"github.com/keshon/gitlet/internal/repo/store/object"
	"github.com/keshon/gitlet/internal/util"
)

// CheckoutFile overwrites path in the working tree with HEAD's version.
func (r *Repository) CheckoutFile(path string) error {
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(head, path)
}

// CheckoutFileAt overwrites path with its version in the commit ref names.
// ref may be an abbreviated id.
func (r *Repository) CheckoutFileAt(ref, path string) error {
	_, c, err := r.ResolveCommit(ref)
	if err != nil {
		return err
	}
	return r.checkoutFileFrom(c, path)
}

func (r *Repository) checkoutFileFrom(c *object.Commit, path string) error {
	p, err := r.Files.Normalize(path)
	if err != nil {
		return fmt.Errorf("checkout %q: %w", path, ErrFileNotInCommit)
	}
	blob, ok := c.Tree[p]
	if !ok {
		return fmt.Errorf("checkout %q: %w", p, ErrFileNotInCommit)
	}
	data, err := r.Objects.GetBlob(blob)
	if err != nil {
		return err
	}
	return r.Files.Write(p, data)
}

// CheckoutBranch makes name the current branch and replaces the tracked files
// with the ones at its tip.
func (r *Repository) CheckoutBranch(name string) error {
	tip, ok := r.Meta.BranchHead(name)
	if !ok {
		return fmt.Errorf("checkout %q: %w", name, errNoSuchCheckoutBranch)
	}
	if name == r.Meta.CurrentBranch() {
		return fmt.Errorf("checkout %q: %w", name, ErrAlreadyOnBranch)
	}

	head, err := r.HeadCommit()
	if err != nil {
		return err
	}
	target, err := r.Objects.GetCommit(tip)
	if err != nil {
		return err
	}
	if err := r.switchTree(head, target); err != nil {
		return err
	}
	if err := r.Meta.SetCurrent(name); err != nil {
		return err
	}
	r.Stage.Clear()

	r.Logger.Debug("switched branch", "branch", name, "commit", tip)
	return nil
}

// Reset moves the current branch to the commit ref names and checks out its files.
func (r *Repository) Reset(ref string) (string, error) {
	id, target, err := r.ResolveCommit(ref)
	if err != nil {
		return "", err
	}
	head, err := r.HeadCommit()
	if err != nil {
		return "", err
	}
	if err := r.switchTree(head, target); err != nil {
		return "", err
	}
	if err := r.Meta.SetBranchHead(r.Meta.CurrentBranch(), id); err != nil {
		return "", err
	}
	r.Stage.Clear()

	r.Logger.Debug("reset", "branch", r.Meta.CurrentBranch(), "commit", id)
	return id, nil
}

// Untracked lists working files that HEAD does not track and that are not staged for addition.
func (r *Repository) Untracked() ([]string, error) {
	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}
	files, err := r.Files.ScanFilesInWorkingTree()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range files {
		if _, tracked := head.Tree[p]; tracked {
			continue
		}
		if r.Stage.State(p) == stage.StagedAdd {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// switchTree replaces the files tracked by from with the files of to.
// Every check and every blob read happens before the first write.
func (r *Repository) switchTree(from, to *object.Commit) error {
	untracked, err := r.Untracked()
	if err != nil {
		return err
	}
	for _, p := range untracked {
		if _, ok := to.Tree[p]; ok {
			return fmt.Errorf("%q: %w", p, ErrUntrackedObstruction)
		}
	}

	contents := make(map[string][]byte, len(to.Tree))
	for p, blob := range to.Tree {
		data, err := r.Objects.GetBlob(blob)
		if err != nil {
			return err
		}
		contents[p] = data
	}

	for _, p := range util.SortedKeys(from.Tree) {
		if _, keep := to.Tree[p]; keep {
			continue
		}
		if err := r.Files.Delete(p); err != nil {
			return err
		}
	}
	for _, p := range util.SortedKeys(contents) {
		if err := r.Files.Write(p, contents[p]); err != nil {
			return err
		}
	}
	return nil
}
