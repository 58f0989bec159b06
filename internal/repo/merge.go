package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/repo/merge"
)

// MergeResult describes a finished merge.
type MergeResult struct {
	Given   string
	Current string
	Base    string
	// FastForward is set when the current branch was simply moved to the given tip.
	FastForward bool
	// Commit is the new merge commit, or the given tip after a fast-forward.
	Commit    string
	Conflicts []string
}

// MergeMessage is the message recorded on merge commits.
func MergeMessage(given, current string) string {
	return fmt.Sprintf("Merged %s into %s.", given, current)
}

// Merge merges branch into the current branch. Conflicts do not fail the
// merge; they are written with markers, committed and listed in the result.
func (r *Repository) Merge(branch string) (*MergeResult, error) {
	if !r.Stage.IsEmpty() {
		return nil, ErrUncommittedChanges
	}
	givenTip, ok := r.Meta.BranchHead(branch)
	if !ok {
		return nil, fmt.Errorf("merge %q: %w", branch, ErrNoSuchBranch)
	}
	current := r.Meta.CurrentBranch()
	if branch == current {
		return nil, fmt.Errorf("merge %q: %w", branch, ErrSelfMerge)
	}

	curTip := r.Meta.Head()
	base, err := merge.Base(r.Objects, curTip, givenTip)
	if err != nil {
		return nil, err
	}
	if base == "" {
		return nil, fmt.Errorf("no common ancestor between %q and %q", current, branch)
	}
	res := &MergeResult{Given: branch, Current: current, Base: base}
	r.Logger.Debug("merge base", "current", curTip, "given", givenTip, "base", base)

	if base == givenTip {
		return nil, ErrGivenIsAncestor
	}

	head, err := r.Objects.GetCommit(curTip)
	if err != nil {
		return nil, err
	}
	given, err := r.Objects.GetCommit(givenTip)
	if err != nil {
		return nil, err
	}

	if base == curTip {
		if err := r.switchTree(head, given); err != nil {
			return nil, err
		}
		if err := r.Meta.SetBranchHead(current, givenTip); err != nil {
			return nil, err
		}
		r.Stage.Clear()
		res.FastForward = true
		res.Commit = givenTip
		return res, nil
	}

	baseCommit, err := r.Objects.GetCommit(base)
	if err != nil {
		return nil, err
	}

	untracked, err := r.Untracked()
	if err != nil {
		return nil, err
	}
	for _, p := range untracked {
		if blob, ok := given.Tree[p]; ok && blob != baseCommit.Tree[p] {
			return nil, fmt.Errorf("%q: %w", p, ErrUntrackedObstruction)
		}
	}

	outcomes := merge.Classify(baseCommit.Tree, head.Tree, given.Tree)
	res.Conflicts = merge.Conflicts(outcomes)

	// Read every blob the merge needs before touching the working tree.
	blobs := map[string][]byte{}
	load := func(id string) error {
		if id == "" {
			return nil
		}
		if _, ok := blobs[id]; ok {
			return nil
		}
		data, err := r.Objects.GetBlob(id)
		if err != nil {
			return err
		}
		blobs[id] = data
		return nil
	}
	for _, o := range outcomes {
		switch o.Action {
		case merge.TakeGiven:
			err = load(o.Given)
		case merge.Conflict:
			if err = load(o.Current); err == nil {
				err = load(o.Given)
			}
		}
		if err != nil {
			return nil, err
		}
	}

	for _, o := range outcomes {
		switch o.Action {
		case merge.TakeGiven:
			if err := r.Files.Write(o.Path, blobs[o.Given]); err != nil {
				return nil, err
			}
			r.Stage.Add(o.Path, o.Given)
		case merge.Remove:
			r.Stage.MarkRemoved(o.Path)
			if err := r.Files.Delete(o.Path); err != nil {
				return nil, err
			}
		case merge.Conflict:
			text := merge.ConflictText(blobs[o.Current], blobs[o.Given])
			id, err := r.Objects.PutBlob(text)
			if err != nil {
				return nil, err
			}
			if err := r.Files.Write(o.Path, text); err != nil {
				return nil, err
			}
			r.Stage.Add(o.Path, id)
			r.Logger.Debug("merge conflict", "path", o.Path)
		}
	}

	id, err := r.commit(MergeMessage(branch, current), givenTip)
	if err != nil {
		return nil, err
	}
	res.Commit = id
	return res, nil
}
