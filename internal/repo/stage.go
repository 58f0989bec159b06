package repo

import (
	"fmt"

	"github.com/keshon/gitlet/internal/repo/stage"
)

// Add stages the current content of path. Content identical to HEAD's version
// leaves nothing staged for the path.
func (r *Repository) Add(path string) error {
	p, err := r.Files.Normalize(path)
	if err != nil {
		return fmt.Errorf("add %q: %w", path, ErrFileMissing)
	}
	if !r.Files.Exists(p) {
		return fmt.Errorf("add %q: %w", p, ErrFileMissing)
	}

	data, err := r.Files.Read(p)
	if err != nil {
		return err
	}
	head, err := r.HeadCommit()
	if err != nil {
		return err
	}

	id, err := r.Objects.HashBlob(data)
	if err != nil {
		return err
	}
	if tracked, ok := head.Tree[p]; ok && tracked == id {
		r.Stage.Drop(p)
		r.Logger.Debug("content matches HEAD, nothing staged", "path", p)
		return nil
	}

	if _, err := r.Objects.PutBlob(data); err != nil {
		return err
	}
	r.Stage.Add(p, id)
	r.Logger.Debug("staged", "path", p, "blob", id)
	return nil
}

// RemoveOutcome tells which of the two removals Remove performed.
type RemoveOutcome int

const (
	// Unstaged means a pending addition was dropped; the working file is untouched.
	Unstaged RemoveOutcome = iota + 1
	// MarkedRemoved means the tracked file was staged for removal and deleted.
	MarkedRemoved
)

// Remove undoes a staged addition of path, or, when nothing is staged and HEAD
// tracks path, stages its removal and deletes the working file.
func (r *Repository) Remove(path string) (RemoveOutcome, error) {
	p, err := r.Files.Normalize(path)
	if err != nil {
		return 0, fmt.Errorf("rm %q: %w", path, ErrNothingToRemove)
	}

	if r.Stage.State(p) == stage.StagedAdd {
		r.Stage.Drop(p)
		r.Logger.Debug("unstaged", "path", p)
		return Unstaged, nil
	}

	head, err := r.HeadCommit()
	if err != nil {
		return 0, err
	}
	if _, tracked := head.Tree[p]; !tracked {
		return 0, fmt.Errorf("rm %q: %w", p, ErrNothingToRemove)
	}

	r.Stage.MarkRemoved(p)
	if err := r.Files.Delete(p); err != nil {
		return 0, err
	}
	r.Logger.Debug("staged removal", "path", p)
	return MarkedRemoved, nil
}
