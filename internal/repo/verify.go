package repo

import (
	"fmt"
	"sort"

	"github.com/keshon/gitlet/internal/repo/store/object"
	"github.com/keshon/gitlet/internal/util"
)

// BlobCheck is a verification result annotated with the paths and branches using the blob.
type BlobCheck struct {
	object.BlobCheck
	Paths    []string
	Branches []string
}

// VerifyReport summarizes a repository check.
type VerifyReport struct {
	Commits  int
	Blobs    int
	Problems []string
}

// OK reports whether the check found nothing wrong.
func (v *VerifyReport) OK() bool { return len(v.Problems) == 0 }

// Verify walks every commit reachable from any branch, checks that each commit
// hashes to its id, and rehashes every blob those commits reference.
// onBlob, if set, is called for every checked blob.
func (r *Repository) Verify(workers int, onBlob func(BlobCheck)) (*VerifyReport, error) {
	if n, err := r.Objects.CleanupTemp(); err != nil {
		return nil, err
	} else if n > 0 {
		r.Logger.Debug("removed orphaned temp files", "count", n)
	}

	type blobMeta struct {
		paths    map[string]struct{}
		branches map[string]struct{}
	}
	metas := map[string]*blobMeta{}
	ids := map[string]struct{}{}
	report := &VerifyReport{}

	seen := map[string]bool{}
	tips := r.Meta.Tips()
	for _, branch := range util.SortedKeys(tips) {
		queue := []string{tips[branch]}
		visited := map[string]bool{}
		for len(queue) > 0 {
			id := queue[0]
			queue = queue[1:]
			if visited[id] {
				continue
			}
			visited[id] = true

			c, err := r.Objects.GetCommit(id)
			if err != nil {
				report.Problems = append(report.Problems, fmt.Sprintf("commit %s (branch %s): %v", id, branch, err))
				continue
			}
			if !seen[id] {
				seen[id] = true
				report.Commits++
				if actual, err := c.ID(r.Objects.Hash); err != nil || actual != id {
					report.Problems = append(report.Problems, fmt.Sprintf("commit %s: content does not match id", id))
				}
			}

			for path, blob := range c.Tree {
				m, ok := metas[blob]
				if !ok {
					m = &blobMeta{paths: map[string]struct{}{}, branches: map[string]struct{}{}}
					metas[blob] = m
					ids[blob] = struct{}{}
				}
				m.paths[path] = struct{}{}
				m.branches[branch] = struct{}{}
			}
			queue = append(queue, c.Parents...)
		}
	}

	for check := range r.Objects.Verify(ids, workers) {
		report.Blobs++
		m := metas[check.ID]
		bc := BlobCheck{
			BlobCheck: check,
			Paths:     util.SortedKeys(m.paths),
			Branches:  util.SortedKeys(m.branches),
		}
		if check.Status != object.OK {
			report.Problems = append(report.Problems, fmt.Sprintf("blob %s is %s (%v)", check.ID, check.Status, bc.Paths))
		}
		if onBlob != nil {
			onBlob(bc)
		}
	}
	sort.Strings(report.Problems)
	return report, nil
}
