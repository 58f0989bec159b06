package repo

import (
	"github.com/keshon/gitlet/internal/util"
)

// Status is a snapshot of branches, staging and the working tree.
type Status struct {
	Branches []string
	Current  string
	Staged   []string
	Removed  []string
	// Modified holds "path (modified)" and "path (deleted)" entries.
	Modified  []string
	Untracked []string
}

// Status collects every status section, each sorted case-insensitively.
func (r *Repository) Status() (*Status, error) {
	head, err := r.HeadCommit()
	if err != nil {
		return nil, err
	}

	st := &Status{
		Branches: r.Meta.ListBranches(),
		Current:  r.Meta.CurrentBranch(),
		Staged:   util.SortedKeys(r.Stage.Added()),
		Removed:  r.Stage.Removed(),
	}

	// Tracked means in HEAD and not staged for removal, or staged for addition.
	tracked := r.Stage.Apply(head.Tree)
	for _, p := range util.SortedKeys(tracked) {
		want := tracked[p]
		if !r.Files.Exists(p) {
			st.Modified = append(st.Modified, p+" (deleted)")
			continue
		}
		data, err := r.Files.Read(p)
		if err != nil {
			return nil, err
		}
		got, err := r.Objects.HashBlob(data)
		if err != nil {
			return nil, err
		}
		if got != want {
			st.Modified = append(st.Modified, p+" (modified)")
		}
	}

	files, err := r.Files.ScanFilesInWorkingTree()
	if err != nil {
		return nil, err
	}
	for _, p := range files {
		if _, inTree := tracked[p]; !inTree {
			st.Untracked = append(st.Untracked, p)
		}
	}

	for _, section := range [][]string{st.Staged, st.Removed, st.Modified, st.Untracked} {
		util.SortFold(section)
	}
	return st, nil
}
