// Package meta holds the branch directory and the HEAD reference.
package meta

import (
	"fmt"
	"path/filepath"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/util"
)

// MetaContext is the in-memory branch directory. Changes reach disk on Save.
type MetaContext struct {
	Config *config.RepoConfig
	FS     fs.FS

	branches map[string]string // name -> commit id
	current  string
	deleted  map[string]struct{}
}

func newMeta(cfg *config.RepoConfig, fsys fs.FS) *MetaContext {
	return &MetaContext{
		Config:   cfg,
		FS:       fsys,
		branches: map[string]string{},
		deleted:  map[string]struct{}{},
	}
}

// Create starts a branch directory with a single branch pointing at head.
func Create(cfg *config.RepoConfig, fsys fs.FS, branch, head string) (*MetaContext, error) {
	if err := ValidateBranchName(branch); err != nil {
		return nil, err
	}
	mc := newMeta(cfg, fsys)
	mc.branches[branch] = head
	mc.current = branch
	return mc, nil
}

// Load reads HEAD and every branch file.
func Load(cfg *config.RepoConfig, fsys fs.FS) (*MetaContext, error) {
	mc := newMeta(cfg, fsys)

	ref, err := mc.readHeadRef()
	if err != nil {
		return nil, err
	}
	mc.current = ref.Branch()

	entries, err := fsys.ReadDir(cfg.BranchesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to read branches directory %q: %w", cfg.BranchesDir(), err)
	}
	for _, e := range entries {
		if e.IsDir() || ValidateBranchName(e.Name()) != nil {
			continue
		}
		data, err := fsys.ReadFile(filepath.Join(cfg.BranchesDir(), e.Name()))
		if err != nil {
			return nil, fmt.Errorf("failed to read branch %q: %w", e.Name(), err)
		}
		mc.branches[e.Name()] = string(data)
	}

	if _, ok := mc.branches[mc.current]; !ok {
		return nil, fmt.Errorf("HEAD points at missing branch %q", mc.current)
	}
	return mc, nil
}

// Save writes every branch pointer, removes deleted branches and rewrites HEAD.
func (mc *MetaContext) Save() error {
	dir := mc.Config.BranchesDir()
	if err := mc.FS.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create branches dir: %w", err)
	}
	for _, name := range util.SortedKeys(mc.branches) {
		path := filepath.Join(dir, name)
		if err := util.WriteFileAtomic(mc.FS, path, []byte(mc.branches[name])); err != nil {
			return fmt.Errorf("failed to write branch file %q: %w", path, err)
		}
	}
	for name := range mc.deleted {
		err := mc.FS.Remove(filepath.Join(dir, name))
		if err != nil && !mc.FS.IsNotExist(err) {
			return fmt.Errorf("failed to remove branch file %q: %w", name, err)
		}
	}
	mc.deleted = map[string]struct{}{}
	return mc.writeHeadRef(RefForBranch(mc.current))
}
