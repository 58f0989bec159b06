package store

import (
	"fmt"

	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo/store/file"
	"github.com/keshon/gitlet/internal/repo/store/object"
)

// StoreContext unifies the object store and the working tree.
type StoreContext struct {
	Config  *config.RepoConfig
	Objects *object.Store
	Files   *file.FileContext
}

// NewStoreOptions allows optional dependency injection.
type NewStoreOptions struct {
	FS      fs.FS
	Objects *object.Store
	Files   *file.FileContext
}

// NewStore builds a store over cfg, creating the object directories if missing.
func NewStore(cfg *config.RepoConfig, opts *NewStoreOptions) (*StoreContext, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil RepoConfig provided")
	}

	fsys := fs.FS(fs.NewOSFS())
	if opts != nil && opts.FS != nil {
		fsys = opts.FS
	}

	if !isStoreExists(cfg, fsys) {
		if err := createStoreStructure(cfg, fsys); err != nil {
			return nil, err
		}
	}

	var objects *object.Store
	if opts != nil && opts.Objects != nil {
		objects = opts.Objects
	} else {
		var err error
		if objects, err = object.NewStore(cfg, fsys); err != nil {
			return nil, err
		}
	}

	files := file.NewFileContext(cfg.WorkingTreeDir, cfg.IgnoreFile(), fsys)
	if opts != nil && opts.Files != nil {
		files = opts.Files
	}

	return &StoreContext{
		Config:  cfg,
		Objects: objects,
		Files:   files,
	}, nil
}

func createStoreStructure(cfg *config.RepoConfig, fsys fs.FS) error {
	for _, d := range []string{cfg.BlobsDir(), cfg.CommitsDir()} {
		if err := fsys.MkdirAll(d, 0o755); err != nil {
			return fmt.Errorf("create store dir %q: %w", d, err)
		}
	}
	return nil
}

func isStoreExists(cfg *config.RepoConfig, fsys fs.FS) bool {
	return fsys.IsDir(cfg.BlobsDir()) && fsys.IsDir(cfg.CommitsDir())
}
