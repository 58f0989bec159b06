// Package repo is the repository controller. A Repository is loaded whole,
// mutated in memory by one operation and persisted with Save.
package repo

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/hash"
	"github.com/keshon/gitlet/internal/repo/meta"
	"github.com/keshon/gitlet/internal/repo/stage"
	"github.com/keshon/gitlet/internal/repo/store"
	"github.com/keshon/gitlet/internal/repo/store/file"
	"github.com/keshon/gitlet/internal/repo/store/object"
)

const initialMessage = "initial commit"

// Repository is an opened repository.
type Repository struct {
	Config  *config.RepoConfig
	FS      fs.FS
	Objects *object.Store
	Files   *file.FileContext
	Meta    *meta.MetaContext
	Stage   *stage.Area

	// Now stamps new commits.
	Now func() time.Time
	// Location is the zone log dates are printed in.
	Location *time.Location
	Logger   *log.Logger
}

// Options allows optional dependency injection.
type Options struct {
	FS       fs.FS
	Now      func() time.Time
	Location *time.Location
	Logger   *log.Logger

	// Init only.
	Hash          string
	InitialBranch string
	NoCompression bool
}

func (o *Options) withDefaults() Options {
	var out Options
	if o != nil {
		out = *o
	}
	if out.FS == nil {
		out.FS = fs.NewOSFS()
	}
	if out.Now == nil {
		out.Now = time.Now
	}
	if out.Location == nil {
		out.Location = time.Local
	}
	if out.Logger == nil {
		out.Logger = log.Default()
	}
	return out
}

func newRepository(cfg *config.RepoConfig, o Options) (*Repository, error) {
	st, err := store.NewStore(cfg, &store.NewStoreOptions{FS: o.FS})
	if err != nil {
		return nil, err
	}
	return &Repository{
		Config:   cfg,
		FS:       o.FS,
		Objects:  st.Objects,
		Files:    st.Files,
		Now:      o.Now,
		Location: o.Location,
		Logger:   o.Logger,
	}, nil
}

// IsRepository reports whether root holds a repository.
func IsRepository(fsys fs.FS, root string) bool {
	cfg := config.NewRepoConfig(root)
	return fsys.IsDir(cfg.RepoDir) && fsys.Exists(cfg.HeadFile())
}

// Init creates a repository in root holding only the initial commit.
func Init(root string, opts *Options) (*Repository, error) {
	o := opts.withDefaults()
	cfg := config.NewRepoConfig(root)

	if o.FS.Exists(cfg.RepoDir) {
		return nil, ErrAlreadyInitialized
	}

	if o.Hash != "" {
		cfg.Settings.Hash = o.Hash
	}
	if !hash.Supported(cfg.Settings.Hash) {
		return nil, fmt.Errorf("unsupported object format %q", cfg.Settings.Hash)
	}
	if o.InitialBranch != "" {
		cfg.Settings.DefaultBranch = o.InitialBranch
	}
	if err := meta.ValidateBranchName(cfg.Settings.DefaultBranch); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidBranchName, err)
	}
	cfg.Settings.CompressBlobs = !o.NoCompression

	for _, d := range cfg.Dirs() {
		if err := o.FS.MkdirAll(d, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create dir %q: %w", d, err)
		}
	}
	if err := cfg.Save(o.FS); err != nil {
		return nil, err
	}

	r, err := newRepository(cfg, o)
	if err != nil {
		return nil, err
	}

	root0 := object.NewCommit(initialMessage, nil, nil, time.Unix(0, 0), cfg.Settings.DefaultBranch)
	rootID, err := r.Objects.PutCommit(root0)
	if err != nil {
		return nil, err
	}
	r.Meta, err = meta.Create(cfg, o.FS, cfg.Settings.DefaultBranch, rootID)
	if err != nil {
		return nil, err
	}
	r.Stage = stage.New()

	if err := r.Save(); err != nil {
		return nil, err
	}
	r.Logger.Debug("initialized repository", "dir", cfg.RepoDir, "hash", cfg.Settings.Hash, "branch", cfg.Settings.DefaultBranch, "commit", rootID)
	return r, nil
}

// Open loads the repository in root.
func Open(root string, opts *Options) (*Repository, error) {
	o := opts.withDefaults()
	if !IsRepository(o.FS, root) {
		return nil, ErrNotInitialized
	}

	cfg := config.NewRepoConfig(root)
	if err := cfg.Load(o.FS); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	r, err := newRepository(cfg, o)
	if err != nil {
		return nil, err
	}
	if r.Meta, err = meta.Load(cfg, o.FS); err != nil {
		return nil, err
	}
	if r.Stage, err = stage.Load(o.FS, cfg.IndexFile()); err != nil {
		return nil, err
	}
	return r, nil
}

// Save persists everything the current operation changed. Objects are flushed
// before any pointer so a branch never names a commit that is not on disk.
func (r *Repository) Save() error {
	if err := r.Objects.Flush(); err != nil {
		return err
	}
	if err := r.Stage.Save(r.FS, r.Config.IndexFile()); err != nil {
		return err
	}
	return r.Meta.Save()
}

// HeadID returns the id of the commit HEAD refers to.
func (r *Repository) HeadID() string { return r.Meta.Head() }

// HeadCommit loads the commit HEAD refers to.
func (r *Repository) HeadCommit() (*object.Commit, error) {
	return r.Objects.GetCommit(r.Meta.Head())
}

// ResolveCommit expands a full or abbreviated id.
func (r *Repository) ResolveCommit(ref string) (string, *object.Commit, error) {
	id, err := r.Objects.ResolvePrefix(ref)
	switch {
	case errors.Is(err, object.ErrNotFound):
		return "", nil, fmt.Errorf("resolve %q: %w", ref, ErrNoSuchCommit)
	case errors.Is(err, object.ErrAmbiguous):
		return "", nil, fmt.Errorf("resolve %q: %w", ref, ErrAmbiguousPrefix)
	case err != nil:
		return "", nil, err
	}
	c, err := r.Objects.GetCommit(id)
	if err != nil {
		return "", nil, err
	}
	return id, c, nil
}
