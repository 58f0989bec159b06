package object

import (
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/keshon/gitlet/internal/config"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/hash"
	"github.com/keshon/gitlet/internal/util"
)

var (
	ErrNotFound  = errors.New("object not found")
	ErrAmbiguous = errors.New("ambiguous object prefix")
)

const commitExt = ".json"

// Store is a content-addressed store of blobs and commits.
// New objects stay in memory until Flush, so a failed operation leaves disk untouched.
type Store struct {
	BlobsDir   string
	CommitsDir string
	FS         fs.FS // commits and listings
	BlobFS     fs.FS // blob content, optionally compressed
	Hash       hash.Hasher

	pendingBlobs   map[string][]byte
	pendingCommits map[string]*Commit
	cache          map[string]*Commit
}

// NewStore builds a store for cfg on top of fsys.
func NewStore(cfg *config.RepoConfig, fsys fs.FS) (*Store, error) {
	h, err := hash.New(cfg.Settings.Hash)
	if err != nil {
		return nil, err
	}
	blobFS := fsys
	if cfg.Settings.CompressBlobs {
		blobFS = fs.NewCompressedFS(fsys)
	}
	return &Store{
		BlobsDir:       cfg.BlobsDir(),
		CommitsDir:     cfg.CommitsDir(),
		FS:             fsys,
		BlobFS:         blobFS,
		Hash:           h,
		pendingBlobs:   map[string][]byte{},
		pendingCommits: map[string]*Commit{},
		cache:          map[string]*Commit{},
	}, nil
}

func (s *Store) blobPath(id string) string   { return filepath.Join(s.BlobsDir, id) }
func (s *Store) commitPath(id string) string { return filepath.Join(s.CommitsDir, id+commitExt) }

// HashBlob returns the id data would be stored under without storing it.
func (s *Store) HashBlob(data []byte) (string, error) {
	return s.Hash(data)
}

// PutBlob stores data and returns its id. Identical content is stored once.
func (s *Store) PutBlob(data []byte) (string, error) {
	id, err := s.Hash(data)
	if err != nil {
		return "", fmt.Errorf("hash blob: %w", err)
	}
	if !s.HasBlob(id) {
		s.pendingBlobs[id] = append([]byte(nil), data...)
	}
	return id, nil
}

// HasBlob reports whether a blob is stored or pending.
func (s *Store) HasBlob(id string) bool {
	if _, ok := s.pendingBlobs[id]; ok {
		return true
	}
	return s.FS.Exists(s.blobPath(id))
}

// GetBlob returns the content stored under id.
func (s *Store) GetBlob(id string) ([]byte, error) {
	if data, ok := s.pendingBlobs[id]; ok {
		return append([]byte(nil), data...), nil
	}
	data, err := s.BlobFS.ReadFile(s.blobPath(id))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return nil, fmt.Errorf("blob %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("read blob %s: %w", id, err)
	}
	return data, nil
}

// PutCommit stores c and returns its id.
func (s *Store) PutCommit(c *Commit) (string, error) {
	id, err := c.ID(s.Hash)
	if err != nil {
		return "", fmt.Errorf("hash commit: %w", err)
	}
	if !s.HasCommit(id) {
		s.pendingCommits[id] = c
		s.cache[id] = c
	}
	return id, nil
}

// HasCommit reports whether a commit with exactly this id exists.
func (s *Store) HasCommit(id string) bool {
	if id == "" {
		return false
	}
	if _, ok := s.cache[id]; ok {
		return true
	}
	return s.FS.Exists(s.commitPath(id))
}

// GetCommit loads the commit with the full id.
func (s *Store) GetCommit(id string) (*Commit, error) {
	if c, ok := s.cache[id]; ok {
		return c, nil
	}
	var c Commit
	if err := util.ReadJSON(s.FS, s.commitPath(id), &c); err != nil {
		if s.FS.IsNotExist(err) {
			return nil, fmt.Errorf("commit %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("read commit %s: %w", id, err)
	}
	if c.Parents == nil {
		c.Parents = []string{}
	}
	if c.Tree == nil {
		c.Tree = map[string]string{}
	}
	s.cache[id] = &c
	return &c, nil
}

// CommitIDs lists every stored and pending commit id, sorted.
func (s *Store) CommitIDs() ([]string, error) {
	seen := map[string]struct{}{}
	entries, err := s.FS.ReadDir(s.CommitsDir)
	if err != nil && !s.FS.IsNotExist(err) {
		return nil, fmt.Errorf("list commits: %w", err)
	}
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, commitExt) || strings.HasPrefix(name, ".tmp-") {
			continue
		}
		seen[strings.TrimSuffix(name, commitExt)] = struct{}{}
	}
	for id := range s.pendingCommits {
		seen[id] = struct{}{}
	}
	return util.SortedKeys(seen), nil
}

// ResolvePrefix expands an abbreviated commit id.
// It fails with ErrNotFound when nothing matches and ErrAmbiguous when several do.
func (s *Store) ResolvePrefix(prefix string) (string, error) {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	if prefix == "" {
		return "", ErrNotFound
	}
	if s.HasCommit(prefix) {
		return prefix, nil
	}
	ids, err := s.CommitIDs()
	if err != nil {
		return "", err
	}
	i := sort.SearchStrings(ids, prefix)
	var matches []string
	for ; i < len(ids) && strings.HasPrefix(ids[i], prefix); i++ {
		matches = append(matches, ids[i])
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("commit %s: %w", prefix, ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("commit prefix %s matches %d commits: %w", prefix, len(matches), ErrAmbiguous)
	}
}

// Pending reports how many objects are waiting to be flushed.
func (s *Store) Pending() int { return len(s.pendingBlobs) + len(s.pendingCommits) }

// Flush writes pending objects to disk. Blobs go first so a stored commit never
// references a blob that is not yet on disk.
func (s *Store) Flush() error {
	if s.Pending() == 0 {
		return nil
	}
	for _, dir := range []string{s.BlobsDir, s.CommitsDir} {
		if err := s.FS.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create objects dir: %w", err)
		}
	}

	blobIDs := util.SortedKeys(s.pendingBlobs)
	err := util.Parallel(blobIDs, util.WorkerCount(), func(id string) error {
		return util.WriteFileAtomic(s.BlobFS, s.blobPath(id), s.pendingBlobs[id])
	})
	if err != nil {
		return fmt.Errorf("write blobs: %w", err)
	}
	log.Debug("flushed blobs", "count", len(blobIDs))

	for _, id := range util.SortedKeys(s.pendingCommits) {
		if err := util.WriteJSON(s.FS, s.commitPath(id), s.pendingCommits[id]); err != nil {
			return fmt.Errorf("write commit %s: %w", id, err)
		}
		log.Debug("stored commit", "commit", id)
	}

	s.pendingBlobs = map[string][]byte{}
	s.pendingCommits = map[string]*Commit{}
	return nil
}
