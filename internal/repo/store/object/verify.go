package object

import (
	"path/filepath"
	"strings"

	"github.com/keshon/gitlet/internal/util"
)

// BlobStatus indicates the state of a blob on disk.
type BlobStatus int

const (
	OK BlobStatus = iota
	Missing
	Damaged
)

func (s BlobStatus) String() string {
	switch s {
	case OK:
		return "ok"
	case Missing:
		return "missing"
	default:
		return "damaged"
	}
}

// BlobCheck is the verification result for one blob.
type BlobCheck struct {
	ID     string
	Status BlobStatus
}

// VerifyBlob rehashes a stored blob and compares it with its id.
func (s *Store) VerifyBlob(id string) (BlobStatus, error) {
	if _, ok := s.pendingBlobs[id]; ok {
		return OK, nil
	}
	data, err := s.BlobFS.ReadFile(s.blobPath(id))
	if err != nil {
		if s.FS.IsNotExist(err) {
			return Missing, nil
		}
		return Damaged, err
	}
	actual, err := s.Hash(data)
	if err != nil {
		return Damaged, err
	}
	if actual == id {
		return OK, nil
	}
	return Damaged, nil
}

// Verify checks a set of blob ids concurrently and streams results.
// Every id is reported; errors are folded into the status.
func (s *Store) Verify(ids map[string]struct{}, workers int) <-chan BlobCheck {
	out := make(chan BlobCheck, 128)
	if workers <= 0 {
		workers = util.WorkerCount()
	}

	go func() {
		defer close(out)
		list := util.SortedKeys(ids)
		_ = util.Parallel(list, workers, func(id string) error {
			status, _ := s.VerifyBlob(id)
			out <- BlobCheck{ID: id, Status: status}
			return nil
		})
	}()

	return out
}

// CleanupTemp removes orphaned temp files left behind by an interrupted flush.
func (s *Store) CleanupTemp() (int, error) {
	removed := 0
	for _, dir := range []string{s.BlobsDir, s.CommitsDir} {
		entries, err := s.FS.ReadDir(dir)
		if err != nil {
			if s.FS.IsNotExist(err) {
				continue
			}
			return removed, err
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasPrefix(e.Name(), ".tmp-") {
				continue
			}
			if err := s.FS.Remove(filepath.Join(dir, e.Name())); err == nil {
				removed++
			}
		}
	}
	return removed, nil
}
