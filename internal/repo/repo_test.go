package repo_test

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/keshon/gitlet/internal/fs"
	"github.com/keshon/gitlet/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const root = "/work"

// testClock returns a clock that advances one minute per call.
func testClock() func() time.Time {
	t := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func testOptions(mem fs.FS) *repo.Options {
	return &repo.Options{
		FS:       mem,
		Now:      testClock(),
		Location: time.UTC,
		Logger:   log.New(io.Discard),
	}
}

func newTestRepo(t *testing.T) (*repo.Repository, *fs.MemoryFS) {
	t.Helper()
	mem := fs.NewMemoryFS()
	r, err := repo.Init(root, testOptions(mem))
	require.NoError(t, err)
	return r, mem
}

func writeFile(t *testing.T, r *repo.Repository, name, content string) {
	t.Helper()
	require.NoError(t, r.Files.Write(name, []byte(content)))
}

func readFile(t *testing.T, r *repo.Repository, name string) string {
	t.Helper()
	data, err := r.Files.Read(name)
	require.NoError(t, err)
	return string(data)
}

func commitFile(t *testing.T, r *repo.Repository, name, content, message string) string {
	t.Helper()
	writeFile(t, r, name, content)
	require.NoError(t, r.Add(name))
	id, err := r.Commit(message)
	require.NoError(t, err)
	return id
}

func commitCount(t *testing.T, r *repo.Repository) int {
	t.Helper()
	all, err := r.GlobalLog()
	require.NoError(t, err)
	return len(all)
}

func TestInitCreatesInitialCommit(t *testing.T) {
	r, mem := newTestRepo(t)

	entries, err := r.Log()
	require.NoError(t, err)
	require.Len(t, entries, 1)

	c := entries[0].Commit
	assert.Equal(t, "initial commit", c.Message)
	assert.Empty(t, c.Parents)
	assert.Empty(t, c.Tree)
	assert.True(t, c.Timestamp.Equal(time.Unix(0, 0)))
	assert.Equal(t, 1, commitCount(t, r))
	assert.Equal(t, "master", r.Meta.CurrentBranch())

	_, err = repo.Init(root, testOptions(mem))
	assert.ErrorIs(t, err, repo.ErrAlreadyInitialized)

	_, err = repo.Open("/elsewhere", testOptions(mem))
	assert.ErrorIs(t, err, repo.ErrNotInitialized)
}

func TestInitOptions(t *testing.T) {
	mem := fs.NewMemoryFS()
	opts := testOptions(mem)
	opts.Hash = "sha256"
	opts.InitialBranch = "trunk"
	r, err := repo.Init(root, opts)
	require.NoError(t, err)

	assert.Equal(t, "trunk", r.Meta.CurrentBranch())
	assert.Len(t, r.HeadID(), 64)

	reopened, err := repo.Open(root, testOptions(mem))
	require.NoError(t, err)
	assert.Equal(t, "sha256", reopened.Config.Settings.Hash)
	assert.Equal(t, r.HeadID(), reopened.HeadID())

	opts = testOptions(fs.NewMemoryFS())
	opts.InitialBranch = "bad/name"
	_, err = repo.Init(root, opts)
	assert.ErrorIs(t, err, repo.ErrInvalidBranchName)
}

func TestInitialCommitIsSameEverywhere(t *testing.T) {
	a, _ := newTestRepo(t)
	b, _ := newTestRepo(t)
	assert.Equal(t, a.HeadID(), b.HeadID())
}

func TestAddCommitCheckoutRestores(t *testing.T) {
	r, _ := newTestRepo(t)

	commitFile(t, r, "a.txt", "hello", "m")
	assert.True(t, r.Stage.IsEmpty())

	writeFile(t, r, "a.txt", "scribbled over")
	require.NoError(t, r.CheckoutFile("a.txt"))
	assert.Equal(t, "hello", readFile(t, r, "a.txt"))

	err := r.CheckoutFile("missing.txt")
	assert.ErrorIs(t, err, repo.ErrFileNotInCommit)
}

func TestAddMissingFile(t *testing.T) {
	r, _ := newTestRepo(t)
	assert.ErrorIs(t, r.Add("ghost.txt"), repo.ErrFileMissing)
	assert.True(t, r.Stage.IsEmpty())
}

func TestCommitPreconditions(t *testing.T) {
	r, _ := newTestRepo(t)
	before := r.HeadID()

	_, err := r.Commit("nothing staged")
	assert.ErrorIs(t, err, repo.ErrNoChanges)

	writeFile(t, r, "a.txt", "x")
	require.NoError(t, r.Add("a.txt"))
	_, err = r.Commit("")
	assert.ErrorIs(t, err, repo.ErrEmptyMessage)

	assert.Equal(t, before, r.HeadID())
	assert.Equal(t, 1, commitCount(t, r))
	assert.False(t, r.Stage.IsEmpty(), "failed commit keeps the staging area")
}

func TestAddUnchangedContentDropsStaging(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "a.txt", "v1", "first")

	writeFile(t, r, "a.txt", "v2")
	require.NoError(t, r.Add("a.txt"))
	assert.False(t, r.Stage.IsEmpty())

	writeFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Add("a.txt"))
	assert.True(t, r.Stage.IsEmpty())

	_, err := r.Commit("no-op")
	assert.ErrorIs(t, err, repo.ErrNoChanges)
}

func TestIdenticalContentStoredOnce(t *testing.T) {
	r, mem := newTestRepo(t)
	writeFile(t, r, "a.txt", "same")
	writeFile(t, r, "b.txt", "same")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Add("b.txt"))
	_, err := r.Commit("dup")
	require.NoError(t, err)
	require.NoError(t, r.Save())

	head, err := r.HeadCommit()
	require.NoError(t, err)
	assert.Equal(t, head.Tree["a.txt"], head.Tree["b.txt"])

	blobs, err := mem.ReadDir(r.Config.BlobsDir())
	require.NoError(t, err)
	assert.Len(t, blobs, 1)
}

func TestRemove(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "tracked.txt", "t", "first")

	writeFile(t, r, "new.txt", "n")
	require.NoError(t, r.Add("new.txt"))
	outcome, err := r.Remove("new.txt")
	require.NoError(t, err)
	assert.Equal(t, repo.Unstaged, outcome)
	assert.True(t, r.Stage.IsEmpty())
	assert.True(t, r.Files.Exists("new.txt"), "unstaging keeps the file")

	outcome, err = r.Remove("tracked.txt")
	require.NoError(t, err)
	assert.Equal(t, repo.MarkedRemoved, outcome)
	assert.False(t, r.Files.Exists("tracked.txt"))
	assert.Equal(t, []string{"tracked.txt"}, r.Stage.Removed())

	_, err = r.Remove("new.txt")
	assert.ErrorIs(t, err, repo.ErrNothingToRemove)

	_, err = r.Commit("remove tracked")
	require.NoError(t, err)
	head, err := r.HeadCommit()
	require.NoError(t, err)
	assert.NotContains(t, head.Tree, "tracked.txt")
}

func TestRemoveThenAddRestagesFile(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "a.txt", "v1", "first")

	_, err := r.Remove("a.txt")
	require.NoError(t, err)
	writeFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Add("a.txt"))
	assert.True(t, r.Stage.IsEmpty(), "re-adding HEAD's content cancels the removal")
}

func TestStatePersistsAcrossOpen(t *testing.T) {
	r, mem := newTestRepo(t)
	commitFile(t, r, "a.txt", "v1", "first")
	require.NoError(t, r.CreateBranch("feature"))
	writeFile(t, r, "b.txt", "staged")
	require.NoError(t, r.Add("b.txt"))
	require.NoError(t, r.Save())

	reopened, err := repo.Open(root, testOptions(mem))
	require.NoError(t, err)
	assert.Equal(t, r.HeadID(), reopened.HeadID())
	assert.True(t, reopened.Meta.BranchExists("feature"))
	assert.Contains(t, reopened.Stage.Added(), "b.txt")

	data, err := reopened.Objects.GetBlob(reopened.Stage.Added()["b.txt"])
	require.NoError(t, err)
	assert.Equal(t, "staged", string(data))
}

func TestUnsavedOperationLeavesDiskUntouched(t *testing.T) {
	r, mem := newTestRepo(t)
	before := r.HeadID()
	commitFile(t, r, "a.txt", "v1", "first")

	reopened, err := repo.Open(root, testOptions(mem))
	require.NoError(t, err)
	assert.Equal(t, before, reopened.HeadID())
	assert.Equal(t, 1, commitCount(t, reopened))
}

func TestOpenOnDisk(t *testing.T) {
	dir := t.TempDir()
	opts := &repo.Options{Now: testClock(), Location: time.UTC, Logger: log.New(io.Discard)}

	r, err := repo.Init(dir, opts)
	require.NoError(t, err)
	writeFile(t, r, "a.txt", "on disk")
	require.NoError(t, r.Add("a.txt"))
	id, err := r.Commit("disk commit")
	require.NoError(t, err)
	require.NoError(t, r.Save())

	reopened, err := repo.Open(dir, opts)
	require.NoError(t, err)
	assert.Equal(t, id, reopened.HeadID())
	require.NoError(t, reopened.CheckoutFileAt(id[:8], "a.txt"))
	assert.Equal(t, "on disk", readFile(t, reopened, "a.txt"))
}
