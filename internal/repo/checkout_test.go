package repo_test

import (
	"errors"
	"testing"

	"github.com/keshon/gitlet/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBranchSwitchRoundTrip(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "a.txt", "base", "first")
	require.NoError(t, r.CreateBranch("b"))

	require.NoError(t, r.CheckoutBranch("b"))
	assert.Equal(t, "b", r.Meta.CurrentBranch())
	assert.Equal(t, "base", readFile(t, r, "a.txt"))

	commitFile(t, r, "only-b.txt", "bbb", "on b")
	require.NoError(t, r.CheckoutBranch("master"))
	assert.False(t, r.Files.Exists("only-b.txt"), "files tracked only by b are removed")
	assert.Equal(t, "base", readFile(t, r, "a.txt"))

	require.NoError(t, r.CheckoutBranch("b"))
	assert.Equal(t, "bbb", readFile(t, r, "only-b.txt"))
}

func TestCheckoutBranchErrors(t *testing.T) {
	r, _ := newTestRepo(t)

	err := r.CheckoutBranch("nope")
	assert.ErrorIs(t, err, repo.ErrNoSuchBranch)
	var userErr *repo.Error
	require.True(t, errors.As(err, &userErr))
	assert.Equal(t, "No such branch exists.", userErr.UserMessage())

	err = r.CheckoutBranch("master")
	assert.ErrorIs(t, err, repo.ErrAlreadyOnBranch)
}

func TestCheckoutBranchUntrackedObstruction(t *testing.T) {
	r, _ := newTestRepo(t)
	require.NoError(t, r.CreateBranch("other"))
	commitFile(t, r, "f.txt", "committed", "add f")

	require.NoError(t, r.CheckoutBranch("other"))
	assert.False(t, r.Files.Exists("f.txt"))

	writeFile(t, r, "f.txt", "untracked work")
	err := r.CheckoutBranch("master")
	assert.ErrorIs(t, err, repo.ErrUntrackedObstruction)
	assert.Equal(t, "other", r.Meta.CurrentBranch())
	assert.Equal(t, "untracked work", readFile(t, r, "f.txt"))
}

func TestCheckoutBranchClearsStaging(t *testing.T) {
	r, _ := newTestRepo(t)
	require.NoError(t, r.CreateBranch("other"))
	writeFile(t, r, "staged.txt", "s")
	require.NoError(t, r.Add("staged.txt"))

	require.NoError(t, r.CheckoutBranch("other"))
	assert.True(t, r.Stage.IsEmpty())
}

func TestCheckoutFileAtCommit(t *testing.T) {
	r, _ := newTestRepo(t)
	first := commitFile(t, r, "a.txt", "v1", "first")
	commitFile(t, r, "a.txt", "v2", "second")

	require.NoError(t, r.CheckoutFileAt(first[:6], "a.txt"))
	assert.Equal(t, "v1", readFile(t, r, "a.txt"))

	assert.ErrorIs(t, r.CheckoutFileAt(first, "b.txt"), repo.ErrFileNotInCommit)
	assert.ErrorIs(t, r.CheckoutFileAt("ffffffffffff", "a.txt"), repo.ErrNoSuchCommit)
	assert.ErrorIs(t, r.CheckoutFileAt("", "a.txt"), repo.ErrNoSuchCommit)
}

func TestReset(t *testing.T) {
	r, _ := newTestRepo(t)
	first := commitFile(t, r, "a.txt", "v1", "first")
	commitFile(t, r, "b.txt", "b", "second")
	commitFile(t, r, "a.txt", "v3", "third")

	id, err := r.Reset(first[:10])
	require.NoError(t, err)
	assert.Equal(t, first, id)
	assert.Equal(t, first, r.HeadID())
	assert.Equal(t, "v1", readFile(t, r, "a.txt"))
	assert.False(t, r.Files.Exists("b.txt"))
	assert.True(t, r.Stage.IsEmpty())

	entries, err := r.Log()
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = r.Reset("0000000000")
	assert.ErrorIs(t, err, repo.ErrNoSuchCommit)
}

func TestResetUntrackedObstruction(t *testing.T) {
	r, _ := newTestRepo(t)
	initial := r.HeadID()
	second := commitFile(t, r, "f.txt", "tracked", "add f")

	_, err := r.Reset(initial)
	require.NoError(t, err)
	writeFile(t, r, "f.txt", "mine")

	_, err = r.Reset(second)
	assert.ErrorIs(t, err, repo.ErrUntrackedObstruction)
	assert.Equal(t, initial, r.HeadID())
	assert.Equal(t, "mine", readFile(t, r, "f.txt"))
}

func TestBranchCreateDelete(t *testing.T) {
	r, _ := newTestRepo(t)

	require.NoError(t, r.CreateBranch("feature"))
	assert.ErrorIs(t, r.CreateBranch("feature"), repo.ErrBranchExists)
	assert.ErrorIs(t, r.CreateBranch("a/b"), repo.ErrInvalidBranchName)
	assert.Equal(t, "master", r.Meta.CurrentBranch(), "branch does not switch")

	assert.ErrorIs(t, r.DeleteBranch("master"), repo.ErrCannotDeleteCurrent)
	assert.ErrorIs(t, r.DeleteBranch("ghost"), repo.ErrNoSuchBranch)
	require.NoError(t, r.DeleteBranch("feature"))
	assert.False(t, r.Meta.BranchExists("feature"))
}

func TestNestedPathsAreNotTracked(t *testing.T) {
	r, _ := newTestRepo(t)
	require.NoError(t, r.CreateBranch("other"))
	commitFile(t, r, "a.txt", "a", "first")

	writeFile(t, r, "sub/f.txt", "nested")
	staged := r.Stage.Len()
	assert.ErrorIs(t, r.Add("sub/f.txt"), repo.ErrFileMissing)
	assert.Equal(t, staged, r.Stage.Len())

	_, err := r.Remove("sub/f.txt")
	assert.ErrorIs(t, err, repo.ErrNothingToRemove)
	assert.ErrorIs(t, r.CheckoutFile("sub/f.txt"), repo.ErrFileNotInCommit)

	require.NoError(t, r.CheckoutBranch("other"))
	assert.Equal(t, "nested", readFile(t, r, "sub/f.txt"))
}

func TestRepositoryDirIsNotTracked(t *testing.T) {
	r, _ := newTestRepo(t)
	staged := r.Stage.Len()

	assert.ErrorIs(t, r.Add(".gitlet/HEAD"), repo.ErrFileMissing)
	assert.ErrorIs(t, r.Add(root+"/.gitlet/HEAD"), repo.ErrFileMissing)
	assert.ErrorIs(t, r.Add(".gitlet"), repo.ErrFileMissing)
	assert.Equal(t, staged, r.Stage.Len())

	_, err := r.Remove(".gitlet/HEAD")
	assert.ErrorIs(t, err, repo.ErrNothingToRemove)
	assert.Equal(t, "master", r.Meta.CurrentBranch())
}
