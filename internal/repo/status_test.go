package repo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusSections(t *testing.T) {
	r, _ := newTestRepo(t)
	writeFile(t, r, "tracked.txt", "t")
	writeFile(t, r, "gone.txt", "g")
	writeFile(t, r, "doomed.txt", "d")
	for _, f := range []string{"tracked.txt", "gone.txt", "doomed.txt"} {
		require.NoError(t, r.Add(f))
	}
	_, err := r.Commit("base")
	require.NoError(t, err)
	require.NoError(t, r.CreateBranch("Zeta"))
	require.NoError(t, r.CreateBranch("alpha"))

	writeFile(t, r, "new.txt", "n")
	require.NoError(t, r.Add("new.txt"))
	_, err = r.Remove("doomed.txt")
	require.NoError(t, err)
	writeFile(t, r, "tracked.txt", "changed")
	require.NoError(t, r.Files.Delete("gone.txt"))
	writeFile(t, r, "B-loose.txt", "u")
	writeFile(t, r, "a-loose.txt", "u")

	st, err := r.Status()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "master", "Zeta"}, st.Branches)
	assert.Equal(t, "master", st.Current)
	assert.Equal(t, []string{"new.txt"}, st.Staged)
	assert.Equal(t, []string{"doomed.txt"}, st.Removed)
	assert.Equal(t, []string{"gone.txt (deleted)", "tracked.txt (modified)"}, st.Modified)
	assert.Equal(t, []string{"a-loose.txt", "B-loose.txt"}, st.Untracked)
}

func TestStatusStagedThenEdited(t *testing.T) {
	r, _ := newTestRepo(t)
	writeFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Add("a.txt"))
	writeFile(t, r, "a.txt", "v2")

	st, err := r.Status()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, st.Staged)
	assert.Equal(t, []string{"a.txt (modified)"}, st.Modified)
	assert.Empty(t, st.Untracked)
}

func TestStatusRemovedFileRecreatedIsUntracked(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "a.txt", "v1", "first")
	_, err := r.Remove("a.txt")
	require.NoError(t, err)
	writeFile(t, r, "a.txt", "back")

	st, err := r.Status()
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt"}, st.Removed)
	assert.Empty(t, st.Modified)
	assert.Equal(t, []string{"a.txt"}, st.Untracked)
}

func TestStatusCleanTree(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "a.txt", "v1", "first")

	st, err := r.Status()
	require.NoError(t, err)
	assert.Equal(t, []string{"master"}, st.Branches)
	assert.Empty(t, st.Staged)
	assert.Empty(t, st.Removed)
	assert.Empty(t, st.Modified)
	assert.Empty(t, st.Untracked)
}
