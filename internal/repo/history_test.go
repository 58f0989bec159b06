package repo_test

import (
	"strings"
	"testing"

	"github.com/keshon/gitlet/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogFollowsFirstParent(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "a.txt", "1", "first")
	require.NoError(t, r.CreateBranch("side"))
	require.NoError(t, r.CheckoutBranch("side"))
	side := commitFile(t, r, "s.txt", "s", "side work")
	require.NoError(t, r.CheckoutBranch("master"))
	commitFile(t, r, "a.txt", "2", "second")
	_, err := r.Merge("side")
	require.NoError(t, err)

	entries, err := r.Log()
	require.NoError(t, err)
	var messages []string
	for _, e := range entries {
		messages = append(messages, e.Commit.Message)
		assert.NotEqual(t, side, e.ID)
	}
	assert.Equal(t, []string{"Merged side into master.", "second", "first", "initial commit"}, messages)

	all, err := r.GlobalLog()
	require.NoError(t, err)
	assert.Len(t, all, 5)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].ID, all[i].ID)
	}
}

func TestFind(t *testing.T) {
	r, _ := newTestRepo(t)
	a := commitFile(t, r, "a.txt", "1", "same")
	b := commitFile(t, r, "a.txt", "2", "same")
	commitFile(t, r, "a.txt", "3", "other")

	ids, err := r.Find("same")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{a, b}, ids)

	ids, err = r.Find("initial commit")
	require.NoError(t, err)
	assert.Len(t, ids, 1)

	_, err = r.Find("sam")
	assert.ErrorIs(t, err, repo.ErrNoMatchingCommit)
}

func TestFormatLogEntry(t *testing.T) {
	r, _ := newTestRepo(t)

	entries, err := r.Log()
	require.NoError(t, err)
	got := r.FormatLogEntry(entries[0])
	want := "===\ncommit " + entries[0].ID + "\nDate: Thu Jan 01 00:00:00 1970 +0000\ninitial commit\n\n"
	assert.Equal(t, want, got)
}

func TestFormatLogEntryMerge(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "a.txt", "1", "first")
	require.NoError(t, r.CreateBranch("side"))
	require.NoError(t, r.CheckoutBranch("side"))
	side := commitFile(t, r, "s.txt", "s", "side work")
	require.NoError(t, r.CheckoutBranch("master"))
	mainTip := commitFile(t, r, "m.txt", "m", "main work")
	_, err := r.Merge("side")
	require.NoError(t, err)

	entries, err := r.Log()
	require.NoError(t, err)
	lines := strings.Split(r.FormatLogEntry(entries[0]), "\n")
	require.GreaterOrEqual(t, len(lines), 5)
	assert.Equal(t, "===", lines[0])
	assert.Equal(t, "Merge: "+mainTip[:7]+" "+side[:7], lines[2])
	assert.True(t, strings.HasPrefix(lines[3], "Date: "))
	assert.Equal(t, "Merged side into master.", lines[4])
}
