package repo_test

import (
	"testing"

	"github.com/keshon/gitlet/internal/repo"
	"github.com/keshon/gitlet/internal/repo/store/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyHealthyRepository(t *testing.T) {
	r, _ := newTestRepo(t)
	commitFile(t, r, "a.txt", "a", "first")
	commitFile(t, r, "b.txt", "b", "second")
	require.NoError(t, r.Save())

	var checks []repo.BlobCheck
	report, err := r.Verify(2, func(c repo.BlobCheck) { checks = append(checks, c) })
	require.NoError(t, err)
	assert.True(t, report.OK(), report.Problems)
	assert.Equal(t, 3, report.Commits)
	assert.Equal(t, 2, report.Blobs)
	assert.Len(t, checks, 2)
	for _, c := range checks {
		assert.Equal(t, []string{"master"}, c.Branches)
	}
}

func TestVerifyReportsBrokenBlobs(t *testing.T) {
	r, mem := newTestRepo(t)
	commitFile(t, r, "a.txt", "a", "first")
	commitFile(t, r, "b.txt", "b", "second")
	require.NoError(t, r.Save())

	head, err := r.HeadCommit()
	require.NoError(t, err)
	blobs := r.Config.BlobsDir()
	require.NoError(t, mem.WriteFile(blobs+"/"+head.Tree["a.txt"], []byte("not gzip"), 0o644))
	require.NoError(t, mem.Remove(blobs+"/"+head.Tree["b.txt"]))

	statuses := map[string]object.BlobStatus{}
	report, err := r.Verify(1, func(c repo.BlobCheck) { statuses[c.Paths[0]] = c.Status })
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Len(t, report.Problems, 2)
	assert.Equal(t, object.Damaged, statuses["a.txt"])
	assert.Equal(t, object.Missing, statuses["b.txt"])
}
