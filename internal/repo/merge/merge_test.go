package merge_test

import (
	"fmt"
	"testing"

	"github.com/keshon/gitlet/internal/repo/merge"
	"github.com/keshon/gitlet/internal/repo/store/object"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type graph map[string][]string

func (g graph) GetCommit(id string) (*object.Commit, error) {
	parents, ok := g[id]
	if !ok {
		return nil, fmt.Errorf("commit %s: %w", id, object.ErrNotFound)
	}
	return &object.Commit{Parents: parents}, nil
}

func TestBaseLinear(t *testing.T) {
	g := graph{"a": nil, "b": {"a"}, "c": {"b"}, "d": {"b"}}

	base, err := merge.Base(g, "c", "d")
	require.NoError(t, err)
	assert.Equal(t, "b", base)

	base, err = merge.Base(g, "c", "b")
	require.NoError(t, err)
	assert.Equal(t, "b", base, "ancestor of the other tip is the base")

	base, err = merge.Base(g, "c", "c")
	require.NoError(t, err)
	assert.Equal(t, "c", base)
}

func TestBaseFollowsSecondParent(t *testing.T) {
	// m merged x into the main line; y branched from x later.
	g := graph{
		"root": nil,
		"a":    {"root"},
		"x":    {"root"},
		"m":    {"a", "x"},
		"y":    {"x"},
		"n":    {"m"},
	}
	base, err := merge.Base(g, "n", "y")
	require.NoError(t, err)
	assert.Equal(t, "x", base)
}

func TestBaseCrissCrossIsDeterministic(t *testing.T) {
	// p and q each merged the other; both b1 and b2 are equally close.
	g := graph{
		"root": nil,
		"b1":   {"root"},
		"b2":   {"root"},
		"p":    {"b1", "b2"},
		"q":    {"b2", "b1"},
	}
	base, err := merge.Base(g, "p", "q")
	require.NoError(t, err)
	assert.Equal(t, "b1", base)

	again, err := merge.Base(g, "q", "p")
	require.NoError(t, err)
	assert.Equal(t, base, again)
}

func TestBaseMissingCommit(t *testing.T) {
	g := graph{"a": {"ghost"}}
	_, err := merge.Base(g, "a", "a2")
	assert.ErrorIs(t, err, object.ErrNotFound)
}

func TestDecideTable(t *testing.T) {
	cases := []struct {
		name          string
		base, cur, gv string
		want          merge.Action
	}{
		{"changed only in given", "1", "1", "2", merge.TakeGiven},
		{"changed only in current", "1", "2", "1", merge.Keep},
		{"changed identically", "1", "2", "2", merge.Keep},
		{"changed differently", "1", "2", "3", merge.Conflict},
		{"removed in current, unchanged in given", "1", "", "1", merge.Keep},
		{"removed in given, unchanged in current", "1", "1", "", merge.Remove},
		{"removed in both", "1", "", "", merge.Keep},
		{"removed in current, changed in given", "1", "", "2", merge.Conflict},
		{"changed in current, removed in given", "1", "2", "", merge.Conflict},
		{"added only in given", "", "", "2", merge.TakeGiven},
		{"added only in current", "", "2", "", merge.Keep},
		{"added in both, same", "", "2", "2", merge.Keep},
		{"added in both, different", "", "2", "3", merge.Conflict},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, merge.Decide(tc.base, tc.cur, tc.gv))
		})
	}
}

func TestClassifySortedUnion(t *testing.T) {
	base := map[string]string{"a": "1", "b": "1"}
	cur := map[string]string{"a": "1", "b": "2", "c": "9"}
	given := map[string]string{"a": "5", "b": "3"}

	outcomes := merge.Classify(base, cur, given)
	require.Len(t, outcomes, 3)
	assert.Equal(t, "a", outcomes[0].Path)
	assert.Equal(t, merge.TakeGiven, outcomes[0].Action)
	assert.Equal(t, merge.Conflict, outcomes[1].Action)
	assert.Equal(t, merge.Keep, outcomes[2].Action)
	assert.Equal(t, []string{"b"}, merge.Conflicts(outcomes))
}

func TestConflictText(t *testing.T) {
	got := merge.ConflictText([]byte("hello!"), []byte("hello world"))
	assert.Equal(t, "<<<<<<< HEAD\nhello!\n=======\nhello world\n>>>>>>>", string(got))

	got = merge.ConflictText([]byte("line\n"), nil)
	assert.Equal(t, "<<<<<<< HEAD\nline\n=======\n>>>>>>>", string(got))
}
