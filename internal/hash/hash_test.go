package hash_test

import (
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/keshon/gitlet/internal/hash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXXH3IsStableHex(t *testing.T) {
	h, err := hash.New(hash.XXH3)
	require.NoError(t, err)

	a, err := h([]byte("hello"))
	require.NoError(t, err)
	b, err := h([]byte("hello"))
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Len(t, a, hash.Size(hash.XXH3))

	c, err := h([]byte("hello!"))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestSHA256MatchesStdlib(t *testing.T) {
	h, err := hash.New(hash.SHA256)
	require.NoError(t, err)

	got, err := h([]byte("gitlet"))
	require.NoError(t, err)

	sum := sha256.Sum256([]byte("gitlet"))
	assert.Equal(t, hex.EncodeToString(sum[:]), got)
	assert.Len(t, got, hash.Size(hash.SHA256))
}

func TestUnknownAlgorithm(t *testing.T) {
	_, err := hash.New("md5")
	assert.Error(t, err)
	assert.False(t, hash.Supported("md5"))
	assert.True(t, hash.Supported(hash.SHA256))
}
