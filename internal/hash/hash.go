// Package hash provides the content digests used to name objects.
package hash

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/multiformats/go-multihash"
	"github.com/zeebo/xxh3"
)

const (
	XXH3   = "xxh3"
	SHA256 = "sha256"
)

// Hasher turns content into a lowercase hex digest.
type Hasher func(data []byte) (string, error)

// Algorithms lists every supported algorithm name.
var Algorithms = []string{XXH3, SHA256}

// New returns the hasher registered under name.
func New(name string) (Hasher, error) {
	switch name {
	case XXH3, "xxh3-128", "":
		return hashXXH3, nil
	case SHA256:
		return hashSHA256, nil
	default:
		return nil, fmt.Errorf("unsupported hash algorithm %q", name)
	}
}

// Supported reports whether name can be passed to New.
func Supported(name string) bool {
	_, err := New(name)
	return err == nil
}

// Size returns the hex digest length produced by the algorithm.
func Size(name string) int {
	switch name {
	case SHA256:
		return sha256.Size * 2
	default:
		return 32
	}
}

func hashXXH3(data []byte) (string, error) {
	sum := xxh3.Hash128(data).Bytes()
	return hex.EncodeToString(sum[:]), nil
}

func hashSHA256(data []byte) (string, error) {
	mh, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("sha256 multihash: %w", err)
	}
	dec, err := multihash.Decode(mh)
	if err != nil {
		return "", fmt.Errorf("decode multihash: %w", err)
	}
	return hex.EncodeToString(dec.Digest), nil
}
