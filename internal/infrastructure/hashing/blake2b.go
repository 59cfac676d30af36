package hashing

import (
	"encoding/hex"

	"golang.org/x/crypto/blake2b"
)

// Size is the digest length in bytes. Hashes are hex encoded, so names are
// twice as long.
const Size = 16

type Blake2bHasher struct{}

func NewBlake2bHasher() Blake2bHasher {
	return Blake2bHasher{}
}

// Hash returns the first Size bytes of the BLAKE2b-256 digest of data.
func (Blake2bHasher) Hash(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:Size])
}
