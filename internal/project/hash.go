package project

import "crypto/sha256"

// Digest is a SHA-256 hash.
type Digest [32]byte

// HashBytes digests data.
func HashBytes(data []byte) Digest { return sha256.Sum256(data) }

// Combine hashes content followed by deps. Callers keep deps in a
// deterministic order.
func Combine(content Digest, deps ...Digest) Digest {
	h := sha256.New()
	_, _ = h.Write(content[:])
	for _, d := range deps {
		_, _ = h.Write(d[:])
	}
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
