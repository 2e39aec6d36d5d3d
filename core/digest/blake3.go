// Package digest computes content digests reported for converted files.
package digest

import (
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Blake3Hash computes the hex-encoded BLAKE3-256 hash of data.
func Blake3Hash(data []byte) string {
	h := blake3.Sum256(data)
	return hex.EncodeToString(h[:])
}

// Short returns the first 16 hex characters of a digest, for compact display.
func Short(digest string) string {
	if len(digest) <= 16 {
		return digest
	}
	return digest[:16]
}
