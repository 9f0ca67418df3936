package corpus

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash returns the content-addressed cache key for a source buffer.
func Hash(src []byte) string {
	sum := sha256.Sum256(src)
	return hex.EncodeToString(sum[:])
}
