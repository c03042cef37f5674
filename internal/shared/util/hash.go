package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// ContentKey returns a stable hex identifier for a byte payload, used to
// spot duplicate uploads within a request.
func ContentKey(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
