package codec

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/roach88/burnerlist/internal/taskdb"
)

// DomainSnapshot separates snapshot digests from any other hash of the same
// bytes. The version suffix changes if the canonical form ever does.
const DomainSnapshot = "burnerlist/snapshot/v1"

// Digest returns the hex SHA-256 of db's canonical encoding, prefixed by
// DomainSnapshot and a 0x00 separator.
//
// Two stores with the same ranks, order, ids and values have the same
// digest regardless of how they were built; the Version Token and slot
// layout do not contribute.
func Digest(db *taskdb.DB) (string, error) {
	data, err := Encode(db)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	h := sha256.New()
	h.Write([]byte(DomainSnapshot))
	h.Write([]byte{0x00})
	h.Write(data)
	return hex.EncodeToString(h.Sum(nil)), nil
}
