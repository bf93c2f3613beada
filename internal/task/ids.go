package task

import (
	"github.com/google/uuid"
)

// IDGenerator produces fresh record identifiers.
// Implemented by RandomIDs (production) and testutil.SequentialIDs (tests).
type IDGenerator interface {
	NewID() uuid.UUID
}

// RandomIDs generates random (version 4) UUIDs.
//
// Thread-safety: RandomIDs is stateless and safe for concurrent use.
type RandomIDs struct{}

// NewID returns a new random UUID.
//
// Panics if the system random source fails (should never happen in practice).
func (RandomIDs) NewID() uuid.UUID {
	return uuid.Must(uuid.NewRandom())
}
