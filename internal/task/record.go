package task

import (
	"github.com/google/uuid"
)

// Record is a single task.
//
// ID is assigned once at creation and never changes. Rank and Value are only
// changed by the store through remove-then-reinsert.
type Record struct {
	ID    uuid.UUID `json:"id" yaml:"id"`
	Rank  Rank      `json:"rank" yaml:"rank"`
	Value string    `json:"value" yaml:"value"`
}

// NewRecord creates a record with a fresh identifier from gen.
// The value is normalized with NormalizeValue.
func NewRecord(gen IDGenerator, rank Rank, value string) Record {
	return Record{
		ID:    gen.NewID(),
		Rank:  rank,
		Value: NormalizeValue(value),
	}
}

// Equal reports whether r and other are the same task.
// Identity is the ID alone; rank and value are ignored.
func (r Record) Equal(other Record) bool {
	return r.ID == other.ID
}
