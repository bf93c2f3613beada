package taskdb

import (
	"fmt"
)

// Check verifies every structural invariant and returns the first
// violation found. A correct DB always returns nil; Check exists for tests
// and the inspect command.
func (db *DB) Check() error {
	if got, want := len(db.ids), db.table.Len(); got != want {
		return fmt.Errorf("identity index has %d entries, record table has %d", got, want)
	}
	if got, want := db.ranks.total(), db.table.Len(); got != want {
		return fmt.Errorf("rank index holds %d slots, record table has %d", got, want)
	}

	seen := make(map[int]bool, db.table.Len())
	for r, seq := range db.ranks {
		for pos, slot := range seq {
			if seen[slot] {
				return fmt.Errorf("slot %d appears in more than one rank position", slot)
			}
			seen[slot] = true

			rec, ok := db.table.Get(slot)
			if !ok {
				return fmt.Errorf("rank %d position %d references free slot %d", r, pos, slot)
			}
			if int(rec.Rank) != r {
				return fmt.Errorf("slot %d is in rank %d but record says %s", slot, r, rec.Rank)
			}
			if got, ok := db.ids.lookup(rec.ID); !ok || got != slot {
				return fmt.Errorf("identity index maps %s to %d, want %d", rec.ID, got, slot)
			}
		}
	}
	return nil
}
