package taskdb

import (
	"github.com/google/uuid"

	"github.com/roach88/burnerlist/internal/task"
)

// Burn deletes every task in rank r. Other ranks are untouched.
func (db *DB) Burn(r task.Rank) {
	ids := db.idsOf(r)
	for _, id := range ids {
		db.removeByID(id)
	}
	db.bump()

	db.logger.Debug("burn", "rank", r, "removed", len(ids), "version", db.version)
	db.notify(Change{Op: OpBurn, Changed: true, Version: db.version})
}

// Swap exchanges the entire contents of ranks a and b. Each side keeps its
// relative order; only the rank changes. Swapping twice restores the
// original layout.
func (db *DB) Swap(a, b task.Rank) {
	fromA := db.drain(a)
	fromB := db.drain(b)
	for _, rec := range fromA {
		rec.Rank = b
		db.add(rec)
	}
	for _, rec := range fromB {
		rec.Rank = a
		db.add(rec)
	}
	db.bump()

	db.logger.Debug("swap", "a", a, "b", b, "moved", len(fromA)+len(fromB), "version", db.version)
	db.notify(Change{Op: OpSwap, Changed: true, Version: db.version})
}

// drain removes every task in rank r and returns them in order.
func (db *DB) drain(r task.Rank) []task.Record {
	ids := db.idsOf(r)
	out := make([]task.Record, 0, len(ids))
	for _, id := range ids {
		if rec, _, ok := db.removeByID(id); ok {
			out = append(out, rec)
		}
	}
	return out
}

// idsOf snapshots the IDs of rank r. Removing while walking the live
// sequence would skip entries, so bulk operations always take this copy first.
func (db *DB) idsOf(r task.Rank) []uuid.UUID {
	seq := db.ranks.ordered(r)
	ids := make([]uuid.UUID, len(seq))
	for i, slot := range seq {
		ids[i] = db.record(slot).ID
	}
	return ids
}
