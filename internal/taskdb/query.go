package taskdb

import (
	"github.com/google/uuid"

	"github.com/roach88/burnerlist/internal/task"
)

// GetByID returns the task with the given ID.
func (db *DB) GetByID(id uuid.UUID) (task.Record, bool) {
	slot, ok := db.ids.lookup(id)
	if !ok {
		return task.Record{}, false
	}
	return db.record(slot), true
}

// GetByRank returns the tasks of rank r in display order.
// The slice is a copy; modifying it does not affect the store.
func (db *DB) GetByRank(r task.Rank) []task.Record {
	if !r.Valid() {
		return nil
	}
	seq := db.ranks.ordered(r)
	out := make([]task.Record, len(seq))
	for i, slot := range seq {
		out[i] = db.record(slot)
	}
	return out
}

// RankLen returns the number of tasks in rank r.
func (db *DB) RankLen(r task.Rank) int {
	if !r.Valid() {
		return 0
	}
	return len(db.ranks.ordered(r))
}

// Locate returns the rank and position of task id.
func (db *DB) Locate(id uuid.UUID) (task.Rank, int, bool) {
	slot, ok := db.ids.lookup(id)
	if !ok {
		return 0, 0, false
	}
	rec := db.record(slot)
	for i, s := range db.ranks.ordered(rec.Rank) {
		if s == slot {
			return rec.Rank, i, true
		}
	}
	panic("taskdb: live slot missing from its rank sequence")
}

// Records returns every task in canonical order: ranks in priority order,
// each rank in display order. This is the order the codec persists.
func (db *DB) Records() []task.Record {
	out := make([]task.Record, 0, db.Len())
	for _, r := range task.Ranks {
		out = append(out, db.GetByRank(r)...)
	}
	return out
}

// SlotEntry is one occupied Record Table slot, for debugging output.
type SlotEntry struct {
	Slot   int         `json:"slot"`
	Record task.Record `json:"record"`
}

// Slots returns every occupied Record Table slot in ascending slot order.
// Slot numbers are only meaningful for this snapshot.
func (db *DB) Slots() []SlotEntry {
	out := make([]SlotEntry, 0, db.Len())
	db.table.Each(func(slot int, rec task.Record) {
		out = append(out, SlotEntry{Slot: slot, Record: rec})
	})
	return out
}
