package taskdb

import (
	"github.com/roach88/burnerlist/internal/task"
)

// Apply runs one event against the store and reports whether it changed.
//
// Edit, Move and Delete of an unknown ID are silent no-ops: Apply returns
// false and the store, version included, is untouched. Add always changes
// the store. Add and Move naming an invalid rank are dropped.
func (db *DB) Apply(ev task.Event) bool {
	changed := db.apply(ev)
	db.logger.Debug("apply", "kind", ev.Kind(), "changed", changed, "version", db.version, "tasks", db.Len())
	db.notify(Change{Op: string(ev.Kind()), Changed: changed, Version: db.version})
	return changed
}

func (db *DB) apply(ev task.Event) bool {
	switch ev := ev.(type) {
	case task.Add:
		if !ev.Rank.Valid() {
			return false
		}
		db.add(task.NewRecord(db.gen, ev.Rank, ev.Value))
		return true

	case task.Edit:
		rec, pos, ok := db.removeByID(ev.ID)
		if !ok {
			return false
		}
		rec.Value = task.NormalizeValue(ev.Value)
		db.insert(rec, &pos)
		return true

	case task.Move:
		if !ev.Rank.Valid() {
			return false
		}
		// The record leaves its old position before the target index is
		// clamped, so within one rank Index counts the list without it.
		rec, _, ok := db.removeByID(ev.ID)
		if !ok {
			return false
		}
		rec.Rank = ev.Rank
		db.insert(rec, ev.Index)
		return true

	case task.Delete:
		_, _, ok := db.removeByID(ev.ID)
		return ok
	}
	return false
}
