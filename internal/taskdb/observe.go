package taskdb

import "slices"

// Ops reported in Change besides the four event kinds.
const (
	OpBurn = "burn"
	OpSwap = "swap"
)

// Change describes one completed call to Apply, Burn or Swap.
type Change struct {
	Op      string // event kind, OpBurn or OpSwap
	Changed bool   // false for a no-op event on an unknown ID
	Version uint64 // version after the call
}

type observer struct {
	fn func(Change)
}

// Subscribe registers fn to be called after each Apply, Burn and Swap, once
// all three structures are consistent again. Observers run in subscription
// order on the writer's goroutine and must not mutate the DB.
//
// The returned function removes the subscription.
func (db *DB) Subscribe(fn func(Change)) (unsubscribe func()) {
	o := &observer{fn: fn}
	db.observers = append(db.observers, o)
	return func() {
		for i, cur := range db.observers {
			if cur == o {
				db.observers = slices.Delete(db.observers, i, i+1)
				return
			}
		}
	}
}

func (db *DB) notify(c Change) {
	for _, o := range db.observers {
		o.fn(c)
	}
}
