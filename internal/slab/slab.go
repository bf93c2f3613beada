// Package slab provides Table, a slot-addressable arena with O(1) insert,
// remove and lookup.
//
// Removed slots go on a free list and are handed out again, most recently
// freed first. A slot number therefore identifies a location, not a value:
// after Remove(s) the next Insert may return s for an unrelated entry.
// Callers must never keep a slot past its removal.
package slab

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a slot is out of range or already free.
var ErrNotFound = errors.New("slot not found")

type entry[T any] struct {
	value    T
	occupied bool
}

// Table is an arena of values addressed by integer slots.
// The zero value is an empty table ready to use.
//
// Thread-safety: Table is not safe for concurrent use.
type Table[T any] struct {
	entries []entry[T]
	free    []int // LIFO stack of vacant slots
	n       int
}

// Insert stores v and returns its slot. Reuses the most recently freed slot
// when one exists, otherwise grows the table.
func (t *Table[T]) Insert(v T) int {
	t.n++
	if k := len(t.free); k > 0 {
		slot := t.free[k-1]
		t.free = t.free[:k-1]
		t.entries[slot] = entry[T]{value: v, occupied: true}
		return slot
	}
	t.entries = append(t.entries, entry[T]{value: v, occupied: true})
	return len(t.entries) - 1
}

// Remove vacates slot and returns the value it held.
func (t *Table[T]) Remove(slot int) (T, error) {
	var zero T
	if !t.Contains(slot) {
		return zero, fmt.Errorf("remove slot %d: %w", slot, ErrNotFound)
	}
	v := t.entries[slot].value
	t.entries[slot] = entry[T]{}
	t.free = append(t.free, slot)
	t.n--
	return v, nil
}

// Get returns the value at slot.
func (t *Table[T]) Get(slot int) (T, bool) {
	if !t.Contains(slot) {
		var zero T
		return zero, false
	}
	return t.entries[slot].value, true
}

// Contains reports whether slot currently holds a value.
func (t *Table[T]) Contains(slot int) bool {
	return slot >= 0 && slot < len(t.entries) && t.entries[slot].occupied
}

// Len returns the number of occupied slots.
func (t *Table[T]) Len() int {
	return t.n
}

// Each calls fn for every occupied slot in ascending slot order.
// fn must not insert into or remove from the table.
func (t *Table[T]) Each(fn func(slot int, v T)) {
	for i, e := range t.entries {
		if e.occupied {
			fn(i, e.value)
		}
	}
}

// Clone returns an independent copy of the table, free list included, so
// the copy hands out the same slots as the original would.
func (t *Table[T]) Clone() *Table[T] {
	return &Table[T]{
		entries: append([]entry[T](nil), t.entries...),
		free:    append([]int(nil), t.free...),
		n:       t.n,
	}
}
