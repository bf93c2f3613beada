package taskdb

import "github.com/google/uuid"

// identityIndex maps a task ID to its current slot.
type identityIndex map[uuid.UUID]int

func (ix identityIndex) put(id uuid.UUID, slot int) {
	ix[id] = slot
}

func (ix identityIndex) lookup(id uuid.UUID) (int, bool) {
	slot, ok := ix[id]
	return slot, ok
}

func (ix identityIndex) remove(id uuid.UUID) (int, bool) {
	slot, ok := ix[id]
	if ok {
		delete(ix, id)
	}
	return slot, ok
}

func (ix identityIndex) clone() identityIndex {
	cp := make(identityIndex, len(ix))
	for id, slot := range ix {
		cp[id] = slot
	}
	return cp
}
