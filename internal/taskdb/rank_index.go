package taskdb

import (
	"slices"

	"github.com/roach88/burnerlist/internal/task"
)

// rankIndex holds one ordered slot sequence per rank.
type rankIndex [task.NumRanks][]int

func (ri *rankIndex) append(r task.Rank, slot int) {
	ri[r] = append(ri[r], slot)
}

// insertAt places slot at index within rank r. index is clamped to
// [0, len]; out-of-range values never fail.
func (ri *rankIndex) insertAt(r task.Rank, slot, index int) {
	index = clamp(index, len(ri[r]))
	ri[r] = slices.Insert(ri[r], index, slot)
}

// remove drops slot from rank r and returns the position it occupied.
func (ri *rankIndex) remove(r task.Rank, slot int) (int, bool) {
	pos := slices.Index(ri[r], slot)
	if pos < 0 {
		return 0, false
	}
	ri[r] = slices.Delete(ri[r], pos, pos+1)
	return pos, true
}

// ordered returns the slots of rank r in order. The result aliases the
// index and must not be modified.
func (ri *rankIndex) ordered(r task.Rank) []int {
	return ri[r]
}

func (ri *rankIndex) total() int {
	n := 0
	for _, seq := range ri {
		n += len(seq)
	}
	return n
}

func (ri *rankIndex) clone() rankIndex {
	var cp rankIndex
	for r, seq := range ri {
		cp[r] = slices.Clone(seq)
	}
	return cp
}

func clamp(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n {
		return n
	}
	return index
}
