// Package taskdb implements the in-process task store.
//
// A DB keeps three structures in lockstep:
//   - Record Table: a slab.Table of task.Record addressed by slot
//   - Identity Index: task ID -> slot
//   - Rank Index: one ordered slot sequence per rank
//
// The rank sequences are the authoritative display and persistence order.
// Every mutation touches all three structures before it returns, and
// observers are notified only after that.
//
// # Invariants
//
//   - |Identity Index| == |Record Table| == sum of all rank sequence lengths
//   - every live slot appears in exactly one rank sequence and exactly one
//     Identity Index entry, and its record's Rank names that sequence
//   - slots never leave this package; callers address tasks by ID
//
// A broken invariant is a programming error and panics.
//
// # Concurrency
//
// A DB has exactly one writer. Nothing in this package blocks or suspends,
// and nothing is safe for concurrent use. Readers that must not observe
// later mutations take a Clone.
package taskdb
