package taskdb

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/burnerlist/internal/slab"
	"github.com/roach88/burnerlist/internal/task"
)

// SeedValue is the text of the single task a fresh store starts with.
const SeedValue = "Hello! BurnerList is a simple, intentionally constrained list."

// DB is the task store. The zero value is not usable; call New.
type DB struct {
	table slab.Table[task.Record]
	ids   identityIndex
	ranks rankIndex

	// version changes on every successful mutation. It is a counter, not a
	// content hash: equal content reached by different histories yields
	// different versions.
	version uint64

	gen       task.IDGenerator
	logger    *slog.Logger
	observers []*observer
}

// Option configures a DB.
type Option func(*DB)

// WithIDGenerator sets the source of fresh task IDs.
// Defaults to task.RandomIDs.
func WithIDGenerator(gen task.IDGenerator) Option {
	return func(db *DB) {
		db.gen = gen
	}
}

// WithLogger sets the logger used for per-event debug output.
// Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(db *DB) {
		db.logger = logger
	}
}

// New creates an empty DB.
func New(opts ...Option) *DB {
	db := &DB{
		ids:    make(identityIndex),
		gen:    task.RandomIDs{},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

// Seed creates a DB holding the built-in welcome task in Primary.
// Used whenever no valid persisted store exists.
func Seed(opts ...Option) *DB {
	db := New(opts...)
	db.add(task.NewRecord(db.gen, task.Primary, SeedValue))
	return db
}

// FromRecords rebuilds a DB by appending each record in order, keeping the
// records' IDs. Input produced by Records puts ranks in priority order with
// each rank's tasks in display order, so replaying it reproduces both rank
// membership and intra-rank order.
//
// Returns an error if a record has an invalid rank or a duplicate ID.
func FromRecords(records []task.Record, opts ...Option) (*DB, error) {
	db := New(opts...)
	for i, rec := range records {
		if !rec.Rank.Valid() {
			return nil, fmt.Errorf("record %d: %w: %d", i, task.ErrUnknownRank, uint8(rec.Rank))
		}
		if _, dup := db.ids.lookup(rec.ID); dup {
			return nil, fmt.Errorf("record %d: duplicate id %s", i, rec.ID)
		}
		rec.Value = task.NormalizeValue(rec.Value)
		db.add(rec)
	}
	return db, nil
}

// Version returns the current version token.
func (db *DB) Version() uint64 {
	return db.version
}

// Len returns the number of tasks.
func (db *DB) Len() int {
	return db.table.Len()
}

// Clone returns an independent copy of the store's contents and version.
// Observers are not copied. The clone shares the ID generator and logger.
func (db *DB) Clone() *DB {
	return &DB{
		table:   *db.table.Clone(),
		ids:     db.ids.clone(),
		ranks:   db.ranks.clone(),
		version: db.version,
		gen:     db.gen,
		logger:  db.logger,
	}
}

// add inserts rec and appends it to the tail of its rank.
func (db *DB) add(rec task.Record) {
	slot := db.table.Insert(rec)
	db.ids.put(rec.ID, slot)
	db.ranks.append(rec.Rank, slot)
	db.bump()
}

// insert inserts rec at index within its rank, or at the tail if index is nil.
func (db *DB) insert(rec task.Record, index *int) {
	slot := db.table.Insert(rec)
	db.ids.put(rec.ID, slot)
	if index != nil {
		db.ranks.insertAt(rec.Rank, slot, *index)
	} else {
		db.ranks.append(rec.Rank, slot)
	}
	db.bump()
}

// removeByID takes the task out of all three structures and returns it with
// the position it held in its rank.
func (db *DB) removeByID(id uuid.UUID) (task.Record, int, bool) {
	slot, ok := db.ids.remove(id)
	if !ok {
		return task.Record{}, 0, false
	}
	rec, err := db.table.Remove(slot)
	if err != nil {
		panic(fmt.Sprintf("taskdb: identity index points at free slot %d for %s", slot, id))
	}
	pos, ok := db.ranks.remove(rec.Rank, slot)
	if !ok {
		panic(fmt.Sprintf("taskdb: slot %d for %s missing from rank %s", slot, id, rec.Rank))
	}
	db.bump()
	return rec, pos, true
}

func (db *DB) bump() {
	db.version++
}

// record returns the record in slot, which must be live.
func (db *DB) record(slot int) task.Record {
	rec, ok := db.table.Get(slot)
	if !ok {
		panic(fmt.Sprintf("taskdb: rank index references free slot %d", slot))
	}
	return rec
}
