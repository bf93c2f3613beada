// Package session connects a taskdb.DB to its persisted blob.
//
// A Session is the single owner of the store. It loads the blob on Open
// (falling back to the seeded store when the blob is missing or invalid),
// applies events one at a time and saves after every change.
//
// Save policy:
//   - Dispatch saves only when the event reported a change
//   - Burn and Swap always save
package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/roach88/burnerlist/internal/codec"
	"github.com/roach88/burnerlist/internal/store"
	"github.com/roach88/burnerlist/internal/task"
	"github.com/roach88/burnerlist/internal/taskdb"
)

// Options configures a Session.
type Options struct {
	// Key is the blob key. Defaults to store.DefaultKey.
	Key string

	// IDs generates fresh task IDs. Defaults to task.RandomIDs.
	IDs task.IDGenerator

	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Session owns a task store and its persistence.
//
// Thread-safety: a Session is not safe for concurrent use. All calls must
// come from one goroutine.
type Session struct {
	db     *taskdb.DB
	blobs  store.BlobStore
	key    string
	logger *slog.Logger

	// Seeded is true when Open found no usable blob.
	seeded bool
}

// Open loads the store from blobs.
//
// A missing or invalid blob is not an error: the session starts from the
// seeded store and logs why. Only backend failures other than ErrNotFound
// are returned.
func Open(ctx context.Context, blobs store.BlobStore, opts Options) (*Session, error) {
	if opts.Key == "" {
		opts.Key = store.DefaultKey
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	dbOpts := []taskdb.Option{taskdb.WithLogger(opts.Logger)}
	if opts.IDs != nil {
		dbOpts = append(dbOpts, taskdb.WithIDGenerator(opts.IDs))
	}

	s := &Session{blobs: blobs, key: opts.Key, logger: opts.Logger}

	data, err := blobs.Get(ctx, opts.Key)
	switch {
	case errors.Is(err, store.ErrNotFound):
		s.logger.Info("no saved tasks, starting from seed", "key", opts.Key)
		s.db = taskdb.Seed(dbOpts...)
		s.seeded = true
	case err != nil:
		return nil, fmt.Errorf("load %q: %w", opts.Key, err)
	default:
		db, err := codec.Load(data, dbOpts...)
		if err != nil {
			s.logger.Warn("saved tasks unreadable, starting from seed", "key", opts.Key, "error", err)
			s.seeded = true
		}
		s.db = db
	}

	s.logger.Debug("session open", "key", opts.Key, "tasks", s.db.Len(), "seeded", s.seeded)
	return s, nil
}

// DB returns the underlying store for read access. Callers must not mutate
// it directly; use the Session methods so changes are persisted.
func (s *Session) DB() *taskdb.DB {
	return s.db
}

// Seeded reports whether Open fell back to the seeded store.
func (s *Session) Seeded() bool {
	return s.seeded
}

// Dispatch applies ev and saves if the store changed.
func (s *Session) Dispatch(ctx context.Context, ev task.Event) (bool, error) {
	changed := s.db.Apply(ev)
	if !changed {
		return false, nil
	}
	if err := s.Save(ctx); err != nil {
		return true, err
	}
	return true, nil
}

// AddValue adds a task with value to rank r and returns it.
// Values that normalize to the empty string are rejected.
func (s *Session) AddValue(ctx context.Context, r task.Rank, value string) (task.Record, error) {
	if !r.Valid() {
		return task.Record{}, fmt.Errorf("add: %w: %d", task.ErrUnknownRank, uint8(r))
	}
	if task.NormalizeValue(value) == "" {
		return task.Record{}, fmt.Errorf("add: %w", task.ErrEmptyValue)
	}
	if _, err := s.Dispatch(ctx, task.Add{Rank: r, Value: value}); err != nil {
		return task.Record{}, err
	}
	recs := s.db.GetByRank(r)
	return recs[len(recs)-1], nil
}

// CommitEdit finishes editing task id. An empty value deletes the task,
// anything else replaces its value in place.
func (s *Session) CommitEdit(ctx context.Context, id uuid.UUID, value string) (bool, error) {
	if task.NormalizeValue(value) == "" {
		return s.Dispatch(ctx, task.Delete{ID: id})
	}
	return s.Dispatch(ctx, task.Edit{ID: id, Value: value})
}

// Burn deletes every task in rank r and saves.
func (s *Session) Burn(ctx context.Context, r task.Rank) error {
	s.db.Burn(r)
	return s.Save(ctx)
}

// Swap exchanges ranks a and b and saves.
func (s *Session) Swap(ctx context.Context, a, b task.Rank) error {
	s.db.Swap(a, b)
	return s.Save(ctx)
}

// Replace swaps in an entirely new store, for imports, and saves it.
// Observers registered on the previous store are not carried over.
func (s *Session) Replace(ctx context.Context, db *taskdb.DB) error {
	s.db = db
	s.seeded = false
	return s.Save(ctx)
}

// Save writes the store to the blob store.
func (s *Session) Save(ctx context.Context) error {
	data, err := codec.Encode(s.db)
	if err != nil {
		return fmt.Errorf("save: %w", err)
	}
	if err := s.blobs.Put(ctx, s.key, data); err != nil {
		return fmt.Errorf("save: %w", err)
	}
	s.logger.Debug("saved", "key", s.key, "bytes", len(data), "version", s.db.Version())
	return nil
}
