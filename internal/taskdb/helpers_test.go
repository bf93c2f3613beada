package taskdb

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/roach88/burnerlist/internal/task"
	"github.com/roach88/burnerlist/internal/testutil"
)

// newTestDB creates an empty DB with sequential IDs and no log output.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	return New(
		WithIDGenerator(testutil.NewSequentialIDs()),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
	)
}

// mustAdd adds a task and returns its ID.
func mustAdd(t *testing.T, db *DB, r task.Rank, value string) uuid.UUID {
	t.Helper()
	require.True(t, db.Apply(task.Add{Rank: r, Value: value}))
	recs := db.GetByRank(r)
	require.NotEmpty(t, recs)
	return recs[len(recs)-1].ID
}

// values returns the values of rank r in display order.
func values(db *DB, r task.Rank) []string {
	out := []string{}
	for _, rec := range db.GetByRank(r) {
		out = append(out, rec.Value)
	}
	return out
}

// requireConsistent fails the test if any invariant is broken.
func requireConsistent(t *testing.T, db *DB) {
	t.Helper()
	require.NoError(t, db.Check())
	total := 0
	for _, r := range task.Ranks {
		total += db.RankLen(r)
	}
	require.Equal(t, db.Len(), total)
	require.Equal(t, db.Len(), len(db.ids))
}
