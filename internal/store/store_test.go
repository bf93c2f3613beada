package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_GetMissing(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := s.Get(context.Background(), DefaultKey)
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestBlobStore_PutGet(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, DefaultKey, []byte(`{"tasks":[]}`)))

			got, err := s.Get(ctx, DefaultKey)
			require.NoError(t, err)
			assert.Equal(t, `{"tasks":[]}`, string(got))
		})
	}
}

func TestBlobStore_PutReplaces(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, DefaultKey, []byte("one")))
			require.NoError(t, s.Put(ctx, DefaultKey, []byte("two")))

			got, err := s.Get(ctx, DefaultKey)
			require.NoError(t, err)
			assert.Equal(t, "two", string(got))
		})
	}
}

func TestBlobStore_KeysAreIndependent(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, "a", []byte("A")))
			require.NoError(t, s.Put(ctx, "b", []byte("B")))

			a, err := s.Get(ctx, "a")
			require.NoError(t, err)
			b, err := s.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, "A", string(a))
			assert.Equal(t, "B", string(b))
		})
	}
}

func TestBlobStore_Delete(t *testing.T) {
	ctx := context.Background()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Put(ctx, DefaultKey, []byte("x")))
			require.NoError(t, s.Delete(ctx, DefaultKey))

			_, err := s.Get(ctx, DefaultKey)
			assert.ErrorIs(t, err, ErrNotFound)

			// Deleting again is fine
			assert.NoError(t, s.Delete(ctx, DefaultKey))
		})
	}
}

func TestBlobStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, s.Put(ctx, DefaultKey, []byte("x")))
		})
	}
}

func TestOpen_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "test.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Put(ctx, DefaultKey, []byte("persisted")))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "persisted", string(got))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	for i := 0; i < 3; i++ {
		s, err := Open(path)
		if err != nil {
			t.Fatalf("Open() iteration %d failed: %v", i, err)
		}
		s.Close()
	}

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	var name string
	err = s.db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='blobs'").Scan(&name)
	require.NoError(t, err)
}

func TestPragmas(t *testing.T) {
	s := createTestStore(t)

	// NORMAL = 1, ON = 1
	for name, want := range map[string]string{
		"journal_mode": "wal",
		"synchronous":  "1",
		"busy_timeout": "5000",
		"foreign_keys": "1",
	} {
		if err := s.verifyPragma(name, want); err != nil {
			t.Error(err)
		}
	}
}

func TestRevision_IncrementsOnPut(t *testing.T) {
	ctx := context.Background()
	s := createTestStore(t)

	_, err := s.Revision(ctx, DefaultKey)
	assert.ErrorIs(t, err, ErrNotFound)

	for i := 1; i <= 3; i++ {
		require.NoError(t, s.Put(ctx, DefaultKey, []byte(fmt.Sprint(i))))
		rev, err := s.Revision(ctx, DefaultKey)
		require.NoError(t, err)
		assert.Equal(t, int64(i), rev)
	}
}

func TestMigration_SetsUserVersion(t *testing.T) {
	s := createTestStore(t)

	var version int
	require.NoError(t, s.db.QueryRow("PRAGMA user_version").Scan(&version))
	assert.Equal(t, currentSchemaVersion, version)
}

func TestMigration_V1AddsRevisionToOldDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "old.db")

	// Build a version-0 database by hand: blobs without revision.
	old, err := Open(path)
	require.NoError(t, err)
	_, err = old.db.Exec(`DROP TABLE blobs`)
	require.NoError(t, err)
	_, err = old.db.Exec(`CREATE TABLE blobs (key TEXT PRIMARY KEY, data BLOB NOT NULL)`)
	require.NoError(t, err)
	_, err = old.db.Exec(`INSERT INTO blobs (key, data) VALUES ('tasks', 'legacy')`)
	require.NoError(t, err)
	_, err = old.db.Exec(`PRAGMA user_version = 0`)
	require.NoError(t, err)
	require.NoError(t, old.Close())

	s, err := Open(path)
	require.NoError(t, err)
	defer s.Close()

	rev, err := s.Revision(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, int64(1), rev)

	got, err := s.Get(ctx, DefaultKey)
	require.NoError(t, err)
	assert.Equal(t, "legacy", string(got))
}

func TestFileStore_RejectsPathKeys(t *testing.T) {
	ctx := context.Background()
	s, err := OpenFile(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "a/b", `a\b`} {
		assert.Error(t, s.Put(ctx, key, []byte("x")), "key %q", key)
	}
}

func TestFileStore_WritesJSONFile(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := OpenFile(dir)
	require.NoError(t, err)

	require.NoError(t, s.Put(ctx, DefaultKey, []byte("{}")))

	assert.FileExists(t, filepath.Join(dir, "tasks.json"))
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	for _, b := range ValidBackends {
		t.Run(string(b), func(t *testing.T) {
			path := filepath.Join(dir, string(b))
			if b == BackendSQLite {
				path += ".db"
			}
			s, err := OpenBackend(b, path, nil)
			require.NoError(t, err)
			defer s.Close()

			require.NoError(t, s.Put(context.Background(), DefaultKey, []byte("ok")))
		})
	}

	_, err := OpenBackend("redis", dir, nil)
	assert.ErrorContains(t, err, "unknown backend")
}
