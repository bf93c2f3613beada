package store

import (
	"path/filepath"
	"testing"
)

// createTestStore creates a new SQLite store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// backends returns a fresh instance of every BlobStore implementation.
func backends(t *testing.T) map[string]BlobStore {
	t.Helper()

	bs, err := OpenBadger(InMemoryConfig())
	if err != nil {
		t.Fatalf("OpenBadger() failed: %v", err)
	}
	t.Cleanup(func() { bs.Close() })

	fs, err := OpenFile(filepath.Join(t.TempDir(), "blobs"))
	if err != nil {
		t.Fatalf("OpenFile() failed: %v", err)
	}

	return map[string]BlobStore{
		"sqlite": createTestStore(t),
		"badger": bs,
		"file":   fs,
	}
}
