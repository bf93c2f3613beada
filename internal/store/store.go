package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// DefaultKey is the key the task store is saved under.
const DefaultKey = "tasks"

// ErrNotFound is returned when no blob exists for a key.
var ErrNotFound = errors.New("blob not found")

// BlobStore stores opaque byte blobs by key.
type BlobStore interface {
	// Get returns the blob stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)
	// Put stores data under key, replacing any previous blob.
	Put(ctx context.Context, key string, data []byte) error
	// Delete removes the blob under key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases the backend's resources.
	Close() error
}

// Backend names a BlobStore implementation.
type Backend string

const (
	BackendSQLite Backend = "sqlite"
	BackendBadger Backend = "badger"
	BackendFile   Backend = "file"
)

// ValidBackends lists every supported backend.
var ValidBackends = []Backend{BackendSQLite, BackendBadger, BackendFile}

// OpenBackend opens the named backend at path.
//
// path is a database file for sqlite and a directory for badger and file.
func OpenBackend(backend Backend, path string, logger *slog.Logger) (BlobStore, error) {
	switch backend {
	case BackendSQLite:
		return Open(path)
	case BackendBadger:
		cfg := DefaultConfig()
		cfg.Path = path
		cfg.Logger = logger
		return OpenBadger(cfg)
	case BackendFile:
		return OpenFile(path)
	default:
		return nil, fmt.Errorf("unknown backend %q: must be one of %v", backend, ValidBackends)
	}
}
