// Package store provides durable named-blob storage for the task store.
//
// The task store persists as one opaque blob under a fixed key (DefaultKey).
// Three backends implement BlobStore:
//   - SQLite (default): a single blobs table, WAL mode
//   - Badger: embedded key-value store, with an in-memory mode for tests
//   - File: one file per key, rewritten atomically
//
// All backends report a missing key as ErrNotFound. None of them interpret
// the blob; validation is the codec's job.
//
// # SQLite Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
