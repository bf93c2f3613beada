package codec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/roach88/burnerlist/internal/task"
	"github.com/roach88/burnerlist/internal/taskdb"
)

// ErrInvalid is returned when persisted data is malformed.
var ErrInvalid = errors.New("invalid persisted task data")

// Snapshot is the canonical ordered list of tasks.
type Snapshot struct {
	Tasks []task.Record `json:"tasks" yaml:"tasks"`
}

// SnapshotOf captures db in canonical order.
func SnapshotOf(db *taskdb.DB) Snapshot {
	return Snapshot{Tasks: db.Records()}
}

// Encode serializes db to canonical JSON.
//
// HTML characters are not escaped and there is no trailing newline, so the
// same store always yields the same bytes.
func Encode(db *taskdb.DB) ([]byte, error) {
	return encodeJSON(SnapshotOf(db), "")
}

// EncodeIndent is Encode with indentation, for human-facing exports.
func EncodeIndent(db *taskdb.DB) ([]byte, error) {
	return encodeJSON(SnapshotOf(db), "  ")
}

func encodeJSON(s Snapshot, indent string) ([]byte, error) {
	if s.Tasks == nil {
		s.Tasks = []task.Record{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(s); err != nil {
		return nil, fmt.Errorf("encode tasks: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// Decode validates data and rebuilds a DB from it.
// opts are passed to taskdb.FromRecords.
func Decode(data []byte, opts ...taskdb.Option) (*taskdb.DB, error) {
	s, err := DecodeSnapshot(data)
	if err != nil {
		return nil, err
	}
	return restore(s, opts)
}

// DecodeSnapshot validates data against the schema and parses it.
func DecodeSnapshot(data []byte) (Snapshot, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Snapshot{}, fmt.Errorf("%w: empty input", ErrInvalid)
	}
	if err := Validate(data); err != nil {
		return Snapshot{}, err
	}

	var s Snapshot
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return s, nil
}

func restore(s Snapshot, opts []taskdb.Option) (*taskdb.DB, error) {
	db, err := taskdb.FromRecords(s.Tasks, opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return db, nil
}
