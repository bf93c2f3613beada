package codec

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/roach88/burnerlist/internal/taskdb"
)

// EncodeYAML serializes db as YAML, in the same canonical order as Encode.
func EncodeYAML(db *taskdb.DB) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(SnapshotOf(db)); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeYAML rebuilds a DB from YAML produced by EncodeYAML or written by
// hand. Unknown fields are rejected.
func DecodeYAML(data []byte, opts ...taskdb.Option) (*taskdb.DB, error) {
	var s Snapshot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return restore(s, opts)
}
