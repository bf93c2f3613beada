package codec

import (
	"github.com/roach88/burnerlist/internal/taskdb"
)

// Load decodes data, falling back to taskdb.Seed when data is missing or
// invalid. The returned error is nil on a clean decode and otherwise
// explains why the seed was used; it is informational, never fatal.
func Load(data []byte, opts ...taskdb.Option) (*taskdb.DB, error) {
	db, err := Decode(data, opts...)
	if err != nil {
		return taskdb.Seed(opts...), err
	}
	return db, nil
}
