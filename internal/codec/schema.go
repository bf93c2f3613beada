package codec

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

//go:embed schema.cue
var schemaCUE string

// Validate checks JSON data against the #Snapshot schema.
// Returns an error wrapping ErrInvalid describing the first violations.
func Validate(data []byte) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		// The schema is embedded; failing to compile it is a build defect.
		panic(fmt.Sprintf("codec: compile schema: %v", err))
	}
	def := schema.LookupPath(cue.ParsePath("#Snapshot"))

	v := ctx.CompileBytes(data, cue.Filename("tasks.json"))
	if err := v.Err(); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, errors.Details(err, nil))
	}

	if err := def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalid, errors.Details(err, nil))
	}
	return nil
}
