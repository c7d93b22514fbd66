package matcher

import (
	"errors"
	"fmt"
)

// ErrInvalidSchema reports a schema argument that is not a sequence of
// string-coercible values. Not recoverable; surfaced immediately to the
// caller.
var ErrInvalidSchema = errors.New("schema columns must be a sequence of strings")

func invalidSchemaError(v any) error {
	return fmt.Errorf("%w: got %T", ErrInvalidSchema, v)
}

func invalidSchemaElementError(index int, v any) error {
	return fmt.Errorf("%w: element %d has unsupported type %T", ErrInvalidSchema, index, v)
}
