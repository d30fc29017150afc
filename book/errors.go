package book

import (
	"errors"
	"fmt"
)

// Sentinel conditions surfaced by the books. The CLI layer matches on
// these with errors.Is to build user-facing messages.
var (
	ErrAlreadyExists   = errors.New("record already exists")
	ErrNotFound        = errors.New("record not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// ValidationError reports a field value that failed its format rule.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// IsValidationError reports whether any error in err's chain is a
// ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
