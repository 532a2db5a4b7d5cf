package domain

import "errors"

// ErrNotFound is returned when an update or delete targets an id that no
// longer exists in the store.
var ErrNotFound = errors.New("product not found")

// ValidationError rejects a draft before any store call is made.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Reason }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
