package service

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when an entry or catalog food cannot be located.
var ErrNotFound = errors.New("not found")

// ValidationError marks user-input failures: the mutation did not happen and
// retrying with the same input would fail identically.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string { return e.msg }

func validationf(format string, args ...any) error {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a user-input validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
