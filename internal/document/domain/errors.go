package domain

import (
	"errors"
	"strings"
)

// ValidationError reports required input that is missing or malformed.
// Operations returning it leave stored state untouched.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return "validation error"
	}
	return "missing required fields: " + strings.Join(e.Missing, ", ")
}

// AsValidation unwraps err into a ValidationError, or nil.
func AsValidation(err error) *ValidationError {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	return nil
}
