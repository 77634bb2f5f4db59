package listingerrors

import (
	"errors"
	"strings"
)

// Repository-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrUserNotFound    = errors.New("user not found")
)

// business logic errors
var (
	ErrInvalidInput    = errors.New("invalid or missing fields")
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("caller is neither the seller nor an admin")
)

// RequiredProductFields is reported on every invalid write payload,
// whichever fields were actually missing.
var RequiredProductFields = []string{"name", "description", "pictureUrl", "category", "originalPrice", "endDate"}

// ValidationError reports an invalid product payload
type ValidationError struct {
	Fields []string
	Cause  error
}

// NewValidationError returns a ValidationError carrying the canonical field list
func NewValidationError(cause error) *ValidationError {
	return &ValidationError{
		Fields: append([]string(nil), RequiredProductFields...),
		Cause:  cause,
	}
}

func (e *ValidationError) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(e.Fields, ", ")
}

// Is lets errors.Is(err, ErrInvalidInput) match any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
