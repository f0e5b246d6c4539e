package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrClientNotFound is returned when an operation names an id the store does
// not hold.
var ErrClientNotFound = errors.New("client not found")

// ValidationError blocks a submit locally; it never reaches the network.
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid client: %s", strings.Join(e.Fields.Fields(), ", "))
}

// AsValidationError returns the field errors carried by err, if any.
func AsValidationError(err error) (FieldErrors, bool) {
	var vErr *ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields, true
	}

	return nil, false
}

// NotFoundError ties ErrClientNotFound to the id that was asked for.
type NotFoundError struct {
	ID int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("client %d not found", e.ID)
}

func (e *NotFoundError) Unwrap() error {
	return ErrClientNotFound
}
