package domain

import (
	"errors"
	"fmt"
)

// ValidationError marks a missing or zero required field in a request.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}

// NotFoundError marks a reference to a party or transaction that does not exist.
type NotFoundError struct {
	Entity string
	ID     int32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Entity, e.ID)
}

// PartialFailureError reports that the first of the two dependent ledger writes
// succeeded but the aggregate adjustment failed. The store rolls the pair back,
// so no inconsistency persists, but callers must still be able to tell this
// outcome apart from a total failure.
type PartialFailureError struct {
	Op      string // "record", "amend" or "retract"
	Message string
	Err     error
}

func (e *PartialFailureError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *PartialFailureError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFound reports whether err is a NotFoundError.
func IsNotFound(err error) bool {
	var nfe *NotFoundError
	return errors.As(err, &nfe)
}

// IsPartialFailure reports whether err is a PartialFailureError.
func IsPartialFailure(err error) bool {
	var pfe *PartialFailureError
	return errors.As(err, &pfe)
}
