package domain

import "errors"

// Common domain errors
var (
	ErrNotFound       = errors.New("resource not found")
	ErrInvalidInput   = errors.New("invalid input")
	ErrDuplicateEntry = errors.New("duplicate entry")
)

// Record errors
var (
	ErrMemberNotFound       = errors.New("member not found")
	ErrGroupNotFound        = errors.New("group not found")
	ErrTransactionNotFound  = errors.New("transaction not found")
	ErrEventNotFound        = errors.New("event not found")
	ErrAnnouncementNotFound = errors.New("announcement not found")
)

// ValidationError carries a per-field error report. The whole request
// is rejected; no partial writes happen when one is returned.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// NewValidationError builds a ValidationError from a field->message map
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}
