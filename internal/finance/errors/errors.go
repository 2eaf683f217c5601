package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError is a single malformed or out-of-range input field.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func NewValidationError(msg string) error {
	return &ValidationError{Msg: msg}
}

func NewFieldValidationError(field, msg string) error {
	return &ValidationError{Field: field, Msg: msg}
}

func IsValidationError(err error) bool {
	var validationError *ValidationError
	ok := errors.As(err, &validationError)
	return ok
}

// ValidationErrors collects every violation of a request so the caller gets
// the full per-field list in one response.
type ValidationErrors struct {
	Errors []error
}

func (ve *ValidationErrors) Error() string {
	errorMessages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		errorMessages[i] = err.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(errorMessages, "; "))
}

func (ve *ValidationErrors) Add(err error) {
	ve.Errors = append(ve.Errors, err)
}

// Messages flattens the collected violations into plain strings for the
// structured error payload.
func (ve *ValidationErrors) Messages() []string {
	messages := make([]string, len(ve.Errors))
	for i, err := range ve.Errors {
		messages[i] = err.Error()
	}
	return messages
}

func IsValidationErrors(err error) bool {
	var validationErrors *ValidationErrors
	ok := errors.As(err, &validationErrors)
	return ok
}

// Sentinel errors of the ownership-scoped managers. Lookup paths report
// absence and foreign ownership the same way (ErrTransactionNotFound) while
// update and delete keep ErrNotTransactionOwner distinct, which mirrors the
// asymmetry of the HTTP surface (404 vs 403).
var (
	ErrOwnerNotFound       = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("category not found or does not belong to user")
	ErrInvalidCategory     = errors.New("category not found or does not belong to user")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotTransactionOwner = errors.New("not the owner of this transaction")
)
