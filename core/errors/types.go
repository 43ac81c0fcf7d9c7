// ABOUTME: Custom error types for the extraction core
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a hard input error: extraction could not begin
// at all. It is raised once, before any extractor runs.
type InvalidInputError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input '%s': %s", e.Field, e.Message)
}

// ManifestParseError reports a malformed web app manifest document. Unlike
// the per-format extractors, manifest parsing has no partial-success shape,
// so this failure is surfaced to the caller instead of absorbed.
type ManifestParseError struct {
	Cause error
}

// Error implements the error interface
func (e *ManifestParseError) Error() string {
	return fmt.Sprintf("malformed manifest JSON: %v", e.Cause)
}

// Unwrap returns the underlying decode error
func (e *ManifestParseError) Unwrap() error {
	return e.Cause
}

// ValidationError represents a request validation error at the API edge
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var inputErr *InvalidInputError
	return errors.As(err, &inputErr)
}

// IsManifestParse checks if an error is a ManifestParseError
func IsManifestParse(err error) bool {
	var parseErr *ManifestParseError
	return errors.As(err, &parseErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
