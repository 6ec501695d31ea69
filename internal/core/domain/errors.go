package domain

import "fmt"

// ValidationError reports a missing, malformed or contradictory search
// parameter. Transport layers translate it into a client error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid parameter %q: %s", e.Field, e.Message)
}

func newValidationError(field, format string, args ...interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}

// UpstreamError reports that the listing source could not be reached or
// rejected the request. Transport layers translate it into a bad gateway.
type UpstreamError struct {
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream listing source failed: %v", e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// FormatError reports upstream data this service cannot represent, for
// example rows that violate the property record contract.
type FormatError struct {
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("response formatting failed: %s", e.Reason)
	}
	return fmt.Sprintf("response formatting failed: %s: %v", e.Reason, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}
