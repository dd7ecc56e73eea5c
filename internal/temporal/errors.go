package temporal

import "fmt"

// ConversionError represents a temporal value that cannot be formatted or
// bound. Conversions are pure; retrying one cannot change the outcome, so
// conversion errors surface synchronously to the binding caller and the
// caller aborts that query.
//
// ConversionError includes structured fields for diagnostics.
type ConversionError struct {
	// Code identifies the error category.
	Code ConversionErrorCode

	// Message is a human-readable description.
	Message string
}

// ConversionErrorCode categorizes conversion errors.
type ConversionErrorCode string

const (
	// ErrCodeOutOfRange indicates a component outside its representable
	// range (year beyond four digits, hour 25, negative millis).
	ErrCodeOutOfRange ConversionErrorCode = "VALUE_OUT_OF_RANGE"

	// ErrCodeUnsupportedKind indicates a value kind the operation does
	// not accept (a time-of-day fed to the timestamp literal path).
	ErrCodeUnsupportedKind ConversionErrorCode = "UNSUPPORTED_VALUE_KIND"
)

func (e *ConversionError) Error() string {
	return fmt.Sprintf("temporal conversion failed [%s]: %s", e.Code, e.Message)
}
