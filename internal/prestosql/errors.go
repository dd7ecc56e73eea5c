package prestosql

import "fmt"

// RewriteError represents a malformed node fed to the rewriter.
//
// The rewriter performs no I/O and cannot fail at runtime for well-formed
// input; every RewriteError is a programming error in the caller. It fails
// fast with a descriptive message rather than emitting invalid SQL
// silently, and is never retried.
type RewriteError struct {
	// Code identifies the error category.
	Code RewriteErrorCode

	// Kind is the expression kind being rewritten.
	Kind Kind

	// Message is a human-readable description.
	Message string
}

// RewriteErrorCode categorizes rewrite errors.
type RewriteErrorCode string

const (
	// ErrCodeMalformedExpression indicates wrong arity or a wrong child
	// kind for the expression being rewritten.
	ErrCodeMalformedExpression RewriteErrorCode = "MALFORMED_EXPRESSION"

	// ErrCodeUnknownKind indicates a kind outside the closed rewrite set.
	ErrCodeUnknownKind RewriteErrorCode = "UNKNOWN_KIND"

	// ErrCodeUnsupportedZoneShift indicates zone correction was forced
	// onto an ineligible declared type. The eligibility check makes this
	// unreachable through the public entry points; seeing it means an
	// invariant was violated.
	ErrCodeUnsupportedZoneShift RewriteErrorCode = "UNSUPPORTED_ZONE_SHIFT"
)

func (e *RewriteError) Error() string {
	if e.Kind != "" {
		return fmt.Sprintf("rewrite %s [%s]: %s", e.Kind, e.Code, e.Message)
	}
	return fmt.Sprintf("rewrite [%s]: %s", e.Code, e.Message)
}

func malformed(kind Kind, format string, args ...any) *RewriteError {
	return &RewriteError{
		Code:    ErrCodeMalformedExpression,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
