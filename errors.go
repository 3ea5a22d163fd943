package annual

import "fmt"

// ErrorCode classifies the fatal, programmer-facing errors this module can
// return. Resolution problems (unknown identifier, invalid literal day)
// are not errors at all — they are non-fatal diagnostics that resolve to
// MaybeDate absence; see the diagnostics package.
type ErrorCode int

const (
	// ErrUnknownProducerKind indicates a producer was registered with a
	// kind marker the registry does not recognize.
	ErrUnknownProducerKind ErrorCode = iota

	// ErrNonCallableProducer indicates a value marked as a producer does
	// not satisfy the DateFunction or DateIterator contract.
	ErrNonCallableProducer

	// ErrDuplicateProducerName indicates two producers sharing a name.
	// The registry never returns it: AddFromModule installs a later
	// producer over an earlier one with the same name.
	ErrDuplicateProducerName

	// ErrInvalidYearRange indicates a year outside an algorithm's stated
	// validity window was requested directly rather than through the
	// absence-returning producer contract (e.g. a caller bypassing the
	// registry).
	ErrInvalidYearRange

	// ErrBundleUnreadable indicates a configured rule bundle file could
	// not be read or parsed.
	ErrBundleUnreadable
)

// String renders the error code's symbolic name.
func (c ErrorCode) String() string {
	switch c {
	case ErrUnknownProducerKind:
		return "ErrUnknownProducerKind"
	case ErrNonCallableProducer:
		return "ErrNonCallableProducer"
	case ErrDuplicateProducerName:
		return "ErrDuplicateProducerName"
	case ErrInvalidYearRange:
		return "ErrInvalidYearRange"
	case ErrBundleUnreadable:
		return "ErrBundleUnreadable"
	default:
		return fmt.Sprintf("ErrorCode(%d)", int(c))
	}
}

// RuleError is a structured error with context about what went wrong
// while registering producers or loading configuration. Evaluation and
// parsing failures that are part of normal operation (unknown rule
// syntax, unresolved identifiers) use ParseError and the diagnostic sink
// instead — RuleError is reserved for the "programmer error" category of
// the error handling design (fail fast at registration time, never
// during Evaluate).
type RuleError struct {
	Code    ErrorCode
	Name    string // producer or bundle name, when applicable
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *RuleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause error, if any.
func (e *RuleError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a *RuleError with the same Code.
func (e *RuleError) Is(target error) bool {
	re, ok := target.(*RuleError)
	if !ok {
		return false
	}
	return e.Code == re.Code
}

// NewRuleError creates a RuleError without an underlying cause.
func NewRuleError(code ErrorCode, message string) *RuleError {
	return &RuleError{Code: code, Message: message}
}

// NewRuleErrorWithCause creates a RuleError wrapping an underlying cause.
func NewRuleErrorWithCause(code ErrorCode, message string, cause error) *RuleError {
	return &RuleError{Code: code, Message: message, Cause: cause}
}

// NewProducerError creates a producer-specific RuleError.
func NewProducerError(code ErrorCode, name, message string) *RuleError {
	return &RuleError{Code: code, Name: name, Message: message}
}
