package domain

import "errors"

// ErrNotConfigured is the cause attached to FailedPrecondition when the mail transport has no credentials.
var ErrNotConfigured = errors.New("mail transport not configured")

// ErrorKind enumerates the failure categories a handler can report to its caller.
type ErrorKind int

const (
	InvalidArgument ErrorKind = iota + 1
	FailedPrecondition
	Internal
)

// Code returns the wire code for the kind.
func (k ErrorKind) Code() string {
	switch k {
	case InvalidArgument:
		return "invalid-argument"
	case FailedPrecondition:
		return "failed-precondition"
	default:
		return "internal"
	}
}

func (k ErrorKind) String() string { return k.Code() }

// CallableError is the structured error returned by every handler.
// Message is surfaced to the caller verbatim; Cause stays server-side.
type CallableError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func NewCallableError(kind ErrorKind, msg string, cause error) *CallableError {
	return &CallableError{Kind: kind, Message: msg, Cause: cause}
}

func (e *CallableError) Error() string { return e.Message }

func (e *CallableError) Unwrap() error { return e.Cause }

// KindOf extracts the ErrorKind from err. Errors that are not a CallableError are Internal.
func KindOf(err error) ErrorKind {
	var ce *CallableError
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return Internal
}
