package types

import "errors"

// -----------------------------------------------------------------------------
// Typed Errors (stable categories for programmatic handling)
// -----------------------------------------------------------------------------

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindNotFound  ErrKind = iota // missing entry/group/path
	ErrKindMalformed                // unparseable line or escape sequence
	ErrKindIO                       // open/read/write/rename failure
	ErrKindAccess                   // file access policy forbids the operation
	ErrKindState                    // invalid operation for current state (e.g., closed handle)
)

// String returns the kind name used in log output.
func (k ErrKind) String() string {
	switch k {
	case ErrKindNotFound:
		return "not_found"
	case ErrKindMalformed:
		return "malformed"
	case ErrKindIO:
		return "io"
	case ErrKindAccess:
		return "access"
	case ErrKindState:
		return "state"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a *Error of the same kind. This lets callers
// compare wrapped errors against the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind
}

// Sentinels commonly returned by implementations.
var (
	// ErrNotFound indicates a missing entry/group/path.
	ErrNotFound = &Error{Kind: ErrKindNotFound, Msg: "not found"}
	// ErrMalformed indicates a line or escape sequence that cannot be decoded.
	ErrMalformed = &Error{Kind: ErrKindMalformed, Msg: "malformed preferences data"}
	// ErrIO indicates a failed filesystem operation.
	ErrIO = &Error{Kind: ErrKindIO, Msg: "preferences i/o failed"}
	// ErrAccessDenied indicates the file access policy forbids the operation.
	ErrAccessDenied = &Error{Kind: ErrKindAccess, Msg: "preferences access denied"}
	// ErrClosed indicates use of a handle after Close.
	ErrClosed = &Error{Kind: ErrKindState, Msg: "preferences handle is closed"}
)

// IOError wraps err as an ErrKindIO error with the given operation message.
func IOError(msg string, err error) error {
	return &Error{Kind: ErrKindIO, Msg: msg, Err: err}
}

// MalformedError builds an ErrKindMalformed error.
func MalformedError(msg string, err error) error {
	return &Error{Kind: ErrKindMalformed, Msg: msg, Err: err}
}
