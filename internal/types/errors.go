package types

import "fmt"

// ErrorKind classifies request-level failures. Per-file failures inside
// a search are absorbed as Skip records and never carry a kind.
type ErrorKind string

const (
	KindMissingParameter ErrorKind = "missing_parameter"
	KindInvalidPattern   ErrorKind = "invalid_pattern"
	KindPathNotFound     ErrorKind = "path_not_found"
	KindPermissionDenied ErrorKind = "permission_denied"
)

// Error is a request-level failure with a stable kind. The message text
// is what crosses the module boundary; kinds never surface as panics or
// wrapped sentinel chains.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// MissingParameter reports a required request field that was not set.
func MissingParameter(message string) *Error {
	return &Error{Kind: KindMissingParameter, Message: message}
}

// InvalidPattern reports a caller-supplied regular expression that does
// not compile. Distinct from a pattern that simply never matches.
func InvalidPattern(err error) *Error {
	return &Error{Kind: KindInvalidPattern, Message: fmt.Sprintf("invalid pattern: %v", err)}
}

// PathNotFound reports a missing search root.
func PathNotFound(path string) *Error {
	return &Error{Kind: KindPathNotFound, Message: fmt.Sprintf("path not found: %s", path)}
}

// PermissionDenied reports an unreadable search root.
func PermissionDenied(path string) *Error {
	return &Error{Kind: KindPermissionDenied, Message: fmt.Sprintf("permission denied: %s", path)}
}
