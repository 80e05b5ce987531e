package domain

import "errors"

// ErrorKind classifies business-rule failures. The HTTP layer owns the
// mapping to status codes; nothing below it looks at transport concerns.
type ErrorKind int

const (
	// ErrorInternal is anything unanticipated.
	ErrorInternal ErrorKind = iota
	// ErrorBadInput is malformed, missing or incoherent input.
	ErrorBadInput
	// ErrorNotFound is a referenced id that does not exist.
	ErrorNotFound
	// ErrorConflict is a duplicate flight name.
	ErrorConflict
)

// Error is a business error raised at the point of detection. It propagates
// unmodified to the HTTP boundary.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func BadInput(msg string) error {
	return &Error{Kind: ErrorBadInput, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: ErrorNotFound, Message: msg}
}

func Conflict(msg string) error {
	return &Error{Kind: ErrorConflict, Message: msg}
}

// KindOf extracts the kind from err, defaulting to ErrorInternal for
// anything that is not a *Error.
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return ErrorInternal
}
