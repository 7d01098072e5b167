// Package bayerr is the error type of dduwash.
//
// An Error has a kind from lib-bay, the cause, and a message for the journal.
// A List collects problems that are reported at once, like an invalid config.
package bayerr

import (
	"fmt"
)

// Error is the error type of the status board.
//
// Use errors.Is with one of the kinds in lib-bay to find out what failed.
type Error struct {
	kind    error
	from    error
	message string
}

// New creates a new Error.
func New(kind error, from error, format string, args ...interface{}) Error {
	msg := fmt.Sprintf(format, args...)
	if from != nil {
		if msg != "" {
			msg += ": "
		}
		msg += from.Error()
	}

	return Error{
		kind:    kind,
		from:    from,
		message: msg,
	}
}

// Error implements error interface.
func (e Error) Error() string {
	return e.message
}

// Kind returns the kind of this error.
func (e Error) Kind() error {
	return e.kind
}

// Unwrap implement for errors.Unwrap.
func (e Error) Unwrap() error {
	return e.from
}

// Is implement for errors.Is.
func (e Error) Is(err error) bool {
	return e.kind == err
}
