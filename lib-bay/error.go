package bay

import (
	"errors"
	"fmt"
)

// The errors in this library can be checked via errors.Is function.
var (
	// ErrInvalidEndpoint is a error for if the API endpoint could not be resolved.
	ErrInvalidEndpoint = errors.New("invalid endpoint")

	// ErrCommunicate is a error for if connect or communicate with the API server.
	ErrCommunicate = errors.New("server communication error")

	// ErrHTTPStatus is a error for if the API replied a non-2xx status.
	// The error value is a *StatusError that carries the status code.
	ErrHTTPStatus = errors.New("unexpected response status")

	// ErrInvalidResponse is a error for if the response body could not be decoded.
	ErrInvalidResponse = errors.New("invalid response")

	// ErrNoResults is a error for if the API replied an empty list.
	ErrNoResults = errors.New("No results")

	// ErrMissingElement is a error for if the page lacks a required element.
	ErrMissingElement = errors.New("Missing HTMLElement")

	// ErrUnknownStatus is a error for if a result has a status out of the known range.
	ErrUnknownStatus = errors.New("unknown status")

	// ErrStale is a error for if the latest result is too old to show.
	ErrStale = errors.New("status is outdated")
)

// StatusError is the error when the API replied a non-2xx status code.
type StatusError struct {
	Code int
}

// Error implements error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("Response status: %d", e.Code)
}

// Is reports true for ErrHTTPStatus.
func (e *StatusError) Is(err error) bool {
	return err == ErrHTTPStatus
}
