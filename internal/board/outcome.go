package board

import (
	"errors"
	"time"

	"github.com/micahco/dduwash/lib-bay"
)

// State is the state of the status widget in the page.
type State int

const (
	// StateLoading is the initial state: the loading indicator is shown and the table is hidden.
	StateLoading State = iota

	// StateRendered means the table is filled and revealed.
	StateRendered

	// StateFailed means rendering failed and the page stays in the loading state.
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateRendered:
		return "rendered"
	case StateFailed:
		return "failed"
	default:
		return "loading"
	}
}

// ErrRender is the kind of a failure that is not any of the kinds in lib-bay,
// such as a panic while changing the page.
var ErrRender = errors.New("failed to render")

var kinds = []error{
	bay.ErrMissingElement,
	bay.ErrHTTPStatus,
	bay.ErrNoResults,
	bay.ErrCommunicate,
	bay.ErrInvalidResponse,
	bay.ErrUnknownStatus,
	bay.ErrStale,
	ErrRender,
}

// Outcome is the result of Board.Render.
type Outcome struct {
	State     State
	Rows      int
	UpdatedAt time.Time
	Err       error
}

// OK reports whether the board was rendered.
func (o Outcome) OK() bool {
	return o.State == StateRendered
}

// Kind returns the kind of the failure, or nil if rendered.
func (o Outcome) Kind() error {
	if o.Err == nil {
		return nil
	}
	for _, k := range kinds {
		if errors.Is(o.Err, k) {
			return k
		}
	}
	return ErrRender
}
