package journal

const (
	// StatusUnknown means the outcome could not be decided.
	StatusUnknown Status = iota

	// StatusHealthy means the operation succeeded.
	StatusHealthy

	// StatusFailure means the operation failed.
	StatusFailure

	// StatusAborted means the operation was stopped before it finished, such as by shutdown.
	StatusAborted
)

// Status is the outcome of a journaled operation.
type Status int8

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "HEALTHY"
	case StatusFailure:
		return "FAILURE"
	case StatusAborted:
		return "ABORTED"
	default:
		return "UNKNOWN"
	}
}

// MarshalText encodes the status as its name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
