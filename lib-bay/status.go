package bay

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	// StatusUnknown is used for a status text that could not be parsed.
	StatusUnknown Status = -1

	// StatusEmpty means the bay is free to use.
	StatusEmpty Status = 0

	// StatusOccupied means a vehicle is in the bay.
	StatusOccupied Status = 1

	// StatusMaintenance means the bay is out of service.
	StatusMaintenance Status = 2
)

// Statuses is the list of the known statuses, in order of the status code.
var Statuses = []Status{StatusEmpty, StatusOccupied, StatusMaintenance}

// Status is the status code of a bay.
//
// Out of range codes are kept as-is when decoding, so the renderer can reject them.
type Status int

// ParseStatus parses the status name.
// It accepts the names of String, and the labels that the database API uses.
//
// If passed unsupported name, it returns StatusUnknown and an error.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToUpper(strings.TrimSpace(raw)) {
	case "EMPTY":
		return StatusEmpty, nil
	case "OCCUPIED":
		return StatusOccupied, nil
	case "MAINTENANCE", "DOWN":
		return StatusMaintenance, nil
	default:
		return StatusUnknown, fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
}

// Valid reports whether the status is one of Statuses.
func (s Status) Valid() bool {
	return StatusEmpty <= s && s <= StatusMaintenance
}

// String returns the name of the status.
func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "EMPTY"
	case StatusOccupied:
		return "OCCUPIED"
	case StatusMaintenance:
		return "MAINTENANCE"
	default:
		return fmt.Sprintf("UNKNOWN(%d)", int(s))
	}
}

// MarshalJSON encodes the status as the numeric code.
func (s Status) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Itoa(int(s))), nil
}

// UnmarshalJSON decodes the numeric code, or a status name as a string.
func (s *Status) UnmarshalJSON(data []byte) error {
	raw := string(data)

	if strings.HasPrefix(raw, `"`) {
		name, err := strconv.Unquote(raw)
		if err != nil {
			return err
		}
		*s, err = ParseStatus(name)
		return err
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("invalid status code: %s", raw)
	}
	*s = Status(n)
	return nil
}
