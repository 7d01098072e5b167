package bay

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"github.com/micahco/dduwash/internal/bayerr"
)

// BayID is the identifier of a bay.
// The API sends it as either a string or a number; both are kept as text.
// A number is written in its shortest decimal form, so 1e2 becomes "100".
type BayID string

// UnmarshalJSON decodes a JSON string or number.
func (id *BayID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		return fmt.Errorf("bay_id is required")
	case data[0] == '"':
		s, err := strconv.Unquote(string(data))
		if err != nil {
			return err
		}
		*id = BayID(s)
	default:
		f, err := strconv.ParseFloat(string(data), 64)
		if err != nil {
			return fmt.Errorf("invalid bay_id: %s", data)
		}
		*id = BayID(strconv.FormatFloat(f, 'f', -1, 64))
	}

	return nil
}

// Result is the latest status of a bay.
type Result struct {
	BayID     BayID  `json:"bay_id"`
	Status    Status `json:"status"`
	Timestamp int64  `json:"timestamp"`
}

// rawResult is a Result before checking that every key is present.
type rawResult struct {
	BayID     *BayID  `json:"bay_id"`
	Status    *Status `json:"status"`
	Timestamp *int64  `json:"timestamp"`
}

func (r rawResult) result() (Result, error) {
	switch {
	case r.BayID == nil:
		return Result{}, bayerr.New(ErrInvalidResponse, nil, "bay_id is missing")
	case r.Status == nil:
		return Result{}, bayerr.New(ErrUnknownStatus, nil, "status of bay %s is missing", *r.BayID)
	case r.Timestamp == nil:
		return Result{}, bayerr.New(ErrInvalidResponse, nil, "timestamp of bay %s is missing", *r.BayID)
	}

	return Result{
		BayID:     *r.BayID,
		Status:    *r.Status,
		Timestamp: *r.Timestamp,
	}, nil
}

// UnmarshalJSON decodes a result, and reports an error if bay_id, status or timestamp is missing.
func (r *Result) UnmarshalJSON(data []byte) error {
	var raw rawResult
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	res, err := raw.result()
	if err != nil {
		return err
	}
	*r = res
	return nil
}

// decodeResults decodes a list of results.
// A missing key is reported with its own kind, ErrUnknownStatus for status and ErrInvalidResponse for the others.
func decodeResults(raw []byte) ([]Result, error) {
	var rs []rawResult
	if err := json.Unmarshal(raw, &rs); err != nil {
		return nil, bayerr.New(ErrInvalidResponse, err, "failed to parse response")
	}
	if rs == nil {
		return nil, nil
	}

	results := make([]Result, len(rs))
	for i, r := range rs {
		var err error
		if results[i], err = r.result(); err != nil {
			return nil, err
		}
	}
	return results, nil
}

// UpdatedAt returns Timestamp as a time.Time.
func (r Result) UpdatedAt() time.Time {
	return time.Unix(r.Timestamp, 0)
}
