package bay_test

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/micahco/dduwash/lib-bay"
)

func TestResult_decode(t *testing.T) {
	input := `[
		{"bay_id": "Washbay 1", "status": 0, "timestamp": 1700000000},
		{"bay_id": 2, "status": 1, "timestamp": 1700000000},
		{"bay_id": "Washbay 3", "status": 2, "timestamp": 1700000060},
		{"bay_id": 1e2, "status": 0, "timestamp": 1700000000},
		{"bay_id": 2.50, "status": 0, "timestamp": 1700000000}
	]`

	var rs []bay.Result
	if err := json.Unmarshal([]byte(input), &rs); err != nil {
		t.Fatalf("failed to decode: %s", err)
	}

	expect := []bay.Result{
		{BayID: "Washbay 1", Status: bay.StatusEmpty, Timestamp: 1700000000},
		{BayID: "2", Status: bay.StatusOccupied, Timestamp: 1700000000},
		{BayID: "Washbay 3", Status: bay.StatusMaintenance, Timestamp: 1700000060},
		{BayID: "100", Status: bay.StatusEmpty, Timestamp: 1700000000},
		{BayID: "2.5", Status: bay.StatusEmpty, Timestamp: 1700000000},
	}

	if diff := cmp.Diff(expect, rs); diff != "" {
		t.Errorf("unexpected results (-want +got):\n%s", diff)
	}
}

func TestBayID_UnmarshalJSON_invalid(t *testing.T) {
	for _, input := range []string{`null`, `true`, `{}`} {
		t.Run(input, func(t *testing.T) {
			var id bay.BayID
			if err := json.Unmarshal([]byte(input), &id); err == nil {
				t.Errorf("expected error but got %q", id)
			}
		})
	}
}

func TestResult_UnmarshalJSON_missing(t *testing.T) {
	tests := []string{
		`{"status": 0, "timestamp": 1700000000}`,
		`{"bay_id": "Washbay 1", "timestamp": 1700000000}`,
		`{"bay_id": "Washbay 1", "status": null, "timestamp": 1700000000}`,
		`{"bay_id": "Washbay 1", "status": 0}`,
		`{}`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			var r bay.Result
			if err := json.Unmarshal([]byte(input), &r); err == nil {
				t.Errorf("expected error but got %+v", r)
			}
		})
	}
}

func TestResult_UpdatedAt(t *testing.T) {
	r := bay.Result{Timestamp: 1700000000}

	expect := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	if !r.UpdatedAt().Equal(expect) {
		t.Errorf("expected %s but got %s", expect, r.UpdatedAt())
	}
}
