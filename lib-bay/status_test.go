package bay_test

import (
	"errors"
	"testing"

	"github.com/goccy/go-json"
	"github.com/micahco/dduwash/lib-bay"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		Input  string
		Expect bay.Status
		Error  bool
	}{
		{"EMPTY", bay.StatusEmpty, false},
		{"Empty", bay.StatusEmpty, false},
		{"occupied", bay.StatusOccupied, false},
		{"Maintenance", bay.StatusMaintenance, false},
		{"Down", bay.StatusMaintenance, false},
		{" down ", bay.StatusMaintenance, false},
		{"broken", bay.StatusUnknown, true},
		{"", bay.StatusUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.Input, func(t *testing.T) {
			s, err := bay.ParseStatus(tt.Input)
			if s != tt.Expect {
				t.Errorf("expected %s but got %s", tt.Expect, s)
			}
			if tt.Error && !errors.Is(err, bay.ErrUnknownStatus) {
				t.Errorf("expected ErrUnknownStatus but got %v", err)
			}
			if !tt.Error && err != nil {
				t.Errorf("unexpected error: %s", err)
			}
		})
	}
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range bay.Statuses {
		if !s.Valid() {
			t.Errorf("%s should be valid", s)
		}
	}

	for _, s := range []bay.Status{bay.StatusUnknown, 3, 42} {
		if s.Valid() {
			t.Errorf("%s should be invalid", s)
		}
	}
}

func TestStatus_String(t *testing.T) {
	tests := []struct {
		Status bay.Status
		Expect string
	}{
		{bay.StatusEmpty, "EMPTY"},
		{bay.StatusOccupied, "OCCUPIED"},
		{bay.StatusMaintenance, "MAINTENANCE"},
		{bay.Status(7), "UNKNOWN(7)"},
		{bay.StatusUnknown, "UNKNOWN(-1)"},
	}

	for _, tt := range tests {
		if s := tt.Status.String(); s != tt.Expect {
			t.Errorf("expected %q but got %q", tt.Expect, s)
		}
	}
}

func TestStatus_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		Input  string
		Expect bay.Status
		Error  bool
	}{
		{`0`, bay.StatusEmpty, false},
		{`1`, bay.StatusOccupied, false},
		{`2`, bay.StatusMaintenance, false},
		{`5`, bay.Status(5), false},
		{`"Occupied"`, bay.StatusOccupied, false},
		{`"Down"`, bay.StatusMaintenance, false},
		{`"what"`, bay.StatusUnknown, true},
		{`1.5`, bay.StatusEmpty, true},
		{`true`, bay.StatusEmpty, true},
	}

	for _, tt := range tests {
		t.Run(tt.Input, func(t *testing.T) {
			var s bay.Status
			err := json.Unmarshal([]byte(tt.Input), &s)
			if tt.Error {
				if err == nil {
					t.Errorf("expected error but got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}
			if s != tt.Expect {
				t.Errorf("expected %s but got %s", tt.Expect, s)
			}
		})
	}
}

func TestStatus_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]bay.Status{bay.StatusEmpty, bay.StatusOccupied, bay.StatusMaintenance})
	if err != nil {
		t.Fatalf("failed to marshal: %s", err)
	}
	if string(b) != "[0,1,2]" {
		t.Errorf("unexpected output: %s", b)
	}
}
