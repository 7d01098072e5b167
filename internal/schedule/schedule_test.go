package schedule_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/micahco/dduwash/internal/schedule"
)

func TestParseCron(t *testing.T) {
	tests := []struct {
		Name   string
		Input  string
		Output string
		Error  string
	}{
		{"4values", "1 2 3 4", "1 2 3 4 ?", ""},
		{"5values", "1 2 3 4 5", "1 2 3 4 5", ""},
		{"spaces", "1  2 \t3 4", "1 2 3 4 ?", ""},
		{"3values", "1 2 3", "", "expected 4 to 5 fields, found 3: [1 2 3]"},
		{"@daily", "@daily", "0 0 * * ?", ""},
		{"@hourly", "@hourly", "0 * * * ?", ""},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			s, err := schedule.ParseCron(tt.Input)
			if err != nil && err.Error() != tt.Error {
				t.Fatalf("unexpected error: expected %#v but got %#v", tt.Error, err.Error())
			}
			if err == nil && tt.Error != "" {
				t.Fatalf("expected error %#v but got nil", tt.Error)
			}
			if err != nil && !errors.Is(err, schedule.ErrInvalidSchedule) {
				t.Errorf("error should be ErrInvalidSchedule: %v", err)
			}

			if s.String() != tt.Output {
				t.Errorf("expected %#v but got %#v", tt.Output, s.String())
			}
		})
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		Name   string
		Input  string
		Output string
		Error  bool
	}{
		{"minute", "1m", "1m0s", false},
		{"seconds", "30s", "30s", false},
		{"hour", "1h", "1h0m0s", false},
		{"zero", "0s", "", true},
		{"negative", "-1m", "", true},
		{"invalid", "invalid", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			s, err := schedule.ParseInterval(tt.Input)
			if (err != nil) != tt.Error {
				t.Fatalf("unexpected error: %v", err)
			}
			if err == nil && s.String() != tt.Output {
				t.Errorf("expected %#v but got %#v", tt.Output, s.String())
			}
		})
	}
}

func TestParse(t *testing.T) {
	base := time.Date(2023, 11, 14, 22, 13, 20, 0, time.UTC)
	never := time.UnixMicro(math.MaxInt64)

	tests := []struct {
		Input  string
		String string
		Next   time.Time
		Error  bool
	}{
		{"", "1m0s", base.Add(time.Minute), false},
		{"5m", "5m0s", base.Add(5 * time.Minute), false},
		{" 30s ", "30s", base.Add(30 * time.Second), false},
		{"*/15 * * *", "*/15 * * * ?", time.Date(2023, 11, 14, 22, 15, 0, 0, time.UTC), false},
		{"0 6 * * 1", "0 6 * * 1", time.Date(2023, 11, 20, 6, 0, 0, 0, time.UTC), false},
		{"@once", "@once", never, false},
		{"0s", "", time.Time{}, true},
		{"every minute", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.Input, func(t *testing.T) {
			s, err := schedule.Parse(tt.Input)
			if tt.Error {
				if err == nil {
					t.Fatalf("expected error but got %s", s)
				}
				if !errors.Is(err, schedule.ErrInvalidSchedule) {
					t.Errorf("error should be ErrInvalidSchedule: %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if s.String() != tt.String {
				t.Errorf("expected %#v but got %#v", tt.String, s.String())
			}
			if next := s.Next(base); !next.Equal(tt.Next) {
				t.Errorf("expected next %s but got %s", tt.Next, next)
			}
			if !s.RunOnStart() {
				t.Errorf("every schedule should run on start")
			}
		})
	}
}
