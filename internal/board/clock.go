package board

import (
	"time"
	_ "time/tzdata"
)

const (
	// ISOLayout is the layout of the datetime attribute, in UTC with milliseconds.
	ISOLayout = "2006-01-02T15:04:05.000Z"

	// ClockLayout is the layout of the visible last updated time.
	ClockLayout = "3:04 PM"
)

// Pacific is the time zone of the visible last updated time.
var Pacific = mustLoadLocation("America/Los_Angeles")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// FormatTimestamp formats t as the machine readable ISO-8601 string,
// and the 12-hour wall clock string in loc.
func FormatTimestamp(t time.Time, loc *time.Location) (iso, clock string) {
	return t.UTC().Format(ISOLayout), t.In(loc).Format(ClockLayout)
}
