// Package schedule parses the refresh schedule of the server mode.
//
// A schedule is an interval like "1m", a cron spec like "*/5 6-22 * *", or "@once".
package schedule

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/micahco/dduwash/internal/bayerr"
	"github.com/robfig/cron/v3"
)

var (
	// DefaultSchedule is the schedule used when the spec is empty.
	DefaultSchedule = Schedule(IntervalSchedule{time.Minute})

	// ErrInvalidSchedule is the kind of errors from Parse.
	ErrInvalidSchedule = errors.New("invalid schedule")
)

// never is far enough in the future for cron to never wake up.
var never = time.UnixMicro(math.MaxInt64)

type Schedule interface {
	cron.Schedule
	fmt.Stringer

	// RunOnStart reports whether the job should run right after the scheduler starts,
	// without waiting for the first Next.
	RunOnStart() bool
}

// Parse parses an interval, a cron spec, or "@once".
func Parse(spec string) (Schedule, error) {
	spec = strings.TrimSpace(spec)

	switch spec {
	case "":
		return DefaultSchedule, nil
	case "@once":
		return OnceSchedule{}, nil
	}

	if _, err := time.ParseDuration(spec); err == nil {
		return ParseInterval(spec)
	}

	return ParseCron(spec)
}

// IntervalSchedule runs a job on start and then every Interval.
type IntervalSchedule struct {
	Interval time.Duration
}

func ParseInterval(spec string) (IntervalSchedule, error) {
	d, err := time.ParseDuration(strings.TrimSpace(spec))
	if err != nil {
		return IntervalSchedule{}, bayerr.New(ErrInvalidSchedule, err, "")
	}
	if d <= 0 {
		return IntervalSchedule{}, bayerr.New(ErrInvalidSchedule, nil, "interval must be positive: %s", spec)
	}
	return IntervalSchedule{d}, nil
}

func (s IntervalSchedule) Next(t time.Time) time.Time {
	return t.Add(s.Interval)
}

func (s IntervalSchedule) String() string {
	return s.Interval.String()
}

func (s IntervalSchedule) RunOnStart() bool {
	return true
}

// CronSchedule runs a job at the times of a cron spec.
// The day-of-week field is optional.
type CronSchedule struct {
	spec     string
	schedule cron.Schedule
}

var fieldDelimiter = regexp.MustCompile("[ \t]+")

func ParseCron(spec string) (CronSchedule, error) {
	switch spec {
	case "@daily":
		spec = "0 0 * * ?"
	case "@hourly":
		spec = "0 * * * ?"
	default:
		ss := fieldDelimiter.Split(strings.TrimSpace(spec), -1)
		if len(ss) == 4 {
			ss = append(ss, "?")
		}
		spec = strings.Join(ss, " ")
	}

	s, err := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional).Parse(spec)
	if err != nil {
		return CronSchedule{}, bayerr.New(ErrInvalidSchedule, err, "")
	}

	return CronSchedule{
		spec:     spec,
		schedule: s,
	}, nil
}

func (s CronSchedule) Next(t time.Time) time.Time {
	return s.schedule.Next(t)
}

func (s CronSchedule) String() string {
	return s.spec
}

// RunOnStart of CronSchedule is true so the page has data before the first tick.
func (s CronSchedule) RunOnStart() bool {
	return true
}

// OnceSchedule runs a job only on start.
type OnceSchedule struct{}

func (s OnceSchedule) Next(t time.Time) time.Time {
	return never
}

func (s OnceSchedule) String() string {
	return "@once"
}

func (s OnceSchedule) RunOnStart() bool {
	return true
}
