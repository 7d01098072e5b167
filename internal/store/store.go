// Package store keeps the latest status list for the server mode.
//
// The Store is refreshed by the scheduler and read by every page render,
// so a request to the page never waits for the upstream API.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/micahco/dduwash/internal/bayerr"
	"github.com/micahco/dduwash/internal/journal"
	"github.com/micahco/dduwash/lib-bay"
	"github.com/robfig/cron/v3"
)

// CurrentTime returns current time.
// This variable is for testing purpose.
var CurrentTime = time.Now

// DefaultMaxAge is the age of the status list that is treated as outdated.
const DefaultMaxAge = 12 * time.Hour

// maxErrors is the number of failure messages kept for Errors.
const maxErrors = 10

// Store is a snapshot of the status list.
// Store implements bay.Fetcher, so it can be the source of board.Board.
type Store struct {
	Source bay.Fetcher

	// MaxAge is the maximum age of the newest result. Zero disables the check.
	MaxAge time.Duration

	Logger journal.Logger

	mu        sync.RWMutex
	results   []bay.Result
	fetchedAt time.Time
	lastErr   error
	errors    []string
}

// New makes a Store that is not refreshed yet.
func New(source bay.Fetcher, maxAge time.Duration, logger journal.Logger) *Store {
	return &Store{
		Source: source,
		MaxAge: maxAge,
		Logger: logger,
	}
}

// Refresh fetches the status list from the Source.
// The previous list is kept if it fails.
func (s *Store) Refresh(ctx context.Context) error {
	l := s.Logger.WithTarget("store:refresh").StartTimer()

	results, err := s.Source.Fetch(ctx)

	s.mu.Lock()
	if err != nil {
		s.lastErr = err
		s.addError(err.Error())
	} else {
		s.results = results
		s.fetchedAt = CurrentTime()
		s.lastErr = nil
		if err = s.checkAge(results); err != nil {
			s.addError(err.Error())
		}
	}
	s.mu.Unlock()

	if err != nil {
		l.Failure(err.Error(), map[string]interface{}{
			"bays": len(results),
		})
		return err
	}

	updated := Newest(results)
	l.Healthy(
		fmt.Sprintf("fetched %d bays updated %s", len(results), humanize.RelTime(updated, CurrentTime(), "ago", "from now")),
		map[string]interface{}{
			"bays":       len(results),
			"updated_at": updated.UTC().Format(time.RFC3339),
		},
	)
	return nil
}

// Job makes a cron.Job that refreshes the Store until ctx is done.
func (s *Store) Job(ctx context.Context) cron.Job {
	return cron.FuncJob(func() {
		if ctx.Err() != nil {
			return
		}
		s.Refresh(ctx)
	})
}

// Newest returns the newest update time in the results.
func Newest(results []bay.Result) time.Time {
	var t time.Time
	for _, r := range results {
		if u := r.UpdatedAt(); u.After(t) {
			t = u
		}
	}
	return t
}

func (s *Store) checkAge(results []bay.Result) error {
	if s.MaxAge <= 0 {
		return nil
	}

	newest := Newest(results)
	if age := CurrentTime().Sub(newest); age > s.MaxAge {
		return bayerr.New(bay.ErrStale, nil, "Bay status information is outdated: last updated %s", humanize.RelTime(newest, CurrentTime(), "ago", "from now"))
	}
	return nil
}

// Fetch returns a copy of the latest status list.
//
// It fails with the error of the last refresh if no list was ever fetched,
// and with bay.ErrStale if the list is older than MaxAge.
func (s *Store) Fetch(ctx context.Context) ([]bay.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.results == nil {
		if s.lastErr != nil {
			return nil, s.lastErr
		}
		return nil, bayerr.New(bay.ErrCommunicate, nil, "status is not fetched yet")
	}

	if err := s.checkAge(s.results); err != nil {
		return nil, err
	}

	return slices.Clone(s.results), nil
}

// FetchedAt returns when the latest list was fetched, or the zero time.
func (s *Store) FetchedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.fetchedAt
}

// addError records a failure message. s.mu must be locked.
func (s *Store) addError(message string) {
	s.errors = append(
		s.errors,
		fmt.Sprintf("%s\t%s", CurrentTime().UTC().Format(time.RFC3339), message),
	)

	if len(s.errors) > maxErrors {
		s.errors = s.errors[len(s.errors)-maxErrors:]
	}
}

// Errors returns the health of the Store and the recent failure messages.
//
// The Store is healthy if the last refresh succeeded and the list is not outdated.
func (s *Store) Errors() (healthy bool, messages []string) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	healthy = s.lastErr == nil && s.results != nil && s.checkAge(s.results) == nil
	return healthy, slices.Clone(s.errors)
}
