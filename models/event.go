package models

import (
	"math"
	"strings"
	"time"
)

// Event is a single catalog entry as delivered by the backend. The
// collection arrives ordered by Date ascending and that order is preserved
// through every composition pass.
type Event struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          *string    `json:"description"`
	Date                 time.Time  `json:"date"`
	Location             *string    `json:"location"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	Genres               []string   `json:"genres"`
	Capacity             *int       `json:"capacity"`
	Note                 *string    `json:"note"`
	ImageRef             *string    `json:"imageRef"`
}

// MatchesQuery reports whether query is a case-insensitive substring of the
// title, description or location. An empty query matches everything.
func (e Event) MatchesQuery(query string) bool {
	if query == "" {
		return true
	}

	query = strings.ToLower(query)
	if strings.Contains(strings.ToLower(e.Title), query) {
		return true
	}
	if e.Description != nil &&
		strings.Contains(strings.ToLower(*e.Description), query) {
		return true
	}
	if e.Location != nil &&
		strings.Contains(strings.ToLower(*e.Location), query) {
		return true
	}

	return false
}

// MatchesGenres reports whether the event carries at least one of the
// selected genres. An empty selection matches everything; an event without
// genres matches nothing while a selection is active.
func (e Event) MatchesGenres(selected map[string]bool) bool {
	if len(selected) == 0 {
		return true
	}

	for _, genre := range e.Genres {
		if selected[genre] {
			return true
		}
	}

	return false
}

// DaysUntilDeadline returns the calendar-day difference between now and the
// registration deadline, both truncated to dates in now's location. The
// second return value is false when no deadline is set.
func (e Event) DaysUntilDeadline(now time.Time) (int, bool) {
	if e.RegistrationDeadline == nil {
		return 0, false
	}

	deadline := e.RegistrationDeadline.In(now.Location())

	nowDate := time.Date(
		now.Year(), now.Month(), now.Day(),
		0, 0, 0, 0, now.Location(),
	)
	deadlineDate := time.Date(
		deadline.Year(), deadline.Month(), deadline.Day(),
		0, 0, 0, 0, now.Location(),
	)

	//nolint:mnd //hours per day
	days := math.Round(deadlineDate.Sub(nowDate).Hours() / 24)

	return int(days), true
}
