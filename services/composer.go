package services

import (
	"time"

	"eventdeck/models"
)

// closingSoonWindowDays is the number of calendar days ahead within which a
// registration deadline counts as closing soon.
const closingSoonWindowDays = 7

// Compose runs one composition pass: filter the collection by query and
// genre selection, then assign every surviving event to exactly one
// category. First match wins, so an applied event stays Applied whatever
// its deadline says. Pure and infallible; the source order (date ascending)
// is preserved within each category.
func Compose(
	events []models.Event,
	prefs models.Preferences,
	query string,
	genres map[string]bool,
	now time.Time,
) models.ViewState {
	state := models.ViewState{
		Applied:     []models.Event{},
		ClosingSoon: []models.Event{},
		Other:       []models.Event{},
	}

	for _, event := range events {
		if !event.MatchesQuery(query) {
			continue
		}
		if !event.MatchesGenres(genres) {
			continue
		}

		switch {
		case prefs.IsApplied(event.ID):
			state.Applied = append(state.Applied, event)
		case isClosingSoon(event, now):
			state.ClosingSoon = append(state.ClosingSoon, event)
		default:
			state.Other = append(state.Other, event)
		}
	}

	return state
}

// isClosingSoon reports whether the deadline falls within the window. A
// past deadline (negative day count) never counts.
func isClosingSoon(event models.Event, now time.Time) bool {
	days, ok := event.DaysUntilDeadline(now)
	if !ok {
		return false
	}

	return days >= 0 && days <= closingSoonWindowDays
}
