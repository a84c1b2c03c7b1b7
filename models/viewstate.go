package models

// ViewCategory labels the bucket an event lands in during a composition
// pass. The three categories are mutually exclusive and exhaustive over the
// filtered event set.
type ViewCategory string

const (
	CategoryApplied     ViewCategory = "applied"
	CategoryClosingSoon ViewCategory = "closingSoon"
	CategoryOther       ViewCategory = "other"
)

// ViewState is the render-ready output of one composition pass. Each slice
// keeps the date-ascending order of the source collection.
type ViewState struct {
	Applied     []Event
	ClosingSoon []Event
	Other       []Event
}

// Total returns the number of events across all categories.
func (s ViewState) Total() int {
	return len(s.Applied) + len(s.ClosingSoon) + len(s.Other)
}
