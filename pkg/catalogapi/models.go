package catalogapi

import "time"

// Event is the wire representation of a catalog entry. The deadline is kept
// raw so that a malformed value degrades to "no deadline" instead of
// failing the whole fetch.
type Event struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Description          *string   `json:"description"`
	Date                 time.Time `json:"date"`
	Location             *string   `json:"location"`
	RegistrationDeadline string    `json:"registrationDeadline"`
	Genres               []string  `json:"genres"`
	Capacity             *int      `json:"capacity"`
	Note                 *string   `json:"note"`
	ImageRef             *string   `json:"imageRef"`
}

var deadlineLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// Deadline parses the raw registration deadline, returning nil when absent
// or unparseable.
func (e Event) Deadline() *time.Time {
	if e.RegistrationDeadline == "" {
		return nil
	}

	for _, layout := range deadlineLayouts {
		if t, err := time.Parse(layout, e.RegistrationDeadline); err == nil {
			return &t
		}
	}

	return nil
}

type GuestRequest struct {
	EventID           string  `json:"eventId"`
	FullName          string  `json:"fullName"`
	Role              string  `json:"role"`
	Company           string  `json:"company"`
	Email             string  `json:"email"`
	AdditionalRequest *string `json:"additionalRequest"`
}

type GuestRecord struct {
	ID                string    `json:"id"`
	EventID           string    `json:"eventId"`
	FullName          string    `json:"fullName"`
	Role              string    `json:"role"`
	Company           string    `json:"company"`
	Email             string    `json:"email"`
	AdditionalRequest *string   `json:"additionalRequest"`
	CreatedAt         time.Time `json:"createdAt"`
}
