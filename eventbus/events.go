package eventbus

import "eventdeck/models"

// EventType represents the type of domain event.
type EventType string

const (
	EventEventsRefreshed       EventType = "EventsRefreshed"
	EventViewStateUpdated      EventType = "ViewStateUpdated"
	EventPreferencesChanged    EventType = "PreferencesChanged"
	EventRegistrationCompleted EventType = "RegistrationCompleted"
	EventNotification          EventType = "Notification"
	EventError                 EventType = "Error"
)

// DomainEvent is the interface for all domain events.
type DomainEvent interface {
	Type() EventType
}

// EventsRefreshedEvent is emitted after a successful catalog fetch.
type EventsRefreshedEvent struct {
	Count int
}

func (e EventsRefreshedEvent) Type() EventType { return EventEventsRefreshed }

// ViewStateUpdatedEvent carries the output of a composition pass. It is
// emitted after every relevant input change: fetch completion, preference
// mutation or filter edit.
type ViewStateUpdatedEvent struct {
	State models.ViewState
}

func (e ViewStateUpdatedEvent) Type() EventType { return EventViewStateUpdated }

// PreferencesChangedEvent is emitted when an identifier set mutates.
type PreferencesChangedEvent struct {
	Set     models.PreferenceSet
	EventID string
	Added   bool
}

func (e PreferencesChangedEvent) Type() EventType { return EventPreferencesChanged }

// RegistrationCompletedEvent signals a successful guest registration; hosts
// clear their transient form state and navigate to a confirmation step.
type RegistrationCompletedEvent struct {
	EventID string
	Record  *models.GuestRecord
}

func (e RegistrationCompletedEvent) Type() EventType { return EventRegistrationCompleted }

// NotificationEvent is a short-lived user-facing message (toast).
type NotificationEvent struct {
	Message string
}

func (e NotificationEvent) Type() EventType { return EventNotification }

// ErrorEvent is emitted for failures that are non-fatal to the session.
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }
