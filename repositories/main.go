package repositories

import (
	"github.com/xdoubleu/essentia/v2/pkg/database/postgres"
	"eventdeck/pkg/catalogapi"
)

type Repositories struct {
	Events      EventRepository
	Guests      GuestRepository
	Preferences PreferenceStore
}

// New wires the direct-Postgres adapters.
func New(db postgres.DB, prefs PreferenceStore) *Repositories {
	return &Repositories{
		Events:      &PostgresEventRepository{db: db},
		Guests:      &PostgresGuestRepository{db: db},
		Preferences: prefs,
	}
}

// NewAPI wires the HTTP API adapters.
func NewAPI(client catalogapi.Client, prefs PreferenceStore) *Repositories {
	return &Repositories{
		Events:      &APIEventRepository{client: client},
		Guests:      &APIGuestRepository{client: client},
		Preferences: prefs,
	}
}
