package services

import (
	"log/slog"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"eventdeck/eventbus"
	"eventdeck/models"
	"eventdeck/repositories"
)

type Services struct {
	Catalog      *CatalogService
	Registration *RegistrationService
}

func New(
	logger *slog.Logger,
	bus eventbus.EventBus,
	repos *repositories.Repositories,
) *Services {
	return NewInner(logger, bus, repos, time.Now)
}

// NewInner takes an explicit clock so deadline categorization is
// deterministic in tests.
func NewInner(
	logger *slog.Logger,
	bus eventbus.EventBus,
	repos *repositories.Repositories,
	now func() time.Time,
) *Services {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	prefs, err := repos.Preferences.Load()
	if err != nil {
		// Fail soft: a broken preferences file degrades to empty sets
		// instead of blocking the session.
		logger.Error("failed to load preferences", logging.ErrAttr(err))
		prefs = models.NewPreferences()
	}

	//nolint:exhaustruct //collection and filters start empty
	catalog := &CatalogService{
		logger: logger,
		bus:    bus,
		events: repos.Events,
		store:  repos.Preferences,
		now:    now,
		prefs:  prefs,
		genres: map[string]bool{},
	}

	registration := &RegistrationService{
		logger:  logger,
		bus:     bus,
		guests:  repos.Guests,
		catalog: catalog,
	}

	return &Services{
		Catalog:      catalog,
		Registration: registration,
	}
}
