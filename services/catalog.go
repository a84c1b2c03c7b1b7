package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/xdoubleu/essentia/v2/pkg/logging"
	"eventdeck/eventbus"
	"eventdeck/models"
	"eventdeck/repositories"
)

// CatalogService drives one catalog session: it holds the last-known-good
// event collection, the current filters and the preferences snapshot, and
// republishes composed view state after every relevant input change.
// Consumers subscribe to the bus instead of polling individual fields.
type CatalogService struct {
	logger *slog.Logger
	bus    eventbus.EventBus
	events repositories.EventRepository
	store  repositories.PreferenceStore
	now    func() time.Time

	mu         sync.RWMutex
	collection []models.Event
	prefs      models.Preferences
	query      string
	genres     map[string]bool
}

// Refresh fetches the event collection. On failure (or cancellation) the
// previous collection stays displayed and the returned *FetchError carries
// the cause; the caller decides whether to offer a retry.
func (service *CatalogService) Refresh(ctx context.Context) error {
	collection, err := service.events.GetAll(ctx)
	if err != nil {
		service.logger.Error("failed to refresh catalog", logging.ErrAttr(err))
		service.bus.Publish(eventbus.ErrorEvent{
			Message: "failed to refresh catalog",
			Err:     err,
		})

		return err
	}

	service.mu.Lock()
	service.collection = collection
	service.mu.Unlock()

	service.bus.Publish(eventbus.EventsRefreshedEvent{Count: len(collection)})
	service.publishViewState()

	return nil
}

// ViewState composes the current snapshot.
func (service *CatalogService) ViewState() models.ViewState {
	service.mu.RLock()
	defer service.mu.RUnlock()

	return Compose(
		service.collection,
		service.prefs,
		service.query,
		service.genres,
		service.now(),
	)
}

func (service *CatalogService) SetQuery(query string) {
	service.mu.Lock()
	service.query = query
	service.mu.Unlock()

	service.publishViewState()
}

func (service *CatalogService) Query() string {
	service.mu.RLock()
	defer service.mu.RUnlock()

	return service.query
}

func (service *CatalogService) SetGenres(genres []string) {
	selection := map[string]bool{}
	for _, genre := range genres {
		selection[genre] = true
	}

	service.mu.Lock()
	service.genres = selection
	service.mu.Unlock()

	service.publishViewState()
}

func (service *CatalogService) Genres() []string {
	service.mu.RLock()
	defer service.mu.RUnlock()

	genres := make([]string, 0, len(service.genres))
	for genre := range service.genres {
		genres = append(genres, genre)
	}

	return genres
}

// AvailableGenres returns the distinct genres of the current collection in
// first-seen order, for the filter surface.
func (service *CatalogService) AvailableGenres() []string {
	service.mu.RLock()
	defer service.mu.RUnlock()

	seen := map[string]bool{}
	genres := []string{}
	for _, event := range service.collection {
		for _, genre := range event.Genres {
			if seen[genre] {
				continue
			}
			seen[genre] = true
			genres = append(genres, genre)
		}
	}

	return genres
}

// EventByID looks an event up in the current collection.
func (service *CatalogService) EventByID(eventID string) (*models.Event, bool) {
	service.mu.RLock()
	defer service.mu.RUnlock()

	for _, event := range service.collection {
		if event.ID == eventID {
			found := event
			return &found, true
		}
	}

	return nil, false
}

// ToggleWishlist adds the event to the wishlist, announcing the addition
// with a transient notification, or removes it silently when already
// present. Wishlist membership never affects categorization.
func (service *CatalogService) ToggleWishlist(eventID string) error {
	event, ok := service.EventByID(eventID)
	if !ok {
		return fmt.Errorf("unknown event %q", eventID)
	}

	service.mu.RLock()
	wishlisted := service.prefs.IsWishlisted(eventID)
	service.mu.RUnlock()

	if wishlisted {
		service.mutatePreference(models.SetWishlisted, eventID, false)
		return nil
	}

	service.mutatePreference(models.SetWishlisted, eventID, true)
	service.bus.Publish(eventbus.NotificationEvent{
		Message: fmt.Sprintf("'%s' added to wishlist", event.Title),
	})

	return nil
}

// WishlistEvents intersects the full collection with the wishlisted set,
// preserving date order. This is a separate surface, orthogonal to the
// three categories.
func (service *CatalogService) WishlistEvents() []models.Event {
	service.mu.RLock()
	defer service.mu.RUnlock()

	events := []models.Event{}
	for _, event := range service.collection {
		if service.prefs.IsWishlisted(event.ID) {
			events = append(events, event)
		}
	}

	return events
}

// MarkApplied records a successful registration in the applied set. Called
// by the registration service only after the backend insert has completed.
func (service *CatalogService) MarkApplied(eventID string) {
	service.mutatePreference(models.SetApplied, eventID, true)
}

// ResetApplied clears the applied set entirely.
func (service *CatalogService) ResetApplied() error {
	if err := service.store.ResetApplied(); err != nil {
		return err
	}

	service.mu.Lock()
	service.prefs.Applied = map[string]bool{}
	service.mu.Unlock()

	service.publishViewState()

	return nil
}

// mutatePreference applies a set mutation write-through: the store persists
// first, then the in-memory snapshot follows and the view state is
// republished. A store failure is reported but the in-memory snapshot is
// still updated so the session never contradicts a completed user action;
// the next successful mutation re-persists the full sets.
func (service *CatalogService) mutatePreference(
	set models.PreferenceSet,
	eventID string,
	add bool,
) {
	var storeErr error
	if add {
		storeErr = service.store.Add(set, eventID)
	} else {
		storeErr = service.store.Remove(set, eventID)
	}
	if storeErr != nil {
		service.logger.Error("failed to persist preference", logging.ErrAttr(storeErr))
		service.bus.Publish(eventbus.ErrorEvent{
			Message: "failed to persist preference",
			Err:     storeErr,
		})
	}

	service.mu.Lock()
	ids := service.prefs.Applied
	if set == models.SetWishlisted {
		ids = service.prefs.Wishlisted
	}
	if add {
		ids[eventID] = true
	} else {
		delete(ids, eventID)
	}
	service.mu.Unlock()

	service.bus.Publish(eventbus.PreferencesChangedEvent{
		Set:     set,
		EventID: eventID,
		Added:   add,
	})
	service.publishViewState()
}

func (service *CatalogService) publishViewState() {
	service.bus.Publish(eventbus.ViewStateUpdatedEvent{
		State: service.ViewState(),
	})
}
