package repositories

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"eventdeck/models"
)

const preferencesFileName = "preferences.json"

// PreferenceStore is the durable home of the applied and wishlisted
// identifier sets. Every mutation is written through before the call
// returns, so a process restart never loses a just-made change. Mutations
// are idempotent: re-adding a present id or removing an absent one is a
// no-op that still persists.
type PreferenceStore interface {
	Load() (models.Preferences, error)
	Add(set models.PreferenceSet, eventID string) error
	Remove(set models.PreferenceSet, eventID string) error
	ResetApplied() error
	ResetWishlist() error
}

// storedPreferences is the on-disk shape: two named unordered string lists.
type storedPreferences struct {
	AppliedEventIDs  []string `json:"appliedEventIDs"`
	WishlistEventIDs []string `json:"wishlistEventIDs"`
}

// FilePreferenceStore persists preferences as a JSON file, by default under
// the user config directory.
type FilePreferenceStore struct {
	mu     sync.Mutex
	path   string
	prefs  models.Preferences
	loaded bool
}

// NewFilePreferenceStore creates a store rooted at dir; an empty dir falls
// back to os.UserConfigDir()/eventdeck.
func NewFilePreferenceStore(dir string) (*FilePreferenceStore, error) {
	if dir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			homeDir, homeErr := os.UserHomeDir()
			if homeErr != nil {
				homeDir = "."
			}
			configDir = filepath.Join(homeDir, ".config")
		}
		dir = filepath.Join(configDir, "eventdeck")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create preferences directory: %w", err)
	}

	//nolint:exhaustruct //prefs is populated on first load
	return &FilePreferenceStore{
		path: filepath.Join(dir, preferencesFileName),
	}, nil
}

// Load reads the persisted sets. Absence of stored data yields empty sets,
// never an error.
func (store *FilePreferenceStore) Load() (models.Preferences, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.ensureLoaded(); err != nil {
		return models.Preferences{}, err
	}

	return store.prefs.Clone(), nil
}

func (store *FilePreferenceStore) Add(
	set models.PreferenceSet,
	eventID string,
) error {
	return store.mutate(set, eventID, true)
}

func (store *FilePreferenceStore) Remove(
	set models.PreferenceSet,
	eventID string,
) error {
	return store.mutate(set, eventID, false)
}

func (store *FilePreferenceStore) ResetApplied() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.ensureLoaded(); err != nil {
		return err
	}

	store.prefs.Applied = map[string]bool{}

	return store.save()
}

func (store *FilePreferenceStore) ResetWishlist() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.ensureLoaded(); err != nil {
		return err
	}

	store.prefs.Wishlisted = map[string]bool{}

	return store.save()
}

func (store *FilePreferenceStore) mutate(
	set models.PreferenceSet,
	eventID string,
	add bool,
) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := store.ensureLoaded(); err != nil {
		return err
	}

	ids, err := store.set(set)
	if err != nil {
		return err
	}

	if add {
		ids[eventID] = true
	} else {
		delete(ids, eventID)
	}

	return store.save()
}

func (store *FilePreferenceStore) set(
	set models.PreferenceSet,
) (map[string]bool, error) {
	switch set {
	case models.SetApplied:
		return store.prefs.Applied, nil
	case models.SetWishlisted:
		return store.prefs.Wishlisted, nil
	default:
		return nil, fmt.Errorf("unknown preference set %q", set)
	}
}

func (store *FilePreferenceStore) ensureLoaded() error {
	if store.loaded {
		return nil
	}

	store.prefs = models.NewPreferences()

	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			store.loaded = true
			return nil
		}
		return fmt.Errorf("failed to read preferences file: %w", err)
	}

	var stored storedPreferences
	if err = json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("failed to parse preferences file: %w", err)
	}

	for _, id := range stored.AppliedEventIDs {
		store.prefs.Applied[id] = true
	}
	for _, id := range stored.WishlistEventIDs {
		store.prefs.Wishlisted[id] = true
	}

	store.loaded = true

	return nil
}

// save writes to a temp file first and renames it over the real one, so a
// crash mid-write never corrupts the stored sets.
func (store *FilePreferenceStore) save() error {
	stored := storedPreferences{
		AppliedEventIDs:  make([]string, 0, len(store.prefs.Applied)),
		WishlistEventIDs: make([]string, 0, len(store.prefs.Wishlisted)),
	}
	for id := range store.prefs.Applied {
		stored.AppliedEventIDs = append(stored.AppliedEventIDs, id)
	}
	for id := range store.prefs.Wishlisted {
		stored.WishlistEventIDs = append(stored.WishlistEventIDs, id)
	}

	data, err := json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal preferences: %w", err)
	}

	tmpPath := store.path + ".tmp"
	if err = os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write preferences file: %w", err)
	}

	return os.Rename(tmpPath, store.path)
}

// InMemoryPreferenceStore keeps the sets in memory only. Used in tests and
// ephemeral sessions.
type InMemoryPreferenceStore struct {
	mu    sync.Mutex
	prefs models.Preferences
}

func NewInMemoryPreferenceStore() *InMemoryPreferenceStore {
	//nolint:exhaustruct //mutex needs no init
	return &InMemoryPreferenceStore{
		prefs: models.NewPreferences(),
	}
}

func (store *InMemoryPreferenceStore) Load() (models.Preferences, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	return store.prefs.Clone(), nil
}

func (store *InMemoryPreferenceStore) Add(
	set models.PreferenceSet,
	eventID string,
) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	switch set {
	case models.SetApplied:
		store.prefs.Applied[eventID] = true
	case models.SetWishlisted:
		store.prefs.Wishlisted[eventID] = true
	default:
		return fmt.Errorf("unknown preference set %q", set)
	}

	return nil
}

func (store *InMemoryPreferenceStore) Remove(
	set models.PreferenceSet,
	eventID string,
) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	switch set {
	case models.SetApplied:
		delete(store.prefs.Applied, eventID)
	case models.SetWishlisted:
		delete(store.prefs.Wishlisted, eventID)
	default:
		return fmt.Errorf("unknown preference set %q", set)
	}

	return nil
}

func (store *InMemoryPreferenceStore) ResetApplied() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.prefs.Applied = map[string]bool{}

	return nil
}

func (store *InMemoryPreferenceStore) ResetWishlist() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	store.prefs.Wishlisted = map[string]bool{}

	return nil
}
