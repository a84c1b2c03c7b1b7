package models

// PreferenceSet names one of the two locally persisted identifier sets.
type PreferenceSet string

const (
	SetApplied    PreferenceSet = "applied"
	SetWishlisted PreferenceSet = "wishlisted"
)

// Preferences is the on-device snapshot of the user's relationship to
// events. It is the single source of truth and is never reconciled against
// a server copy.
type Preferences struct {
	Applied    map[string]bool
	Wishlisted map[string]bool
}

func NewPreferences() Preferences {
	return Preferences{
		Applied:    map[string]bool{},
		Wishlisted: map[string]bool{},
	}
}

func (p Preferences) IsApplied(eventID string) bool {
	return p.Applied[eventID]
}

func (p Preferences) IsWishlisted(eventID string) bool {
	return p.Wishlisted[eventID]
}

// Clone returns a deep copy so callers can hand out snapshots without
// aliasing the live sets.
func (p Preferences) Clone() Preferences {
	clone := NewPreferences()
	for id := range p.Applied {
		clone.Applied[id] = true
	}
	for id := range p.Wishlisted {
		clone.Wishlisted[id] = true
	}

	return clone
}
