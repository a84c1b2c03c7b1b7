package models

import (
	"time"

	"github.com/google/uuid"
)

// GuestRecord is a stored guest registration. ID and CreatedAt are generated
// by the backend on insert.
type GuestRecord struct {
	ID                uuid.UUID `json:"id"`
	EventID           string    `json:"eventId"`
	FullName          string    `json:"fullName"`
	Role              string    `json:"role"`
	Company           string    `json:"company"`
	Email             string    `json:"email"`
	AdditionalRequest *string   `json:"additionalRequest"`
	CreatedAt         time.Time `json:"createdAt"`
}
