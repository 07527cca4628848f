package domain

import "time"

type WaitlistKind string

const (
	WaitlistKindNewSpot   WaitlistKind = "new_spot"
	WaitlistKindAddGuests WaitlistKind = "add_guests"
)

type WaitlistEntry struct {
	ID             string       `json:"id"`
	SessionID      string       `json:"session_id"`
	Kind           WaitlistKind `json:"kind"`
	RegistrationID *string      `json:"registration_id,omitempty"`
	Requested      int          `json:"requested"`
	Contact        *Contact     `json:"contact,omitempty"`
	CreatedAt      time.Time    `json:"created_at"`
}
