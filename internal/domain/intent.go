package domain

import "time"

type IntentKind string

const (
	IntentKindNewSpot   IntentKind = "new_spot"
	IntentKindAddGuests IntentKind = "add_guests"
)

type IntentStatus string

const (
	IntentStatusPending   IntentStatus = "pending"
	IntentStatusConfirmed IntentStatus = "confirmed"
)

// PendingIntent мест не держит: ToConfirm/ToWaitlist — снимок на момент
// создания, при подтверждении оплаты сплит пересчитывается заново.
type PendingIntent struct {
	ID             string       `json:"id"`
	SessionID      string       `json:"session_id"`
	Kind           IntentKind   `json:"kind"`
	RegistrationID *string      `json:"registration_id,omitempty"`
	Contact        *Contact     `json:"contact,omitempty"`
	Requested      int          `json:"requested"`
	ToConfirm      int          `json:"to_confirm"`
	ToWaitlist     int          `json:"to_waitlist"`
	Status         IntentStatus `json:"status"`
	CreatedAt      time.Time    `json:"created_at"`
	ExpiresAt      time.Time    `json:"expires_at"`
}

type ReserveIntentInput struct {
	SessionID      string
	Kind           IntentKind
	RegistrationID string
	Contact        Contact
	Requested      int
}
