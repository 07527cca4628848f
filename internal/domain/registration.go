package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending   RegistrationStatus = "pending"
	RegistrationStatusConfirmed RegistrationStatus = "confirmed"
	RegistrationStatusCancelled RegistrationStatus = "cancelled"
)

// ActiveStatuses — статусы, которые занимают места.
var ActiveStatuses = []RegistrationStatus{RegistrationStatusPending, RegistrationStatusConfirmed}

type Contact struct {
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	TelegramChatID *int64 `json:"telegram_chat_id,omitempty"`
}

type Registration struct {
	ID         string             `json:"id"`
	SessionID  string             `json:"session_id"`
	Contact    Contact            `json:"contact"`
	Status     RegistrationStatus `json:"status"`
	GuestCount int                `json:"guest_count"`
	CreatedAt  time.Time          `json:"created_at"`
	UpdatedAt  time.Time          `json:"updated_at"`
}

func (r *Registration) SpotsConsumed() int {
	return 1 + r.GuestCount
}

type GuestEntry struct {
	ID             string    `json:"id"`
	RegistrationID string    `json:"registration_id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
}

type GuestRename struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
