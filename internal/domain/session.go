package domain

import "time"

type Session struct {
	ID                 string        `json:"id"`
	Title              string        `json:"title"`
	Description        string        `json:"description"`
	StartsAt           time.Time     `json:"starts_at"`
	MaxCapacity        int           `json:"max_capacity"`
	ConfirmedAttendees int           `json:"confirmed_attendees"`
	RequiresPayment    bool          `json:"requires_payment"`
	PaymentTTL         time.Duration `json:"payment_ttl"`
	CreatedAt          time.Time     `json:"created_at"`
	UpdatedAt          time.Time     `json:"updated_at"`
}

func (s *Session) AvailableSpots() int {
	if s.ConfirmedAttendees >= s.MaxCapacity {
		return 0
	}
	return s.MaxCapacity - s.ConfirmedAttendees
}

type SessionDetails struct {
	Session         Session        `json:"session"`
	AvailableSpots  int            `json:"available_spots"`
	WaitlistedUnits int            `json:"waitlisted_units"`
	Registrations   []Registration `json:"registrations"`
}

type CreateSessionInput struct {
	Title           string
	Description     string
	StartsAt        time.Time
	MaxCapacity     int
	PaymentTTL      time.Duration
	RequiresPayment *bool
}
