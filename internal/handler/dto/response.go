package dto

import (
	"time"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
)

type SessionResponse struct {
	ID                 string `json:"id"`
	Title              string `json:"title"`
	Description        string `json:"description"`
	StartsAt           string `json:"starts_at"`
	MaxCapacity        int    `json:"max_capacity"`
	ConfirmedAttendees int    `json:"confirmed_attendees"`
	AvailableSpots     int    `json:"available_spots"`
	RequiresPayment    bool   `json:"requires_payment"`
	PaymentTTL         string `json:"payment_ttl"`
	CreatedAt          string `json:"created_at"`
}

type SessionDetailsResponse struct {
	Session         SessionResponse        `json:"session"`
	AvailableSpots  int                    `json:"available_spots"`
	WaitlistedUnits int                    `json:"waitlisted_units"`
	Registrations   []RegistrationResponse `json:"registrations"`
}

type RegistrationResponse struct {
	ID         string `json:"id"`
	SessionID  string `json:"session_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	GuestCount int    `json:"guest_count"`
	CreatedAt  string `json:"created_at"`
}

type WaitlistEntryResponse struct {
	ID        string `json:"id"`
	SessionID string `json:"session_id"`
	Kind      string `json:"kind"`
	Requested int    `json:"requested"`
	CreatedAt string `json:"created_at"`
}

type IntentResponse struct {
	ID         string `json:"id"`
	SessionID  string `json:"session_id"`
	Kind       string `json:"kind"`
	Requested  int    `json:"requested"`
	ToConfirm  int    `json:"to_confirm"`
	ToWaitlist int    `json:"to_waitlist"`
	ExpiresAt  string `json:"expires_at"`
}

type CancelResponse struct {
	Freed    int `json:"freed"`
	Promoted int `json:"promoted"`
}

type RemoveGuestsResponse struct {
	Removed  int `json:"removed"`
	Promoted int `json:"promoted"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToSessionResponse(s *domain.Session) SessionResponse {
	return SessionResponse{
		ID:                 s.ID,
		Title:              s.Title,
		Description:        s.Description,
		StartsAt:           s.StartsAt.Format(time.RFC3339),
		MaxCapacity:        s.MaxCapacity,
		ConfirmedAttendees: s.ConfirmedAttendees,
		AvailableSpots:     s.AvailableSpots(),
		RequiresPayment:    s.RequiresPayment,
		PaymentTTL:         s.PaymentTTL.String(),
		CreatedAt:          s.CreatedAt.Format(time.RFC3339),
	}
}

func ToSessionDetailsResponse(d *domain.SessionDetails) SessionDetailsResponse {
	registrations := make([]RegistrationResponse, 0, len(d.Registrations))
	for i := range d.Registrations {
		registrations = append(registrations, ToRegistrationResponse(&d.Registrations[i]))
	}

	return SessionDetailsResponse{
		Session:         ToSessionResponse(&d.Session),
		AvailableSpots:  d.AvailableSpots,
		WaitlistedUnits: d.WaitlistedUnits,
		Registrations:   registrations,
	}
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:         r.ID,
		SessionID:  r.SessionID,
		Name:       r.Contact.Name,
		Status:     string(r.Status),
		GuestCount: r.GuestCount,
		CreatedAt:  r.CreatedAt.Format(time.RFC3339),
	}
}

func ToWaitlistEntryResponse(e *domain.WaitlistEntry) WaitlistEntryResponse {
	return WaitlistEntryResponse{
		ID:        e.ID,
		SessionID: e.SessionID,
		Kind:      string(e.Kind),
		Requested: e.Requested,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}

func ToIntentResponse(in *domain.PendingIntent) IntentResponse {
	return IntentResponse{
		ID:         in.ID,
		SessionID:  in.SessionID,
		Kind:       string(in.Kind),
		Requested:  in.Requested,
		ToConfirm:  in.ToConfirm,
		ToWaitlist: in.ToWaitlist,
		ExpiresAt:  in.ExpiresAt.Format(time.RFC3339),
	}
}
