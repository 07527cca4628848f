package domain

import "errors"

var (
	ErrSessionNotFound      = errors.New("session not found")
	ErrRegistrationNotFound = errors.New("registration not found")
	ErrGuestNotFound        = errors.New("guest entry not found")
	ErrWaitlistNotFound     = errors.New("waitlist entry not found")
	ErrIntentNotFound       = errors.New("pending intent not found")
)

var (
	ErrNoAvailableSpots       = errors.New("no available spots")
	ErrSpotsAvailable         = errors.New("spots are available, register instead of waitlisting")
	ErrRegistrationNotPending = errors.New("registration is not in pending status")
	ErrPaymentExpired         = errors.New("payment window has expired")
	ErrIntentAlreadyConfirmed = errors.New("intent already confirmed")
	ErrIntentExpired          = errors.New("intent has expired")
)

var (
	ErrValidation = errors.New("validation error")
)
