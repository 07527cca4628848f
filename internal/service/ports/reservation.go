package ports

import (
	"context"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
)

type ReservationRepo interface {
	CreateRegistration(ctx context.Context, reg *domain.Registration) error
	GetRegistration(ctx context.Context, id string) (*domain.Registration, error)
	ConfirmRegistration(ctx context.Context, id string) error
	CancelRegistration(ctx context.Context, id string) (*domain.CancelOutcome, error)
	AddGuests(ctx context.Context, registrationID string, requested int) (*domain.SplitOutcome, error)
	RemoveGuests(ctx context.Context, registrationID string, guestIDs []string) (*domain.RemoveOutcome, error)
	RenameGuests(ctx context.Context, registrationID string, renames []domain.GuestRename) error
	MaterializeParty(ctx context.Context, sessionID string, contact domain.Contact, total int) (*domain.PartyOutcome, error)
	PromoteSession(ctx context.Context, sessionID string) (*domain.PromotionReport, error)
	ListExpiredPending(ctx context.Context) ([]*domain.Registration, error)
}
