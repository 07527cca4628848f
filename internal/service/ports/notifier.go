package ports

import (
	"context"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
)

type ReservationNotifier interface {
	NotifyRegistrationPending(ctx context.Context, reg *domain.Registration, s *domain.Session)
	NotifyRegistrationConfirmed(ctx context.Context, reg *domain.Registration, s *domain.Session)
	NotifyRegistrationExpired(ctx context.Context, reg *domain.Registration, s *domain.Session)
	NotifyWaitlistPromoted(ctx context.Context, c *domain.Conversion, s *domain.Session)
}
