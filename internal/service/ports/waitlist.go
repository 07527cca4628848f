package ports

import (
	"context"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
)

type WaitlistRepo interface {
	Join(ctx context.Context, e *domain.WaitlistEntry) error
	Reduce(ctx context.Context, registrationID string, count int) error
}
