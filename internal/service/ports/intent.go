package ports

import (
	"context"
	"time"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
)

type IntentRepo interface {
	Create(ctx context.Context, in *domain.PendingIntent) error
	Claim(ctx context.Context, id string) (*domain.PendingIntent, error)
	Unclaim(ctx context.Context, id string) error
	DeleteExpired(ctx context.Context, now time.Time) (int, error)
}
