package ports

import (
	"context"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
)

type SessionRepo interface {
	Create(ctx context.Context, s *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	List(ctx context.Context) ([]*domain.Session, error)
	GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error)
}
