package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/service/ports"
)

const defaultPaymentTTL = 30 * time.Minute

type SessionService struct {
	repo ports.SessionRepo
}

func NewSessionService(repo ports.SessionRepo) *SessionService {
	return &SessionService{repo: repo}
}

func (s *SessionService) CreateSession(ctx context.Context, input domain.CreateSessionInput) (*domain.Session, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.MaxCapacity <= 0 {
		return nil, fmt.Errorf("%w: max_capacity must be positive", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}

	requiresPayment := true
	if input.RequiresPayment != nil {
		requiresPayment = *input.RequiresPayment
	}

	ttl := input.PaymentTTL
	if ttl == 0 {
		ttl = defaultPaymentTTL
	}

	session := &domain.Session{
		ID:              uuid.New().String(),
		Title:           input.Title,
		Description:     input.Description,
		StartsAt:        input.StartsAt,
		MaxCapacity:     input.MaxCapacity,
		RequiresPayment: requiresPayment,
		PaymentTTL:      ttl,
	}

	if err := s.repo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return session, nil
}

func (s *SessionService) GetDetails(ctx context.Context, id string) (*domain.SessionDetails, error) {
	return s.repo.GetDetails(ctx, id)
}

func (s *SessionService) List(ctx context.Context) ([]*domain.Session, error) {
	return s.repo.List(ctx)
}
