package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type IntentService struct {
	intentRepo      ports.IntentRepo
	sessionRepo     ports.SessionRepo
	reservationRepo ports.ReservationRepo
	notifier        ports.ReservationNotifier
	logger          logger.Logger
	ttl             time.Duration
}

func NewIntentService(
	intentRepo ports.IntentRepo,
	sessionRepo ports.SessionRepo,
	reservationRepo ports.ReservationRepo,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
	ttl time.Duration,
) *IntentService {
	return &IntentService{
		intentRepo:      intentRepo,
		sessionRepo:     sessionRepo,
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
		ttl:             ttl,
	}
}

func (s *IntentService) ReserveIntent(ctx context.Context, input domain.ReserveIntentInput) (*domain.PendingIntent, error) {
	if input.Requested < 1 || input.Requested > domain.MaxGuestsPerRequest {
		return nil, fmt.Errorf("%w: requested count must be between 1 and %d, got %d",
			domain.ErrValidation, domain.MaxGuestsPerRequest, input.Requested)
	}

	sessionID := input.SessionID
	var registrationID *string
	var contact *domain.Contact

	// проверка цели: для add_guests сессию берём из брони
	switch input.Kind {
	case domain.IntentKindAddGuests:
		reg, err := s.reservationRepo.GetRegistration(ctx, input.RegistrationID)
		if err != nil {
			return nil, fmt.Errorf("check registration: %w", err)
		}
		if reg.Status == domain.RegistrationStatusCancelled {
			return nil, domain.ErrRegistrationNotFound
		}
		sessionID = reg.SessionID
		registrationID = &reg.ID
	case domain.IntentKindNewSpot:
		if err := validateContact(input.Contact); err != nil {
			return nil, err
		}
		c := input.Contact
		contact = &c
	default:
		return nil, fmt.Errorf("%w: unknown intent kind %q", domain.ErrValidation, input.Kind)
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	// снимок сплита для чекаута, мест не резервируем
	toConfirm, toWaitlist := domain.SplitRequest(session.AvailableSpots(), input.Requested)

	now := time.Now().UTC()
	intent := &domain.PendingIntent{
		ID:             uuid.New().String(),
		SessionID:      sessionID,
		Kind:           input.Kind,
		RegistrationID: registrationID,
		Contact:        contact,
		Requested:      input.Requested,
		ToConfirm:      toConfirm,
		ToWaitlist:     toWaitlist,
		Status:         domain.IntentStatusPending,
		CreatedAt:      now,
		ExpiresAt:      now.Add(s.ttl),
	}
	if err = s.intentRepo.Create(ctx, intent); err != nil {
		return nil, fmt.Errorf("create intent: %w", err)
	}

	s.logger.Info("intent created",
		logger.String("intent_id", intent.ID),
		logger.String("session_id", sessionID),
		logger.String("kind", string(input.Kind)),
		logger.Int("to_confirm", toConfirm),
		logger.Int("to_waitlist", toWaitlist),
	)

	return intent, nil
}

// ConfirmIntent вызывается платёжным провайдером после оплаты. Снимку
// сплита из интента не верим: запрос проигрывается заново по текущей
// доступности.
func (s *IntentService) ConfirmIntent(ctx context.Context, intentID string) (*domain.IntentOutcome, error) {
	intent, err := s.intentRepo.Claim(ctx, intentID)
	if err != nil {
		return nil, fmt.Errorf("claim intent: %w", err)
	}

	outcome := &domain.IntentOutcome{IntentID: intentID}

	switch intent.Kind {
	case domain.IntentKindAddGuests:
		split, err := s.reservationRepo.AddGuests(ctx, *intent.RegistrationID, intent.Requested)
		if err != nil {
			s.unclaim(ctx, intentID)
			return nil, fmt.Errorf("materialize add guests: %w", err)
		}
		outcome.RegistrationID = *intent.RegistrationID
		outcome.Confirmed = split.Added
		outcome.Waitlisted = split.Waitlisted

	case domain.IntentKindNewSpot:
		party, err := s.reservationRepo.MaterializeParty(ctx, intent.SessionID, *intent.Contact, intent.Requested)
		if err != nil {
			s.unclaim(ctx, intentID)
			return nil, fmt.Errorf("materialize party: %w", err)
		}
		outcome.RegistrationID = party.RegistrationID
		outcome.Confirmed = party.Confirmed
		outcome.Waitlisted = party.Waitlisted

	default:
		return nil, fmt.Errorf("unknown intent kind %q", intent.Kind)
	}

	s.logger.Info("intent confirmed",
		logger.String("intent_id", intentID),
		logger.String("session_id", intent.SessionID),
		logger.Int("confirmed", outcome.Confirmed),
		logger.Int("waitlisted", outcome.Waitlisted),
	)

	if intent.Kind == domain.IntentKindNewSpot && outcome.RegistrationID != "" {
		s.notifyMaterialized(ctx, intent, outcome)
	}

	return outcome, nil
}

// Возвращаем интент в pending: claim уже закоммичен, а бронь не
// создалась, поэтому ретрай вебхука должен получить ещё одну попытку.
func (s *IntentService) unclaim(ctx context.Context, intentID string) {
	if err := s.intentRepo.Unclaim(ctx, intentID); err != nil {
		s.logger.Error("failed to release intent claim",
			logger.String("intent_id", intentID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *IntentService) notifyMaterialized(ctx context.Context, intent *domain.PendingIntent, outcome *domain.IntentOutcome) {
	session, err := s.sessionRepo.GetByID(ctx, intent.SessionID)
	if err != nil {
		s.logger.Error("failed to get session for intent notification",
			logger.String("session_id", intent.SessionID),
			logger.String("error", err.Error()),
		)
		return
	}

	reg := &domain.Registration{
		ID:         outcome.RegistrationID,
		SessionID:  intent.SessionID,
		Contact:    *intent.Contact,
		Status:     domain.RegistrationStatusConfirmed,
		GuestCount: outcome.Confirmed - 1,
	}

	go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), reg, session)
}
