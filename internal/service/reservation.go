package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ReservationService struct {
	reservationRepo ports.ReservationRepo
	sessionRepo     ports.SessionRepo
	waitlistRepo    ports.WaitlistRepo
	notifier        ports.ReservationNotifier
	logger          logger.Logger
}

func NewReservationService(
	reservationRepo ports.ReservationRepo,
	sessionRepo ports.SessionRepo,
	waitlistRepo ports.WaitlistRepo,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		sessionRepo:     sessionRepo,
		waitlistRepo:    waitlistRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func validateContact(c domain.Contact) error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: contact name is required", domain.ErrValidation)
	}
	if !strings.Contains(c.Email, "@") {
		return fmt.Errorf("%w: contact email is invalid", domain.ErrValidation)
	}
	return nil
}

// Register никогда не уводит в лист ожидания сам: если мест нет,
// вернётся ErrNoAvailableSpots и клиент идёт в JoinWaitlist.
func (s *ReservationService) Register(ctx context.Context, sessionID string, contact domain.Contact) (*domain.Registration, error) {
	if err := validateContact(contact); err != nil {
		return nil, err
	}

	// проверка, что сессия существует
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	status := domain.RegistrationStatusConfirmed
	if session.RequiresPayment {
		status = domain.RegistrationStatusPending
	}

	now := time.Now().UTC()
	reg := &domain.Registration{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Contact:   contact,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.reservationRepo.CreateRegistration(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("session_id", sessionID),
		logger.String("status", string(status)),
	)

	// notify
	if session.RequiresPayment {
		go s.notifier.NotifyRegistrationPending(context.WithoutCancel(ctx), reg, session)
	} else {
		go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), reg, session)
	}

	return reg, nil
}

func (s *ReservationService) ConfirmRegistration(ctx context.Context, registrationID string) error {
	reg, err := s.reservationRepo.GetRegistration(ctx, registrationID)
	if err != nil {
		return fmt.Errorf("get registration: %w", err)
	}

	if err = s.reservationRepo.ConfirmRegistration(ctx, registrationID); err != nil {
		return fmt.Errorf("confirm registration: %w", err)
	}

	s.logger.Info("registration confirmed",
		logger.String("registration_id", registrationID),
		logger.String("session_id", reg.SessionID),
	)

	session, err := s.sessionRepo.GetByID(ctx, reg.SessionID)
	if err != nil {
		s.logger.Error("failed to get session for notification",
			logger.String("session_id", reg.SessionID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	reg.Status = domain.RegistrationStatusConfirmed

	go s.notifier.NotifyRegistrationConfirmed(context.WithoutCancel(ctx), reg, session)

	return nil
}

// Cancel освобождает все места брони; продвижение очереди происходит
// в той же транзакции хранилища.
func (s *ReservationService) Cancel(ctx context.Context, registrationID string) (*domain.CancelOutcome, error) {
	outcome, err := s.reservationRepo.CancelRegistration(ctx, registrationID)
	if err != nil {
		return nil, fmt.Errorf("cancel registration: %w", err)
	}

	s.logger.Info("registration cancelled",
		logger.String("registration_id", registrationID),
		logger.String("session_id", outcome.SessionID),
		logger.Int("freed", outcome.Freed),
		logger.Int("promoted", outcome.Promotion.Promoted),
	)

	s.notifyPromotions(ctx, outcome.SessionID, outcome.Promotion)

	return outcome, nil
}

func (s *ReservationService) AddGuests(ctx context.Context, registrationID string, requested int) (*domain.SplitOutcome, error) {
	if requested < 1 || requested > domain.MaxGuestsPerRequest {
		return nil, fmt.Errorf("%w: guest count must be between 1 and %d, got %d",
			domain.ErrValidation, domain.MaxGuestsPerRequest, requested)
	}

	outcome, err := s.reservationRepo.AddGuests(ctx, registrationID, requested)
	if err != nil {
		return nil, fmt.Errorf("add guests: %w", err)
	}

	s.logger.Info("guests added",
		logger.String("registration_id", registrationID),
		logger.Int("added", outcome.Added),
		logger.Int("waitlisted", outcome.Waitlisted),
	)

	return outcome, nil
}

func (s *ReservationService) RemoveGuests(ctx context.Context, registrationID string, guestIDs []string) (*domain.RemoveOutcome, error) {
	if len(guestIDs) == 0 {
		return nil, fmt.Errorf("%w: guest ids are required", domain.ErrValidation)
	}
	seen := make(map[string]struct{}, len(guestIDs))
	ids := make([]string, 0, len(guestIDs))
	for _, id := range guestIDs {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	outcome, err := s.reservationRepo.RemoveGuests(ctx, registrationID, ids)
	if err != nil {
		return nil, fmt.Errorf("remove guests: %w", err)
	}

	s.logger.Info("guests removed",
		logger.String("registration_id", registrationID),
		logger.Int("removed", outcome.Removed),
		logger.Int("promoted", outcome.Promotion.Promoted),
	)

	s.notifyPromotions(ctx, outcome.SessionID, outcome.Promotion)

	return outcome, nil
}

func (s *ReservationService) RenameGuests(ctx context.Context, registrationID string, renames []domain.GuestRename) error {
	if len(renames) == 0 {
		return fmt.Errorf("%w: renames are required", domain.ErrValidation)
	}
	for _, rn := range renames {
		if strings.TrimSpace(rn.Name) == "" {
			return fmt.Errorf("%w: guest name must not be empty", domain.ErrValidation)
		}
	}

	if err := s.reservationRepo.RenameGuests(ctx, registrationID, renames); err != nil {
		return fmt.Errorf("rename guests: %w", err)
	}

	return nil
}

func (s *ReservationService) JoinWaitlist(ctx context.Context, sessionID string, contact domain.Contact) (*domain.WaitlistEntry, error) {
	if err := validateContact(contact); err != nil {
		return nil, err
	}

	if _, err := s.sessionRepo.GetByID(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("check session: %w", err)
	}

	entry := &domain.WaitlistEntry{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Kind:      domain.WaitlistKindNewSpot,
		Requested: 1,
		Contact:   &contact,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.waitlistRepo.Join(ctx, entry); err != nil {
		return nil, fmt.Errorf("join waitlist: %w", err)
	}

	s.logger.Info("waitlist joined",
		logger.String("entry_id", entry.ID),
		logger.String("session_id", sessionID),
	)

	return entry, nil
}

func (s *ReservationService) ReduceWaitlist(ctx context.Context, registrationID string, count int) error {
	if count < 1 {
		return fmt.Errorf("%w: reduce count must be positive", domain.ErrValidation)
	}

	if err := s.waitlistRepo.Reduce(ctx, registrationID, count); err != nil {
		return fmt.Errorf("reduce waitlist: %w", err)
	}

	s.logger.Info("waitlist reduced",
		logger.String("registration_id", registrationID),
		logger.Int("count", count),
	)

	return nil
}

func (s *ReservationService) notifyPromotions(ctx context.Context, sessionID string, report domain.PromotionReport) {
	if len(report.Conversions) == 0 {
		return
	}

	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		s.logger.Error("failed to get session for promotion notifications",
			logger.String("session_id", sessionID),
			logger.String("error", err.Error()),
		)
		return
	}

	go func(ctx context.Context, conversions []domain.Conversion) {
		for i := range conversions {
			s.notifier.NotifyWaitlistPromoted(ctx, &conversions[i], session)
		}
	}(context.WithoutCancel(ctx), report.Conversions)
}
