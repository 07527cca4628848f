package service

import (
	"context"
	"time"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// SweepService подчищает брошенные записи: просроченные интенты и
// неоплаченные брони. Зависшая запись логируется и пропускается.
type SweepService struct {
	intentRepo      ports.IntentRepo
	reservationRepo ports.ReservationRepo
	sessionRepo     ports.SessionRepo
	notifier        ports.ReservationNotifier
	logger          logger.Logger
}

func NewSweepService(
	intentRepo ports.IntentRepo,
	reservationRepo ports.ReservationRepo,
	sessionRepo ports.SessionRepo,
	notifier ports.ReservationNotifier,
	logger logger.Logger,
) *SweepService {
	return &SweepService{
		intentRepo:      intentRepo,
		reservationRepo: reservationRepo,
		sessionRepo:     sessionRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

func (s *SweepService) Sweep(ctx context.Context) (*domain.SweepReport, error) {
	report := &domain.SweepReport{}

	expired, err := s.intentRepo.DeleteExpired(ctx, time.Now().UTC())
	if err != nil {
		s.logger.Error("failed to delete expired intents",
			logger.String("error", err.Error()),
		)
	} else {
		report.IntentsExpired = expired
	}

	stale, err := s.reservationRepo.ListExpiredPending(ctx)
	if err != nil {
		return report, err
	}

	touched := make(map[string]struct{})
	for _, reg := range stale {
		outcome, err := s.reservationRepo.CancelRegistration(ctx, reg.ID)
		if err != nil {
			s.logger.Error("failed to expire pending registration",
				logger.String("registration_id", reg.ID),
				logger.String("error", err.Error()),
			)
			continue
		}

		report.RegistrationsExpired++
		report.Promoted += outcome.Promotion.Promoted
		touched[outcome.SessionID] = struct{}{}

		s.notifyExpired(ctx, reg)
	}

	// ещё один проход по затронутым сессиям
	for sessionID := range touched {
		promotion, err := s.reservationRepo.PromoteSession(ctx, sessionID)
		if err != nil {
			s.logger.Error("failed to promote after sweep",
				logger.String("session_id", sessionID),
				logger.String("error", err.Error()),
			)
			continue
		}
		report.Promoted += promotion.Promoted
	}

	if report.IntentsExpired > 0 || report.RegistrationsExpired > 0 {
		s.logger.Info("sweep completed",
			logger.Int("intents_expired", report.IntentsExpired),
			logger.Int("registrations_expired", report.RegistrationsExpired),
			logger.Int("promoted", report.Promoted),
		)
	}

	return report, nil
}

func (s *SweepService) notifyExpired(ctx context.Context, reg *domain.Registration) {
	session, err := s.sessionRepo.GetByID(ctx, reg.SessionID)
	if err != nil {
		s.logger.Error("failed to get session for expiry notification",
			logger.String("session_id", reg.SessionID),
			logger.String("error", err.Error()),
		)
		return
	}

	go s.notifier.NotifyRegistrationExpired(context.WithoutCancel(ctx), reg, session)
}
