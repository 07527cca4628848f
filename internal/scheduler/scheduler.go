package scheduler

import (
	"context"
	"time"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type sweeper interface {
	Sweep(ctx context.Context) (*domain.SweepReport, error)
}

type Scheduler struct {
	sweepService sweeper
	interval     time.Duration
	logger       logger.Logger
}

func New(
	sweepService sweeper,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		sweepService: sweepService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	report, err := s.sweepService.Sweep(ctx)
	if err != nil {
		s.logger.Error("sweep failed",
			logger.String("error", err.Error()),
		)
		return
	}

	if report.IntentsExpired > 0 || report.RegistrationsExpired > 0 || report.Promoted > 0 {
		s.logger.Info("sweep tick",
			logger.Int("intents_expired", report.IntentsExpired),
			logger.Int("registrations_expired", report.RegistrationsExpired),
			logger.Int("promoted", report.Promoted),
		)
	}
}
