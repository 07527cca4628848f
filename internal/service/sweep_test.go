package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type sweepMocks struct {
	intentRepo      *mocks.MockIntentRepo
	reservationRepo *mocks.MockReservationRepo
	sessionRepo     *mocks.MockSessionRepo
	notifier        *mocks.MockReservationNotifier
}

func newSweepService(t *testing.T) (*SweepService, sweepMocks) {
	t.Helper()
	m := sweepMocks{
		intentRepo:      mocks.NewMockIntentRepo(t),
		reservationRepo: mocks.NewMockReservationRepo(t),
		sessionRepo:     mocks.NewMockSessionRepo(t),
		notifier:        mocks.NewMockReservationNotifier(t),
	}
	svc := NewSweepService(m.intentRepo, m.reservationRepo, m.sessionRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func TestSweepService_Sweep(t *testing.T) {
	svc, m := newSweepService(t)

	stale := []*domain.Registration{
		{ID: "r1", SessionID: "s1", Status: domain.RegistrationStatusPending},
		{ID: "r2", SessionID: "s1", Status: domain.RegistrationStatusPending},
	}
	session := &domain.Session{ID: "s1"}

	m.intentRepo.EXPECT().DeleteExpired(mock.Anything, mock.Anything).Return(3, nil)
	m.reservationRepo.EXPECT().ListExpiredPending(mock.Anything).Return(stale, nil)
	m.reservationRepo.EXPECT().CancelRegistration(mock.Anything, "r1").
		Return(&domain.CancelOutcome{SessionID: "s1", Freed: 1, Promotion: domain.PromotionReport{Promoted: 1}}, nil)
	m.reservationRepo.EXPECT().CancelRegistration(mock.Anything, "r2").
		Return(&domain.CancelOutcome{SessionID: "s1", Freed: 2}, nil)
	m.reservationRepo.EXPECT().PromoteSession(mock.Anything, "s1").
		Return(&domain.PromotionReport{Promoted: 1}, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil).Times(2)
	m.notifier.EXPECT().NotifyRegistrationExpired(mock.Anything, mock.Anything, session).Return().Times(2)

	report, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, report.IntentsExpired)
	assert.Equal(t, 2, report.RegistrationsExpired)
	assert.Equal(t, 2, report.Promoted)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestSweepService_Sweep_SkipsStuckRegistration(t *testing.T) {
	svc, m := newSweepService(t)

	stale := []*domain.Registration{
		{ID: "r1", SessionID: "s1", Status: domain.RegistrationStatusPending},
		{ID: "r2", SessionID: "s2", Status: domain.RegistrationStatusPending},
	}
	session := &domain.Session{ID: "s2"}

	m.intentRepo.EXPECT().DeleteExpired(mock.Anything, mock.Anything).Return(0, nil)
	m.reservationRepo.EXPECT().ListExpiredPending(mock.Anything).Return(stale, nil)
	m.reservationRepo.EXPECT().CancelRegistration(mock.Anything, "r1").
		Return(nil, errors.New("deadlock detected"))
	m.reservationRepo.EXPECT().CancelRegistration(mock.Anything, "r2").
		Return(&domain.CancelOutcome{SessionID: "s2", Freed: 1}, nil)
	m.reservationRepo.EXPECT().PromoteSession(mock.Anything, "s2").
		Return(&domain.PromotionReport{}, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s2").Return(session, nil)
	m.notifier.EXPECT().NotifyRegistrationExpired(mock.Anything, mock.Anything, session).Return()

	report, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, report.RegistrationsExpired)

	time.Sleep(50 * time.Millisecond)
}

func TestSweepService_Sweep_IntentErrorDoesNotAbort(t *testing.T) {
	svc, m := newSweepService(t)

	m.intentRepo.EXPECT().DeleteExpired(mock.Anything, mock.Anything).Return(0, errors.New("db down"))
	m.reservationRepo.EXPECT().ListExpiredPending(mock.Anything).Return(nil, nil)

	report, err := svc.Sweep(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, report.IntentsExpired)
	assert.Equal(t, 0, report.RegistrationsExpired)
}

func TestSweepService_Sweep_ListErrorAborts(t *testing.T) {
	svc, m := newSweepService(t)

	m.intentRepo.EXPECT().DeleteExpired(mock.Anything, mock.Anything).Return(2, nil)
	m.reservationRepo.EXPECT().ListExpiredPending(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.Sweep(context.Background())

	assert.Error(t, err)
}
