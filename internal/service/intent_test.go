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

type intentMocks struct {
	intentRepo      *mocks.MockIntentRepo
	sessionRepo     *mocks.MockSessionRepo
	reservationRepo *mocks.MockReservationRepo
	notifier        *mocks.MockReservationNotifier
}

func newIntentService(t *testing.T) (*IntentService, intentMocks) {
	t.Helper()
	m := intentMocks{
		intentRepo:      mocks.NewMockIntentRepo(t),
		sessionRepo:     mocks.NewMockSessionRepo(t),
		reservationRepo: mocks.NewMockReservationRepo(t),
		notifier:        mocks.NewMockReservationNotifier(t),
	}
	svc := NewIntentService(m.intentRepo, m.sessionRepo, m.reservationRepo, m.notifier, newTestLogger(t), 30*time.Minute)
	return svc, m
}

func TestIntentService_ReserveIntent_NewSpot(t *testing.T) {
	svc, m := newIntentService(t)

	session := &domain.Session{ID: "s1", MaxCapacity: 10, ConfirmedAttendees: 8}
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.intentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	intent, err := svc.ReserveIntent(context.Background(), domain.ReserveIntentInput{
		SessionID: "s1",
		Kind:      domain.IntentKindNewSpot,
		Contact:   testContact(),
		Requested: 5,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.IntentStatusPending, intent.Status)
	// Snapshot split against 2 open spots.
	assert.Equal(t, 2, intent.ToConfirm)
	assert.Equal(t, 3, intent.ToWaitlist)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), intent.ExpiresAt, time.Minute)
}

func TestIntentService_ReserveIntent_AddGuestsResolvesSession(t *testing.T) {
	svc, m := newIntentService(t)

	reg := &domain.Registration{ID: "r1", SessionID: "s1", Status: domain.RegistrationStatusConfirmed}
	session := &domain.Session{ID: "s1", MaxCapacity: 10, ConfirmedAttendees: 9}
	m.reservationRepo.EXPECT().GetRegistration(mock.Anything, "r1").Return(reg, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.intentRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	intent, err := svc.ReserveIntent(context.Background(), domain.ReserveIntentInput{
		SessionID:      "ignored",
		Kind:           domain.IntentKindAddGuests,
		RegistrationID: "r1",
		Requested:      2,
	})

	require.NoError(t, err)
	assert.Equal(t, "s1", intent.SessionID)
	require.NotNil(t, intent.RegistrationID)
	assert.Equal(t, "r1", *intent.RegistrationID)
	assert.Equal(t, 1, intent.ToConfirm)
	assert.Equal(t, 1, intent.ToWaitlist)
}

func TestIntentService_ReserveIntent_CancelledRegistration(t *testing.T) {
	svc, m := newIntentService(t)

	reg := &domain.Registration{ID: "r1", SessionID: "s1", Status: domain.RegistrationStatusCancelled}
	m.reservationRepo.EXPECT().GetRegistration(mock.Anything, "r1").Return(reg, nil)

	_, err := svc.ReserveIntent(context.Background(), domain.ReserveIntentInput{
		Kind:           domain.IntentKindAddGuests,
		RegistrationID: "r1",
		Requested:      1,
	})

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestIntentService_ReserveIntent_Validation(t *testing.T) {
	svc, _ := newIntentService(t)

	_, err := svc.ReserveIntent(context.Background(), domain.ReserveIntentInput{
		SessionID: "s1",
		Kind:      domain.IntentKindNewSpot,
		Contact:   testContact(),
		Requested: 0,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.ReserveIntent(context.Background(), domain.ReserveIntentInput{
		SessionID: "s1",
		Kind:      "teleport",
		Requested: 1,
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestIntentService_ConfirmIntent_NewSpot(t *testing.T) {
	svc, m := newIntentService(t)

	contact := testContact()
	intent := &domain.PendingIntent{
		ID:        "i1",
		SessionID: "s1",
		Kind:      domain.IntentKindNewSpot,
		Contact:   &contact,
		Requested: 3,
		Status:    domain.IntentStatusConfirmed,
	}
	party := &domain.PartyOutcome{RegistrationID: "r9", Confirmed: 2, Waitlisted: 1}
	session := &domain.Session{ID: "s1"}

	m.intentRepo.EXPECT().Claim(mock.Anything, "i1").Return(intent, nil)
	m.reservationRepo.EXPECT().MaterializeParty(mock.Anything, "s1", contact, 3).Return(party, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, mock.Anything, session).Return()

	outcome, err := svc.ConfirmIntent(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, "r9", outcome.RegistrationID)
	assert.Equal(t, 2, outcome.Confirmed)
	assert.Equal(t, 1, outcome.Waitlisted)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestIntentService_ConfirmIntent_AddGuests(t *testing.T) {
	svc, m := newIntentService(t)

	regID := "r1"
	intent := &domain.PendingIntent{
		ID:             "i1",
		SessionID:      "s1",
		Kind:           domain.IntentKindAddGuests,
		RegistrationID: &regID,
		Requested:      2,
		Status:         domain.IntentStatusConfirmed,
	}

	m.intentRepo.EXPECT().Claim(mock.Anything, "i1").Return(intent, nil)
	m.reservationRepo.EXPECT().AddGuests(mock.Anything, "r1", 2).
		Return(&domain.SplitOutcome{Added: 2, Waitlisted: 0}, nil)

	outcome, err := svc.ConfirmIntent(context.Background(), "i1")

	require.NoError(t, err)
	assert.Equal(t, "r1", outcome.RegistrationID)
	assert.Equal(t, 2, outcome.Confirmed)
	assert.Equal(t, 0, outcome.Waitlisted)
}

func TestIntentService_ConfirmIntent_MaterializeFailureReleasesClaim(t *testing.T) {
	svc, m := newIntentService(t)

	regID := "r1"
	intent := &domain.PendingIntent{
		ID:             "i1",
		SessionID:      "s1",
		Kind:           domain.IntentKindAddGuests,
		RegistrationID: &regID,
		Requested:      2,
		Status:         domain.IntentStatusConfirmed,
	}

	m.intentRepo.EXPECT().Claim(mock.Anything, "i1").Return(intent, nil).Twice()
	m.reservationRepo.EXPECT().AddGuests(mock.Anything, "r1", 2).
		Return(nil, errors.New("lock timeout")).Once()
	m.intentRepo.EXPECT().Unclaim(mock.Anything, "i1").Return(nil).Once()
	m.reservationRepo.EXPECT().AddGuests(mock.Anything, "r1", 2).
		Return(&domain.SplitOutcome{Added: 2, Waitlisted: 0}, nil).Once()

	// Сбой между claim и бронью возвращает интент в pending.
	_, err := svc.ConfirmIntent(context.Background(), "i1")
	require.Error(t, err)

	outcome, err := svc.ConfirmIntent(context.Background(), "i1")
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Confirmed)
}

func TestIntentService_ConfirmIntent_DoubleConfirm(t *testing.T) {
	svc, m := newIntentService(t)

	m.intentRepo.EXPECT().Claim(mock.Anything, "i1").Return(nil, domain.ErrIntentAlreadyConfirmed)

	_, err := svc.ConfirmIntent(context.Background(), "i1")

	assert.ErrorIs(t, err, domain.ErrIntentAlreadyConfirmed)
}

func TestIntentService_ConfirmIntent_Expired(t *testing.T) {
	svc, m := newIntentService(t)

	m.intentRepo.EXPECT().Claim(mock.Anything, "i1").Return(nil, domain.ErrIntentExpired)

	_, err := svc.ConfirmIntent(context.Background(), "i1")

	assert.ErrorIs(t, err, domain.ErrIntentExpired)
}
