package service

import (
	"context"
	"testing"
	"time"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reservationMocks struct {
	reservationRepo *mocks.MockReservationRepo
	sessionRepo     *mocks.MockSessionRepo
	waitlistRepo    *mocks.MockWaitlistRepo
	notifier        *mocks.MockReservationNotifier
}

func newReservationService(t *testing.T) (*ReservationService, reservationMocks) {
	t.Helper()
	m := reservationMocks{
		reservationRepo: mocks.NewMockReservationRepo(t),
		sessionRepo:     mocks.NewMockSessionRepo(t),
		waitlistRepo:    mocks.NewMockWaitlistRepo(t),
		notifier:        mocks.NewMockReservationNotifier(t),
	}
	svc := NewReservationService(m.reservationRepo, m.sessionRepo, m.waitlistRepo, m.notifier, newTestLogger(t))
	return svc, m
}

func testContact() domain.Contact {
	return domain.Contact{Name: "Alice", Email: "alice@example.com"}
}

func TestReservationService_Register_RequiresPayment(t *testing.T) {
	svc, m := newReservationService(t)

	session := &domain.Session{ID: "s1", RequiresPayment: true, MaxCapacity: 10}
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.reservationRepo.EXPECT().CreateRegistration(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRegistrationPending(mock.Anything, mock.Anything, session).Return()

	reg, err := svc.Register(context.Background(), "s1", testContact())

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusPending, reg.Status)
	assert.Equal(t, "s1", reg.SessionID)
	assert.NotEmpty(t, reg.ID)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestReservationService_Register_NoPaymentConfirmsImmediately(t *testing.T) {
	svc, m := newReservationService(t)

	session := &domain.Session{ID: "s1", RequiresPayment: false, MaxCapacity: 10}
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.reservationRepo.EXPECT().CreateRegistration(mock.Anything, mock.Anything).Return(nil)
	m.notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, mock.Anything, session).Return()

	reg, err := svc.Register(context.Background(), "s1", testContact())

	require.NoError(t, err)
	assert.Equal(t, domain.RegistrationStatusConfirmed, reg.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Register_InvalidContact(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.Register(context.Background(), "s1", domain.Contact{Name: "", Email: "a@b.c"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(context.Background(), "s1", domain.Contact{Name: "Bob", Email: "not-an-email"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_Register_SessionFull(t *testing.T) {
	svc, m := newReservationService(t)

	session := &domain.Session{ID: "s1", RequiresPayment: true, MaxCapacity: 2, ConfirmedAttendees: 2}
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.reservationRepo.EXPECT().CreateRegistration(mock.Anything, mock.Anything).Return(domain.ErrNoAvailableSpots)

	_, err := svc.Register(context.Background(), "s1", testContact())

	assert.ErrorIs(t, err, domain.ErrNoAvailableSpots)
}

func TestReservationService_ConfirmRegistration(t *testing.T) {
	svc, m := newReservationService(t)

	reg := &domain.Registration{ID: "r1", SessionID: "s1", Status: domain.RegistrationStatusPending}
	session := &domain.Session{ID: "s1"}
	m.reservationRepo.EXPECT().GetRegistration(mock.Anything, "r1").Return(reg, nil)
	m.reservationRepo.EXPECT().ConfirmRegistration(mock.Anything, "r1").Return(nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.notifier.EXPECT().NotifyRegistrationConfirmed(mock.Anything, mock.Anything, session).Return()

	err := svc.ConfirmRegistration(context.Background(), "r1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_ConfirmRegistration_Expired(t *testing.T) {
	svc, m := newReservationService(t)

	reg := &domain.Registration{ID: "r1", SessionID: "s1", Status: domain.RegistrationStatusPending}
	m.reservationRepo.EXPECT().GetRegistration(mock.Anything, "r1").Return(reg, nil)
	m.reservationRepo.EXPECT().ConfirmRegistration(mock.Anything, "r1").Return(domain.ErrPaymentExpired)

	err := svc.ConfirmRegistration(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrPaymentExpired)
}

func TestReservationService_Cancel_PromotesWaitlist(t *testing.T) {
	svc, m := newReservationService(t)

	session := &domain.Session{ID: "s1"}
	promoted := domain.WaitlistEntry{ID: "w1", SessionID: "s1", Kind: domain.WaitlistKindNewSpot, Requested: 2}
	outcome := &domain.CancelOutcome{
		SessionID: "s1",
		Freed:     3,
		Promotion: domain.PromotionReport{
			Promoted:    2,
			Conversions: []domain.Conversion{{Entry: promoted, Units: 2}},
		},
	}
	m.reservationRepo.EXPECT().CancelRegistration(mock.Anything, "r1").Return(outcome, nil)
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.notifier.EXPECT().NotifyWaitlistPromoted(mock.Anything, mock.Anything, session).Return()

	got, err := svc.Cancel(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, 3, got.Freed)
	assert.Equal(t, 2, got.Promotion.Promoted)

	time.Sleep(50 * time.Millisecond)
}

func TestReservationService_Cancel_NotFound(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().CancelRegistration(mock.Anything, "missing").Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.Cancel(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestReservationService_AddGuests_Split(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().AddGuests(mock.Anything, "r1", 5).
		Return(&domain.SplitOutcome{Added: 2, Waitlisted: 3}, nil)

	outcome, err := svc.AddGuests(context.Background(), "r1", 5)

	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Added)
	assert.Equal(t, 3, outcome.Waitlisted)
}

func TestReservationService_AddGuests_CountOutOfRange(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.AddGuests(context.Background(), "r1", 0)
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddGuests(context.Background(), "r1", domain.MaxGuestsPerRequest+1)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_RemoveGuests_DeduplicatesIDs(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().RemoveGuests(mock.Anything, "r1", []string{"g1", "g2"}).
		Return(&domain.RemoveOutcome{SessionID: "s1", Removed: 2}, nil)

	outcome, err := svc.RemoveGuests(context.Background(), "r1", []string{"g1", "g2", "g1"})

	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Removed)
}

func TestReservationService_RemoveGuests_Empty(t *testing.T) {
	svc, _ := newReservationService(t)

	_, err := svc.RemoveGuests(context.Background(), "r1", nil)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_RemoveGuests_UnknownGuestFailsWhole(t *testing.T) {
	svc, m := newReservationService(t)

	m.reservationRepo.EXPECT().RemoveGuests(mock.Anything, "r1", []string{"g1", "nope"}).
		Return(nil, domain.ErrGuestNotFound)

	_, err := svc.RemoveGuests(context.Background(), "r1", []string{"g1", "nope"})

	assert.ErrorIs(t, err, domain.ErrGuestNotFound)
}

func TestReservationService_RenameGuests(t *testing.T) {
	svc, m := newReservationService(t)

	renames := []domain.GuestRename{{ID: "g1", Name: "Dana"}}
	m.reservationRepo.EXPECT().RenameGuests(mock.Anything, "r1", renames).Return(nil)

	err := svc.RenameGuests(context.Background(), "r1", renames)

	require.NoError(t, err)
}

func TestReservationService_RenameGuests_BlankName(t *testing.T) {
	svc, _ := newReservationService(t)

	err := svc.RenameGuests(context.Background(), "r1", []domain.GuestRename{{ID: "g1", Name: "   "}})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReservationService_JoinWaitlist(t *testing.T) {
	svc, m := newReservationService(t)

	session := &domain.Session{ID: "s1", MaxCapacity: 2, ConfirmedAttendees: 2}
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.waitlistRepo.EXPECT().Join(mock.Anything, mock.Anything).Return(nil)

	entry, err := svc.JoinWaitlist(context.Background(), "s1", testContact())

	require.NoError(t, err)
	assert.Equal(t, domain.WaitlistKindNewSpot, entry.Kind)
	assert.Equal(t, 1, entry.Requested)
	require.NotNil(t, entry.Contact)
	assert.Equal(t, "Alice", entry.Contact.Name)
}

func TestReservationService_JoinWaitlist_SpotsStillOpen(t *testing.T) {
	svc, m := newReservationService(t)

	session := &domain.Session{ID: "s1", MaxCapacity: 10, ConfirmedAttendees: 4}
	m.sessionRepo.EXPECT().GetByID(mock.Anything, "s1").Return(session, nil)
	m.waitlistRepo.EXPECT().Join(mock.Anything, mock.Anything).Return(domain.ErrSpotsAvailable)

	_, err := svc.JoinWaitlist(context.Background(), "s1", testContact())

	assert.ErrorIs(t, err, domain.ErrSpotsAvailable)
}

func TestReservationService_ReduceWaitlist(t *testing.T) {
	svc, m := newReservationService(t)

	m.waitlistRepo.EXPECT().Reduce(mock.Anything, "r1", 2).Return(nil)

	require.NoError(t, svc.ReduceWaitlist(context.Background(), "r1", 2))
}

func TestReservationService_ReduceWaitlist_InvalidCount(t *testing.T) {
	svc, _ := newReservationService(t)

	err := svc.ReduceWaitlist(context.Background(), "r1", 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}
