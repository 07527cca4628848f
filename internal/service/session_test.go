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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestSessionService_CreateSession(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	session, err := svc.CreateSession(context.Background(), domain.CreateSessionInput{
		Title:       "Tuesday doubles",
		StartsAt:    time.Now().Add(48 * time.Hour),
		MaxCapacity: 12,
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.ID)
	assert.Equal(t, 12, session.MaxCapacity)
	assert.True(t, session.RequiresPayment) // default
	assert.Equal(t, 30*time.Minute, session.PaymentTTL)
}

func TestSessionService_CreateSession_NoPayment(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	noPay := false
	session, err := svc.CreateSession(context.Background(), domain.CreateSessionInput{
		Title:           "Open play",
		StartsAt:        time.Now().Add(time.Hour),
		MaxCapacity:     8,
		RequiresPayment: &noPay,
	})

	require.NoError(t, err)
	assert.False(t, session.RequiresPayment)
}

func TestSessionService_CreateSession_Validation(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo)

	tests := []struct {
		name  string
		input domain.CreateSessionInput
	}{
		{"missing title", domain.CreateSessionInput{StartsAt: time.Now().Add(time.Hour), MaxCapacity: 4}},
		{"zero capacity", domain.CreateSessionInput{Title: "x", StartsAt: time.Now().Add(time.Hour)}},
		{"past date", domain.CreateSessionInput{Title: "x", StartsAt: time.Now().Add(-time.Hour), MaxCapacity: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateSession(context.Background(), tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSessionService_GetDetails(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo)

	details := &domain.SessionDetails{
		Session:        domain.Session{ID: "s1", MaxCapacity: 10, ConfirmedAttendees: 4},
		AvailableSpots: 6,
	}
	repo.EXPECT().GetDetails(mock.Anything, "s1").Return(details, nil)

	got, err := svc.GetDetails(context.Background(), "s1")

	require.NoError(t, err)
	assert.Equal(t, 6, got.AvailableSpots)
}

func TestSessionService_GetDetails_NotFound(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo)

	repo.EXPECT().GetDetails(mock.Anything, "missing").Return(nil, domain.ErrSessionNotFound)

	_, err := svc.GetDetails(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSessionService_List_PropagatesError(t *testing.T) {
	repo := mocks.NewMockSessionRepo(t)
	svc := NewSessionService(repo)

	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("db down"))

	_, err := svc.List(context.Background())

	assert.Error(t, err)
}
