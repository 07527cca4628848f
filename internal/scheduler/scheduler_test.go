package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ntsvetkov/ClubSpot/internal/domain"
	"github.com/ntsvetkov/ClubSpot/internal/scheduler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
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

func TestScheduler_Tick_RunsSweep(t *testing.T) {
	sweep := mocks.NewMockSweeper(t)
	log := newTestLogger(t)

	s := New(sweep, 50*time.Millisecond, log)

	sweep.EXPECT().Sweep(mock.Anything).
		Return(&domain.SweepReport{IntentsExpired: 1, RegistrationsExpired: 2, Promoted: 1}, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweep.Calls), 1)
}

func TestScheduler_Tick_HandlesError(t *testing.T) {
	sweep := mocks.NewMockSweeper(t)
	log := newTestLogger(t)

	s := New(sweep, 50*time.Millisecond, log)

	sweep.EXPECT().Sweep(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweep.Calls), 1)
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	sweep := mocks.NewMockSweeper(t)
	log := newTestLogger(t)

	s := New(sweep, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_MultipleTicks(t *testing.T) {
	sweep := mocks.NewMockSweeper(t)
	log := newTestLogger(t)

	s := New(sweep, 30*time.Millisecond, log)

	sweep.EXPECT().Sweep(mock.Anything).Return(&domain.SweepReport{}, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	s.Start(ctx)

	assert.GreaterOrEqual(t, len(sweep.Calls), 3)
}
