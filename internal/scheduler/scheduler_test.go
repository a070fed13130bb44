package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/Tellaman12/TaxiGo/internal/scheduler/mocks"
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

func TestScheduler_FiresBothJobs(t *testing.T) {
	maintainer := mocks.NewMockBookingMaintainer(t)

	alertCalled := make(chan struct{}, 10)
	maintainer.EXPECT().FireDepartureAlerts(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int, error) {
			alertCalled <- struct{}{}
			return 1, nil
		})

	expiryCalled := make(chan struct{}, 10)
	maintainer.EXPECT().ExpireUnpaid(mock.Anything).
		RunAndReturn(func(ctx context.Context) ([]*domain.Booking, error) {
			expiryCalled <- struct{}{}
			return []*domain.Booking{{ID: "b1", Ref: "RG-1"}}, nil
		})

	s := New(maintainer, 10*time.Millisecond, 15*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-alertCalled:
	case <-time.After(time.Second):
		t.Fatal("departure alert job never ran")
	}
	select {
	case <-expiryCalled:
	case <-time.After(time.Second):
		t.Fatal("expiry job never ran")
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop on context cancel")
	}
}

func TestScheduler_KeepsTickingAfterErrors(t *testing.T) {
	maintainer := mocks.NewMockBookingMaintainer(t)

	calls := make(chan struct{}, 10)
	maintainer.EXPECT().FireDepartureAlerts(mock.Anything).
		RunAndReturn(func(ctx context.Context) (int, error) {
			calls <- struct{}{}
			return 0, errors.New("db unavailable")
		})
	maintainer.EXPECT().ExpireUnpaid(mock.Anything).
		Return(nil, errors.New("db unavailable")).Maybe()

	s := New(maintainer, 10*time.Millisecond, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go s.Start(ctx)

	for i := 0; i < 2; i++ {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatalf("alert job stopped after %d calls", i)
		}
	}
}

func TestScheduler_StopsBeforeFirstTick(t *testing.T) {
	maintainer := mocks.NewMockBookingMaintainer(t)

	s := New(maintainer, time.Hour, time.Hour, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		s.Start(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not exit on cancelled context")
	}
}
