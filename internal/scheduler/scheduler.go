package scheduler

import (
	"context"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type bookingMaintainer interface {
	FireDepartureAlerts(ctx context.Context) (int, error)
	ExpireUnpaid(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler drives the two periodic jobs: departure alerts on a short tick
// and unpaid-booking expiry on a longer one.
type Scheduler struct {
	bookingService bookingMaintainer
	alertInterval  time.Duration
	expiryInterval time.Duration
	logger         logger.Logger
}

func New(
	bookingService bookingMaintainer,
	alertInterval time.Duration,
	expiryInterval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		alertInterval:  alertInterval,
		expiryInterval: expiryInterval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	alertTicker := time.NewTicker(s.alertInterval)
	defer alertTicker.Stop()

	expiryTicker := time.NewTicker(s.expiryInterval)
	defer expiryTicker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("alert_interval", s.alertInterval),
		logger.Duration("expiry_interval", s.expiryInterval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-alertTicker.C:
			s.alertTick(ctx)
		case <-expiryTicker.C:
			s.expiryTick(ctx)
		}
	}
}

func (s *Scheduler) alertTick(ctx context.Context) {
	fired, err := s.bookingService.FireDepartureAlerts(ctx)
	if err != nil {
		s.logger.Error("failed to fire departure alerts",
			logger.String("error", err.Error()),
		)
		return
	}

	if fired > 0 {
		s.logger.Info("departure alerts fired", logger.Int("count", fired))
	}
}

func (s *Scheduler) expiryTick(ctx context.Context) {
	expired, err := s.bookingService.ExpireUnpaid(ctx)
	if err != nil {
		s.logger.Error("failed to expire unpaid bookings",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, b := range expired {
		s.logger.Info("booking expired",
			logger.String("booking_id", b.ID),
			logger.String("ref", b.Ref),
			logger.String("passenger_id", b.PassengerID),
		)
	}
}
