package ports

import (
	"context"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/domain"
)

type BookingRepo interface {
	// Create atomically checks seat availability for the booking's
	// (vehicle, time label) pair and inserts the record, or fails with
	// domain.ErrCapacityExceeded without committing anything.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByRef(ctx context.Context, ref string) (*domain.Booking, error)
	ListByPassenger(ctx context.Context, passengerID string) ([]*domain.Booking, error)
	ListByDriver(ctx context.Context, driverID string) ([]*domain.Booking, error)
	ListPaid(ctx context.Context) ([]*domain.Booking, error)
	AvailableSeats(ctx context.Context, vehicleID, timeLabel string) (int, error)

	MarkPaid(ctx context.Context, id string) error
	Cancel(ctx context.Context, id string, from domain.BookingStatus, by domain.CancelParty, reason string, fee float64) error
	RequestCancel(ctx context.Context, id, reason string) error
	RejectCancelRequest(ctx context.Context, id string) error
	MarkOnTheWay(ctx context.Context, id string) (bool, error)
	Complete(ctx context.Context, id string) error
	SetRating(ctx context.Context, id string, rating int, feedback string) error

	ExpireUnpaid(ctx context.Context, ttl time.Duration) ([]*domain.Booking, error)
	// ClaimAlert sets the one-shot flag for kind and reports whether this
	// call won the claim. At most one caller ever gets true per booking
	// per kind.
	ClaimAlert(ctx context.Context, id string, kind domain.AlertKind) (bool, error)
}
