package ports

import (
	"context"

	"github.com/Tellaman12/TaxiGo/internal/domain"
)

type Notifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingPaid(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyOnTheWay(ctx context.Context, user *domain.User, b *domain.Booking)
	NotifyDeparture(ctx context.Context, user *domain.User, b *domain.Booking, minutes int)
}
