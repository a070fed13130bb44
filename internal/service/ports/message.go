package ports

import (
	"context"

	"github.com/Tellaman12/TaxiGo/internal/domain"
)

type MessageRepo interface {
	Append(ctx context.Context, m *domain.Message) error
	// ListByBooking returns the full log in publish order.
	ListByBooking(ctx context.Context, bookingID string) ([]*domain.Message, error)
	UnreadCount(ctx context.Context, bookingID, viewerID string) (int, error)
	UnreadTotal(ctx context.Context, viewerID string) (int, error)
	MarkRead(ctx context.Context, bookingID, viewerID string) error
}
