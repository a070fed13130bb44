package ports

import (
	"context"

	"github.com/Tellaman12/TaxiGo/internal/domain"
)

// MessagePublisher appends lifecycle-generated messages to a booking's log
// and fans them out to live subscribers. Publishing is best-effort relative
// to the lifecycle commit: a failure is logged by the caller, never rolled
// back into the transition.
type MessagePublisher interface {
	PublishStatus(ctx context.Context, bookingID, senderID, senderName, body, status string) error
	PublishAlert(ctx context.Context, bookingID, senderID, senderName string, alert domain.AlertType, body string) error
}
