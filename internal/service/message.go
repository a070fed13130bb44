package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Tellaman12/TaxiGo/internal/bus"
	"github.com/Tellaman12/TaxiGo/internal/domain"
	"github.com/Tellaman12/TaxiGo/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

// MessageService owns the per-booking communication log: durable append in
// the repo first, then live fan-out through the bus. It also implements
// ports.MessagePublisher for the lifecycle engine.
type MessageService struct {
	messageRepo ports.MessageRepo
	bookingRepo ports.BookingRepo
	bus         *bus.Bus
	logger      logger.Logger
}

func NewMessageService(
	messageRepo ports.MessageRepo,
	bookingRepo ports.BookingRepo,
	bus *bus.Bus,
	logger logger.Logger,
) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		bookingRepo: bookingRepo,
		bus:         bus,
		logger:      logger,
	}
}

// Send appends a free-text message from one of the booking's parties.
func (s *MessageService) Send(ctx context.Context, bookingID, senderID, body string) (*domain.Message, error) {
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("%w: message body is required", domain.ErrValidation)
	}

	sender, err := s.senderParty(ctx, bookingID, senderID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		SenderID:   senderID,
		SenderName: sender,
		Body:       strings.TrimSpace(body),
		Kind:       domain.MessageKindText,
		CreatedAt:  time.Now().UTC(),
	}

	if err = s.messageRepo.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("append message: %w", err)
	}
	s.bus.Publish(msg)

	return msg, nil
}

// SendAlert appends one of the predefined quick alerts.
func (s *MessageService) SendAlert(ctx context.Context, bookingID, senderID string, alert domain.AlertType) (*domain.Message, error) {
	if !alert.Valid() {
		return nil, fmt.Errorf("%w: unknown alert type %q", domain.ErrValidation, alert)
	}

	sender, err := s.senderParty(ctx, bookingID, senderID)
	if err != nil {
		return nil, err
	}

	msg := &domain.Message{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		SenderID:   senderID,
		SenderName: sender,
		Body:       alertBody(alert),
		Kind:       domain.MessageKindAlert,
		Alert:      alert,
		CreatedAt:  time.Now().UTC(),
	}

	if err = s.messageRepo.Append(ctx, msg); err != nil {
		return nil, fmt.Errorf("append alert: %w", err)
	}
	s.bus.Publish(msg)

	return msg, nil
}

// PublishStatus implements ports.MessagePublisher for lifecycle transitions.
// No party check: the lifecycle engine has already authorized the actor.
func (s *MessageService) PublishStatus(ctx context.Context, bookingID, senderID, senderName, body, status string) error {
	msg := &domain.Message{
		ID:          uuid.New().String(),
		BookingID:   bookingID,
		SenderID:    senderID,
		SenderName:  senderName,
		Body:        body,
		Kind:        domain.MessageKindStatus,
		StatusValue: status,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.messageRepo.Append(ctx, msg); err != nil {
		return fmt.Errorf("append status message: %w", err)
	}
	s.bus.Publish(msg)

	return nil
}

// PublishAlert implements ports.MessagePublisher.
func (s *MessageService) PublishAlert(ctx context.Context, bookingID, senderID, senderName string, alert domain.AlertType, body string) error {
	msg := &domain.Message{
		ID:         uuid.New().String(),
		BookingID:  bookingID,
		SenderID:   senderID,
		SenderName: senderName,
		Body:       body,
		Kind:       domain.MessageKindAlert,
		Alert:      alert,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.messageRepo.Append(ctx, msg); err != nil {
		return fmt.Errorf("append alert message: %w", err)
	}
	s.bus.Publish(msg)

	return nil
}

// GetMessages returns the full ordered log for one of the booking's parties.
// Callers that also subscribe must fetch first, then subscribe, and drop any
// live message whose id they already have.
func (s *MessageService) GetMessages(ctx context.Context, bookingID, viewerID string) ([]*domain.Message, error) {
	if _, err := s.senderParty(ctx, bookingID, viewerID); err != nil {
		return nil, err
	}
	return s.messageRepo.ListByBooking(ctx, bookingID)
}

// Subscribe registers a live handler for one booking. No replay.
func (s *MessageService) Subscribe(bookingID string, h bus.Handler) func() {
	return s.bus.Subscribe(bookingID, h)
}

func (s *MessageService) UnreadCount(ctx context.Context, bookingID, viewerID string) (int, error) {
	return s.messageRepo.UnreadCount(ctx, bookingID, viewerID)
}

// UnreadTotal backs the navigation badge. Idempotent; recomputed on every
// poll with no one-shot semantics.
func (s *MessageService) UnreadTotal(ctx context.Context, viewerID string) (int, error) {
	return s.messageRepo.UnreadTotal(ctx, viewerID)
}

func (s *MessageService) MarkRead(ctx context.Context, bookingID, viewerID string) error {
	if err := s.messageRepo.MarkRead(ctx, bookingID, viewerID); err != nil {
		return fmt.Errorf("mark read: %w", err)
	}
	return nil
}

// senderParty checks the user is one of the booking's two parties and
// returns their display name.
func (s *MessageService) senderParty(ctx context.Context, bookingID, userID string) (string, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return "", fmt.Errorf("get booking: %w", err)
	}
	switch userID {
	case booking.PassengerID:
		return booking.PassengerName, nil
	case booking.DriverID:
		return booking.DriverName, nil
	}
	return "", domain.ErrBookingNotFound
}

func alertBody(alert domain.AlertType) string {
	switch alert {
	case domain.AlertArrived:
		return "I've arrived at the pickup location"
	case domain.AlertWaiting:
		return "I'm waiting for you at the pickup point"
	case domain.AlertDelayed:
		return "I'm running a few minutes late, please wait"
	case domain.AlertUrgent:
		return "Urgent: please contact me immediately"
	case domain.AlertCancelled:
		return "Booking cancelled"
	}
	return string(alert)
}
