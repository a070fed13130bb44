package domain

import "time"

type MessageKind string

const (
	MessageKindText   MessageKind = "text"
	MessageKindAlert  MessageKind = "alert"
	MessageKindStatus MessageKind = "status"
)

// AlertType is the closed set of predefined quick alerts a driver or
// passenger can send on an active booking.
type AlertType string

const (
	AlertArrived   AlertType = "arrived"
	AlertWaiting   AlertType = "waiting"
	AlertDelayed   AlertType = "delayed"
	AlertUrgent    AlertType = "urgent"
	AlertCancelled AlertType = "cancelled"
)

func (a AlertType) Valid() bool {
	switch a {
	case AlertArrived, AlertWaiting, AlertDelayed, AlertUrgent, AlertCancelled:
		return true
	}
	return false
}

// Message is one entry in a booking's append-only communication log.
// Alert is set only for kind=alert, StatusValue only for kind=status.
type Message struct {
	ID          string      `json:"id"`
	BookingID   string      `json:"booking_id"`
	SenderID    string      `json:"sender_id"`
	SenderName  string      `json:"sender_name"`
	Body        string      `json:"body"`
	Kind        MessageKind `json:"kind"`
	Alert       AlertType   `json:"alert,omitempty"`
	StatusValue string      `json:"status,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
}
