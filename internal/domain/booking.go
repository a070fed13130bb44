package domain

import "time"

type BookingStatus string

const (
	BookingStatusUnpaid          BookingStatus = "UNPAID"
	BookingStatusPaid            BookingStatus = "PAID"
	BookingStatusCancelRequested BookingStatus = "CANCEL_REQUESTED"
	BookingStatusCancelled       BookingStatus = "CANCELLED"
	BookingStatusCompleted       BookingStatus = "COMPLETED"
)

// SeatHoldingStatuses are the statuses that count against vehicle capacity.
// Every status except CANCELLED holds its seats.
var SeatHoldingStatuses = []BookingStatus{
	BookingStatusUnpaid,
	BookingStatusPaid,
	BookingStatusCancelRequested,
	BookingStatusCompleted,
}

func (s BookingStatus) Terminal() bool {
	return s == BookingStatusCancelled || s == BookingStatusCompleted
}

type DriverStatus string

const DriverStatusOnTheWay DriverStatus = "ON_THE_WAY"

type CancelParty string

const (
	CancelPartyPassenger CancelParty = "passenger"
	CancelPartyDriver    CancelParty = "driver"
	CancelPartySystem    CancelParty = "system"
)

type PickupType string

const (
	PickupTypeRank PickupType = "rank"
	PickupTypeHike PickupType = "hike"
)

// CancellationFeeRate applies only to the direct passenger cancellation of a
// paid booking and to an approved cancellation request.
const CancellationFeeRate = 0.10

type Booking struct {
	ID             string `json:"id"`
	Ref            string `json:"ref"`
	VehicleID      string `json:"vehicle_id"`
	TaxiName       string `json:"taxi_name"`
	DriverID       string `json:"driver_id"`
	DriverName     string `json:"driver_name"`
	PassengerID    string `json:"passenger_id"`
	PassengerName  string `json:"passenger_name"`
	PassengerEmail string `json:"passenger_email"`
	PassengerPhone string `json:"passenger_phone"`
	Origin         string `json:"origin"`
	Dest           string `json:"dest"`
	TimeLabel      string `json:"time"`
	Seats          int    `json:"seats"`
	// Total is the vehicle price at booking time multiplied by seats.
	// It is a snapshot, not live-linked to the vehicle.
	Total      float64    `json:"total"`
	PickupType PickupType `json:"pickup_type"`
	PickupAt   string     `json:"pickup_location"`

	Status       BookingStatus `json:"status"`
	DriverStatus DriverStatus  `json:"driver_status,omitempty"`

	CancellationReason  string      `json:"cancellation_reason,omitempty"`
	CancellationFee     float64     `json:"cancellation_fee,omitempty"`
	CancelledBy         CancelParty `json:"cancelled_by,omitempty"`
	CancelRequestReason string      `json:"cancel_request_reason,omitempty"`

	Rating   int    `json:"rating,omitempty"`
	Feedback string `json:"feedback,omitempty"`

	Alert30Sent       bool `json:"alert30_sent"`
	Alert15Sent       bool `json:"alert15_sent"`
	OnTheWayAlertSent bool `json:"on_the_way_alert_sent"`

	CreatedAt         time.Time  `json:"created_at"`
	PaidAt            *time.Time `json:"paid_at,omitempty"`
	OnTheWayAt        *time.Time `json:"on_the_way_at,omitempty"`
	CancelRequestedAt *time.Time `json:"cancel_requested_at,omitempty"`
	CancelledAt       *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	RatedAt           *time.Time `json:"rated_at,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// CancellationFeeDue computes the 10% fee charged on the direct paid
// cancellation path. Rounding happens here, not earlier.
func (b *Booking) CancellationFeeDue() float64 {
	return Round2(b.Total * CancellationFeeRate)
}

type CreateBookingInput struct {
	VehicleID   string
	PassengerID string
	TimeLabel   string
	Seats       int
	PickupType  PickupType
	PickupAt    string
}
