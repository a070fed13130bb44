package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAvailableSeats_EmptyBookings(t *testing.T) {
	assert.Equal(t, 14, AvailableSeats(14, nil, "07:30"))
}

func TestAvailableSeats_SumsSeatsPerLabel(t *testing.T) {
	bookings := []*Booking{
		{TimeLabel: "07:30", Seats: 2, Status: BookingStatusPaid},
		{TimeLabel: "07:30", Seats: 1, Status: BookingStatusUnpaid},
		{TimeLabel: "09:00", Seats: 4, Status: BookingStatusPaid},
	}

	assert.Equal(t, 1, AvailableSeats(4, bookings, "07:30"))
	assert.Equal(t, 0, AvailableSeats(4, bookings, "09:00"))
	assert.Equal(t, 4, AvailableSeats(4, bookings, "12:00"))
}

func TestAvailableSeats_CancelledReleasesSeats(t *testing.T) {
	bookings := []*Booking{
		{TimeLabel: "07:30", Seats: 3, Status: BookingStatusCancelled},
		{TimeLabel: "07:30", Seats: 1, Status: BookingStatusPaid},
	}

	assert.Equal(t, 3, AvailableSeats(4, bookings, "07:30"))
}

func TestAvailableSeats_NonCancelledAllHold(t *testing.T) {
	// every non-cancelled status counts against capacity
	bookings := []*Booking{
		{TimeLabel: "07:30", Seats: 1, Status: BookingStatusUnpaid},
		{TimeLabel: "07:30", Seats: 1, Status: BookingStatusPaid},
		{TimeLabel: "07:30", Seats: 1, Status: BookingStatusCancelRequested},
		{TimeLabel: "07:30", Seats: 1, Status: BookingStatusCompleted},
	}

	assert.Equal(t, 0, AvailableSeats(4, bookings, "07:30"))
}

func TestAvailableSeats_FlooredAtZero(t *testing.T) {
	bookings := []*Booking{
		{TimeLabel: "07:30", Seats: 10, Status: BookingStatusPaid},
	}

	assert.Equal(t, 0, AvailableSeats(4, bookings, "07:30"))
}
