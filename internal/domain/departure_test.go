package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidTimeLabel(t *testing.T) {
	assert.True(t, ValidTimeLabel("00:00"))
	assert.True(t, ValidTimeLabel("07:30"))
	assert.True(t, ValidTimeLabel("23:59"))

	assert.False(t, ValidTimeLabel("24:00"))
	assert.False(t, ValidTimeLabel("7:30"))
	assert.False(t, ValidTimeLabel("07:60"))
	assert.False(t, ValidTimeLabel("0730"))
	assert.False(t, ValidTimeLabel(""))
}

func TestMinutesUntilDeparture(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)

	mins, ok := MinutesUntilDeparture("07:30", now)
	require.True(t, ok)
	assert.Equal(t, 30, mins)

	mins, ok = MinutesUntilDeparture("06:00", now)
	require.True(t, ok)
	assert.Equal(t, -60, mins)

	_, ok = MinutesUntilDeparture("garbage", now)
	assert.False(t, ok)
}

func TestDueAlerts_30MinWindow(t *testing.T) {
	b := &Booking{Status: BookingStatusPaid, TimeLabel: "08:00"}

	// 30 minutes out: inside (20, 30]
	now := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, []AlertKind{AlertKind30Min}, b.DueAlerts(now))

	// 20 minutes out: window already closed
	now = time.Date(2025, 3, 10, 7, 40, 0, 0, time.UTC)
	assert.Empty(t, b.DueAlerts(now))

	// 31 minutes out: not yet
	now = time.Date(2025, 3, 10, 7, 29, 0, 0, time.UTC)
	assert.Empty(t, b.DueAlerts(now))
}

func TestDueAlerts_15MinWindow(t *testing.T) {
	b := &Booking{Status: BookingStatusPaid, TimeLabel: "08:00"}

	now := time.Date(2025, 3, 10, 7, 50, 0, 0, time.UTC)
	assert.Equal(t, []AlertKind{AlertKind15Min}, b.DueAlerts(now))

	// 5 minutes out: window closed
	now = time.Date(2025, 3, 10, 7, 55, 0, 0, time.UTC)
	assert.Empty(t, b.DueAlerts(now))
}

func TestDueAlerts_SentFlagsSuppress(t *testing.T) {
	b := &Booking{
		Status:      BookingStatusPaid,
		TimeLabel:   "08:00",
		Alert30Sent: true,
	}

	now := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)
	assert.Empty(t, b.DueAlerts(now))
}

func TestDueAlerts_OnTheWay(t *testing.T) {
	b := &Booking{
		Status:       BookingStatusPaid,
		TimeLabel:    "08:00",
		DriverStatus: DriverStatusOnTheWay,
	}

	// far from departure, still due: not time-based
	now := time.Date(2025, 3, 10, 5, 0, 0, 0, time.UTC)
	assert.Equal(t, []AlertKind{AlertKindOnTheWay}, b.DueAlerts(now))

	b.OnTheWayAlertSent = true
	assert.Empty(t, b.DueAlerts(now))
}

func TestDueAlerts_OnlyPaid(t *testing.T) {
	now := time.Date(2025, 3, 10, 7, 30, 0, 0, time.UTC)

	for _, status := range []BookingStatus{
		BookingStatusUnpaid,
		BookingStatusCancelRequested,
		BookingStatusCancelled,
		BookingStatusCompleted,
	} {
		b := &Booking{Status: status, TimeLabel: "08:00", DriverStatus: DriverStatusOnTheWay}
		assert.Empty(t, b.DueAlerts(now), "status %s", status)
	}
}

func TestDueAlerts_PastLabelNeverAlerts(t *testing.T) {
	b := &Booking{Status: BookingStatusPaid, TimeLabel: "06:00"}

	now := time.Date(2025, 3, 10, 7, 0, 0, 0, time.UTC)
	assert.Empty(t, b.DueAlerts(now))
}
