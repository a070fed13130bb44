package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	assert.Equal(t, 12.0, Round2(12.0))
	assert.Equal(t, 12.35, Round2(12.345))
	assert.Equal(t, 0.1, Round2(0.1))
	assert.Equal(t, 33.33, Round2(99.99*1.0/3.0))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "R120.00", FormatMoney(120))
	assert.Equal(t, "R12.35", FormatMoney(12.345))
}

func TestCancellationFeeDue(t *testing.T) {
	b := &Booking{Total: 120}
	assert.Equal(t, 12.0, b.CancellationFeeDue())

	b = &Booking{Total: 99.99}
	assert.Equal(t, 10.0, b.CancellationFeeDue())

	b = &Booking{Total: 33.35}
	assert.Equal(t, 3.34, b.CancellationFeeDue())
}

func TestTerminal(t *testing.T) {
	assert.True(t, BookingStatusCancelled.Terminal())
	assert.True(t, BookingStatusCompleted.Terminal())
	assert.False(t, BookingStatusUnpaid.Terminal())
	assert.False(t, BookingStatusPaid.Terminal())
	assert.False(t, BookingStatusCancelRequested.Terminal())
}
