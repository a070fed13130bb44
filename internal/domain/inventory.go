package domain

// AvailableSeats computes how many seats remain on a vehicle for one
// departure-time label: capacity minus the seats of every non-cancelled
// booking at that label. Pure; callers must pass bookings read at the same
// logical instant as the write the result guards.
func AvailableSeats(capacity int, bookings []*Booking, timeLabel string) int {
	used := 0
	for _, b := range bookings {
		if b.TimeLabel != timeLabel || b.Status == BookingStatusCancelled {
			continue
		}
		used += b.Seats
	}
	if used >= capacity {
		return 0
	}
	return capacity - used
}
