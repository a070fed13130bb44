package domain

import (
	"regexp"
	"time"
)

var timeLabelRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):([0-5][0-9])$`)

// ValidTimeLabel reports whether label is a well-formed HH:MM 24-hour time.
func ValidTimeLabel(label string) bool {
	return timeLabelRe.MatchString(label)
}

// DepartureToday interprets an HH:MM label against the date of now.
// Malformed labels return ok=false and are skipped by callers.
func DepartureToday(label string, now time.Time) (time.Time, bool) {
	if !timeLabelRe.MatchString(label) {
		return time.Time{}, false
	}
	parsed, err := time.Parse("15:04", label)
	if err != nil {
		return time.Time{}, false
	}
	d := time.Date(now.Year(), now.Month(), now.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, now.Location())
	return d, true
}

// MinutesUntilDeparture is negative for labels already in the past today.
func MinutesUntilDeparture(label string, now time.Time) (int, bool) {
	departure, ok := DepartureToday(label, now)
	if !ok {
		return 0, false
	}
	return int(departure.Sub(now) / time.Minute), true
}

type AlertKind string

const (
	AlertKind30Min    AlertKind = "alert30"
	AlertKind15Min    AlertKind = "alert15"
	AlertKindOnTheWay AlertKind = "on_the_way"
)

// Alert windows: a countdown alert fires only while minutes-left is inside
// its (lower, upper] band, so a label already passed never alerts.
const (
	alert30Upper = 30
	alert30Lower = 20
	alert15Upper = 15
	alert15Lower = 5
)

// DueAlerts returns the one-shot alerts a PAID booking is due for at now,
// respecting the sent flags. The on-the-way alert is not time-based; it is
// due once the driver sub-status is set.
func (b *Booking) DueAlerts(now time.Time) []AlertKind {
	if b.Status != BookingStatusPaid {
		return nil
	}

	var due []AlertKind
	if mins, ok := MinutesUntilDeparture(b.TimeLabel, now); ok {
		if !b.Alert30Sent && mins > alert30Lower && mins <= alert30Upper {
			due = append(due, AlertKind30Min)
		}
		if !b.Alert15Sent && mins > alert15Lower && mins <= alert15Upper {
			due = append(due, AlertKind15Min)
		}
	}
	if !b.OnTheWayAlertSent && b.DriverStatus == DriverStatusOnTheWay {
		due = append(due, AlertKindOnTheWay)
	}

	return due
}
