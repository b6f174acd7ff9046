// Package registration derives the registration window and capacity state of an event.
package registration

import (
	"fmt"
	"time"

	"go-gin-event-portal/internal/model"
)

// IsRegistrationClosed reports whether now is past the stored cutoff instant.
// The cutoff itself is still open.
func IsRegistrationClosed(cutoff model.Date, now time.Time) bool {
	return now.After(cutoff.Time)
}

// AttendeeCapacityLabel renders a capacity, e.g. "1 Attendee" or "50 Attendees".
func AttendeeCapacityLabel(capacity int) string {
	if capacity == 1 {
		return "1 Attendee"
	}
	return fmt.Sprintf("%d Attendees", capacity)
}

func HasSpots(event model.Event) bool {
	return event.RemainingSpots > 0
}

// CanRegister is true while the window is open and spots remain.
func CanRegister(event model.Event, now time.Time) bool {
	return !IsRegistrationClosed(event.CutoffDate, now) && HasSpots(event)
}

// IsUpcoming reports whether the event date is still ahead.
func IsUpcoming(event model.Event, now time.Time) bool {
	return event.EventDate.After(now)
}

// Status summarises an event for display.
type Status struct {
	Closed        bool   `json:"registrationClosed"`
	Full          bool   `json:"full"`
	CanRegister   bool   `json:"canRegister"`
	CapacityLabel string `json:"capacityLabel"`
}

func Evaluate(event model.Event, now time.Time) Status {
	closed := IsRegistrationClosed(event.CutoffDate, now)
	return Status{
		Closed:        closed,
		Full:          !HasSpots(event),
		CanRegister:   !closed && HasSpots(event),
		CapacityLabel: AttendeeCapacityLabel(event.Capacity),
	}
}
