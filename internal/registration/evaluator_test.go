package registration_test

import (
	"testing"
	"time"

	"go-gin-event-portal/internal/model"
	"go-gin-event-portal/internal/registration"

	"github.com/stretchr/testify/assert"
)

func TestIsRegistrationClosed(t *testing.T) {
	cutoff := model.MustParseDate("2024-01-10")

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"day after cutoff", time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC), true},
		{"exactly at cutoff", time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), false},
		{"just after cutoff instant", time.Date(2024, 1, 10, 0, 0, 1, 0, time.UTC), true},
		{"before cutoff", time.Date(2024, 1, 9, 23, 59, 59, 0, time.UTC), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, registration.IsRegistrationClosed(cutoff, tt.now))
		})
	}
}

func TestAttendeeCapacityLabel(t *testing.T) {
	assert.Equal(t, "1 Attendee", registration.AttendeeCapacityLabel(1))
	assert.Equal(t, "50 Attendees", registration.AttendeeCapacityLabel(50))
	assert.Equal(t, "0 Attendees", registration.AttendeeCapacityLabel(0))
}

func TestEvaluate(t *testing.T) {
	now := time.Date(2024, 1, 5, 12, 0, 0, 0, time.UTC)
	event := model.Event{
		Capacity:       10,
		RemainingSpots: 3,
		EventDate:      model.MustParseDate("2024-01-20"),
		CutoffDate:     model.MustParseDate("2024-01-10"),
	}

	t.Run("Open", func(t *testing.T) {
		st := registration.Evaluate(event, now)
		assert.False(t, st.Closed)
		assert.False(t, st.Full)
		assert.True(t, st.CanRegister)
		assert.Equal(t, "10 Attendees", st.CapacityLabel)
		assert.True(t, registration.IsUpcoming(event, now))
	})

	t.Run("Full", func(t *testing.T) {
		full := event
		full.RemainingSpots = 0
		st := registration.Evaluate(full, now)
		assert.True(t, st.Full)
		assert.False(t, st.CanRegister)
	})

	t.Run("Closed", func(t *testing.T) {
		later := time.Date(2024, 1, 11, 0, 0, 0, 0, time.UTC)
		st := registration.Evaluate(event, later)
		assert.True(t, st.Closed)
		assert.False(t, st.CanRegister)
	})

	t.Run("Past event is not upcoming", func(t *testing.T) {
		assert.False(t, registration.IsUpcoming(event, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)))
	})
}
