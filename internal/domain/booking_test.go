package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBooking_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   BookingStatus
		target BookingStatus
		want   bool
	}{
		{name: "pending to confirmed", from: StatusPending, target: StatusConfirmed, want: true},
		{name: "pending to cancelled", from: StatusPending, target: StatusCancelled, want: true},
		{name: "pending to completed", from: StatusPending, target: StatusCompleted, want: true},
		{name: "confirmed to cancelled", from: StatusConfirmed, target: StatusCancelled, want: true},
		{name: "confirmed to completed", from: StatusConfirmed, target: StatusCompleted, want: true},
		{name: "confirmed to confirmed", from: StatusConfirmed, target: StatusConfirmed, want: false},
		{name: "cancelled is terminal", from: StatusCancelled, target: StatusConfirmed, want: false},
		{name: "cancelled to completed", from: StatusCancelled, target: StatusCompleted, want: false},
		{name: "completed is terminal", from: StatusCompleted, target: StatusCancelled, want: false},
		{name: "no transition to pending", from: StatusConfirmed, target: StatusPending, want: false},
		{name: "unknown target", from: StatusPending, target: BookingStatus("archived"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			assert.Equal(t, tt.want, b.CanTransitionTo(tt.target))
		})
	}
}

func TestBooking_CanBeDeleted(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).CanBeDeleted())
	assert.False(t, (&Booking{Status: StatusConfirmed}).CanBeDeleted())
	assert.True(t, (&Booking{Status: StatusCancelled}).CanBeDeleted())
	assert.True(t, (&Booking{Status: StatusCompleted}).CanBeDeleted())
}

func TestBooking_IsActive(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsActive())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsActive())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsActive())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsActive())
}

func TestParseBookingStatus(t *testing.T) {
	for _, valid := range []string{"pending", "confirmed", "cancelled", "completed"} {
		status, ok := ParseBookingStatus(valid)
		assert.True(t, ok, valid)
		assert.Equal(t, BookingStatus(valid), status)
	}

	_, ok := ParseBookingStatus("PENDING")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("deleted")
	assert.False(t, ok)

	_, ok = ParseBookingStatus("")
	assert.False(t, ok)
}
