package models_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vesselBooker/internal/models"
)

func TestStatusValid(t *testing.T) {
	t.Parallel()

	assert.True(t, models.StatusPending.Valid())
	assert.True(t, models.StatusConfirmed.Valid())
	assert.True(t, models.StatusCancelled.Valid())
	assert.False(t, models.Status("").Valid())
	assert.False(t, models.Status("archived").Valid())
}

func TestBookingDuration(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		booking  models.Booking
		expected int
	}{
		{
			name:     "Five whole days",
			booking:  models.Booking{StartDate: "2026-09-10", EndDate: "2026-09-15"},
			expected: 5,
		},
		{
			name:     "Single day",
			booking:  models.Booking{StartDate: "2026-09-10", EndDate: "2026-09-11"},
			expected: 1,
		},
		{
			name:     "Equal dates",
			booking:  models.Booking{StartDate: "2026-09-10", EndDate: "2026-09-10"},
			expected: 0,
		},
		{
			name:     "Reversed dates use the absolute difference",
			booking:  models.Booking{StartDate: "2026-09-15", EndDate: "2026-09-10"},
			expected: 5,
		},
		{
			name:     "Across a month boundary",
			booking:  models.Booking{StartDate: "2026-09-28", EndDate: "2026-10-03"},
			expected: 5,
		},
		{
			name:     "Unparseable date yields zero",
			booking:  models.Booking{StartDate: "not-a-date", EndDate: "2026-09-10"},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, tc.booking.Duration())
		})
	}
}
