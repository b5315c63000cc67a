package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"vesselBooker/internal/booking"
)

func TestNextSortState(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		current  booking.SortSpec
		clicked  booking.Column
		expected booking.SortSpec
	}{
		{
			name:     "First click on a column sorts ascending",
			current:  booking.SortSpec{},
			clicked:  booking.ColumnCustomer,
			expected: booking.SortSpec{Column: booking.ColumnCustomer, Direction: booking.Asc},
		},
		{
			name:     "Second click flips to descending",
			current:  booking.SortSpec{Column: booking.ColumnCustomer, Direction: booking.Asc},
			clicked:  booking.ColumnCustomer,
			expected: booking.SortSpec{Column: booking.ColumnCustomer, Direction: booking.Desc},
		},
		{
			name:     "Third click clears the sort",
			current:  booking.SortSpec{Column: booking.ColumnCustomer, Direction: booking.Desc},
			clicked:  booking.ColumnCustomer,
			expected: booking.SortSpec{},
		},
		{
			name:     "Clicking a different column restarts at ascending",
			current:  booking.SortSpec{Column: booking.ColumnCustomer, Direction: booking.Desc},
			clicked:  booking.ColumnStatus,
			expected: booking.SortSpec{Column: booking.ColumnStatus, Direction: booking.Asc},
		},
		{
			name:     "Clicking after a clear starts ascending again",
			current:  booking.SortSpec{},
			clicked:  booking.ColumnDuration,
			expected: booking.SortSpec{Column: booking.ColumnDuration, Direction: booking.Asc},
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, nextSortState(tc.current, tc.clicked))
		})
	}
}
