package session

import "vesselBooker/internal/booking"

// nextSortState is the three-state cycle behind column-header clicks:
// a fresh column starts ascending, a second click flips to descending,
// a third click clears the sort back to original order.
func nextSortState(current booking.SortSpec, clicked booking.Column) booking.SortSpec {
	if current.Column != clicked {
		return booking.SortSpec{Column: clicked, Direction: booking.Asc}
	}

	switch current.Direction {
	case booking.Asc:
		return booking.SortSpec{Column: clicked, Direction: booking.Desc}
	case booking.Desc:
		return booking.SortSpec{}
	}

	return booking.SortSpec{Column: clicked, Direction: booking.Asc}
}
