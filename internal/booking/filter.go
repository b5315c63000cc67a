// Package booking holds the pure collection logic of the booking
// manager: filtering, sorting and draft validation. Nothing here touches
// storage or performs I/O.
package booking

import (
	"strings"

	"vesselBooker/internal/models"
)

type DateRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// FilterSpec narrows the visible collection. The empty string means "no
// constraint" for every field.
type FilterSpec struct {
	CustomerName string        `json:"customerName"`
	Status       models.Status `json:"status"`
	DateRange    DateRange     `json:"dateRange"`
}

// Filter returns the bookings matching every set constraint, in their
// original order. The input slice is never modified.
//
// The date range only applies when BOTH ends are set; a one-sided range
// filters nothing. That is the behavior the rest of the system depends
// on, keep it.
func Filter(bookings []models.Booking, spec FilterSpec) []models.Booking {
	result := make([]models.Booking, 0, len(bookings))

	name := strings.ToLower(spec.CustomerName)

	for _, b := range bookings {
		if name != "" && !strings.Contains(strings.ToLower(b.Customer), name) {
			continue
		}

		if spec.Status != "" && b.Status != spec.Status {
			continue
		}

		if spec.DateRange.Start != "" && spec.DateRange.End != "" {
			// ISO dates order correctly as strings. Overlap of
			// [b.StartDate, b.EndDate] with the filter interval.
			if b.EndDate < spec.DateRange.Start || b.StartDate > spec.DateRange.End {
				continue
			}
		}

		result = append(result, b)
	}

	return result
}
