package models

import (
	"math"
	"time"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking dates are ISO calendar dates ("2006-01-02") without a time component.
type Booking struct {
	ID        string `json:"id"`
	Customer  string `json:"customer"`
	Vessel    string `json:"vessel"`
	Status    Status `json:"status"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// Draft is the user-supplied input for creating or editing a booking.
// Status is optional and defaults to pending on create.
type Draft struct {
	Customer  string `json:"customer"`
	Vessel    string `json:"vessel"`
	Status    Status `json:"status,omitempty"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

const dateLayout = "2006-01-02"

// ParseDate parses an ISO calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// Duration returns the booking length in whole days: the absolute
// millisecond difference between the two dates divided by 86,400,000,
// rounded up. Unparseable dates yield 0.
func (b Booking) Duration() int {
	start, err := ParseDate(b.StartDate)
	if err != nil {
		return 0
	}
	end, err := ParseDate(b.EndDate)
	if err != nil {
		return 0
	}

	ms := math.Abs(float64(end.Sub(start).Milliseconds()))

	return int(math.Ceil(ms / 86_400_000))
}
