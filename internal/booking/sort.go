package booking

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"vesselBooker/internal/models"
)

type Column string

const (
	ColumnID        Column = "id"
	ColumnCustomer  Column = "customer"
	ColumnVessel    Column = "vessel"
	ColumnStatus    Column = "status"
	ColumnStartDate Column = "startDate"
	ColumnEndDate   Column = "endDate"
	ColumnDuration  Column = "duration"
)

func (c Column) Valid() bool {
	switch c {
	case ColumnID, ColumnCustomer, ColumnVessel, ColumnStatus,
		ColumnStartDate, ColumnEndDate, ColumnDuration:
		return true
	}
	return false
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// SortSpec is a single-column ordering. The zero value means "no sort,
// original order".
type SortSpec struct {
	Column    Column    `json:"column,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

// Sort returns a copy of the bookings ordered by the spec. The sort is
// stable, so ties keep their insertion order, and an empty spec returns
// the original order untouched.
func Sort(bookings []models.Booking, spec SortSpec) []models.Booking {
	result := make([]models.Booking, len(bookings))
	copy(result, bookings)

	if spec.Column == "" || spec.Direction == "" {
		return result
	}

	sort.SliceStable(result, func(i, j int) bool {
		cmp := compare(result[i], result[j], spec.Column)
		if spec.Direction == Desc {
			return cmp > 0
		}
		return cmp < 0
	})

	return result
}

func compare(a, b models.Booking, column Column) int {
	switch column {
	case ColumnID:
		return idSuffix(a.ID) - idSuffix(b.ID)
	case ColumnCustomer:
		return strings.Compare(strings.ToLower(a.Customer), strings.ToLower(b.Customer))
	case ColumnVessel:
		return strings.Compare(strings.ToLower(a.Vessel), strings.ToLower(b.Vessel))
	case ColumnStatus:
		return strings.Compare(strings.ToLower(string(a.Status)), strings.ToLower(string(b.Status)))
	case ColumnStartDate:
		// ISO dates order correctly as strings.
		return strings.Compare(a.StartDate, b.StartDate)
	case ColumnEndDate:
		return strings.Compare(a.EndDate, b.EndDate)
	case ColumnDuration:
		return a.Duration() - b.Duration()
	}
	return 0
}

var nonDigits = regexp.MustCompile(`\D`)

func idSuffix(id string) int {
	n, err := strconv.Atoi(nonDigits.ReplaceAllString(id, ""))
	if err != nil {
		return 0
	}
	return n
}
