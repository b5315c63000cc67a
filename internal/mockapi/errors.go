package mockapi

import "errors"

// ErrNotFound is the deterministic failure for update/delete against an
// id that is not in the store. Retrying will not change the outcome.
var ErrNotFound = errors.New("booking not found")

// NetworkError is the simulated transport failure. It is random, carries
// a fixed per-operation message, and is always safe to retry.
type NetworkError struct {
	Op      string
	Message string
}

func (e *NetworkError) Error() string {
	return e.Message
}

const (
	msgFetchFailed  = "Failed to fetch bookings. Please try again."
	msgCreateFailed = "Failed to create booking. Please try again."
	msgUpdateFailed = "Failed to update booking. Please try again."
	msgDeleteFailed = "Failed to delete booking. Please try again."
)
