package mockapi

import (
	"log/slog"
	"math/rand"
	"regexp"
	"strconv"
	"time"

	"vesselBooker/internal/models"
)

// Store is the persistence surface the client drives. Load never fails
// and Save swallows its own errors, mirroring the local-storage slot the
// original client wrote to.
type Store interface {
	Load() []models.Booking
	Save(bookings []models.Booking)
}

// Rand is the injectable probability source for the failure roll.
type Rand interface {
	Float64() float64
}

// Client emulates a remote booking API over local storage: every
// operation sleeps for a configured latency, then rolls an independent
// failure chance, then does its work. Failed operations never touch the
// store.
type Client struct {
	store         Store
	log           *slog.Logger
	latency       time.Duration
	createLatency time.Duration
	failureRate   float64
	rnd           Rand
}

type Options struct {
	Latency       time.Duration
	CreateLatency time.Duration
	FailureRate   float64
	Rand          Rand
}

func New(store Store, log *slog.Logger, opts Options) *Client {
	rnd := opts.Rand
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	return &Client{
		store:         store,
		log:           log,
		latency:       opts.Latency,
		createLatency: opts.CreateLatency,
		failureRate:   opts.FailureRate,
		rnd:           rnd,
	}
}

// Fields is a partial update: nil means "leave the stored value alone".
type Fields struct {
	Customer  *string        `json:"customer,omitempty"`
	Vessel    *string        `json:"vessel,omitempty"`
	Status    *models.Status `json:"status,omitempty"`
	StartDate *string        `json:"startDate,omitempty"`
	EndDate   *string        `json:"endDate,omitempty"`
}

// List returns the full current collection.
func (c *Client) List() ([]models.Booking, error) {
	time.Sleep(c.latency)

	if c.rollFailed() {
		return nil, &NetworkError{Op: "list", Message: msgFetchFailed}
	}

	return c.store.Load(), nil
}

// Create assigns the next id, defaults the status to pending and
// persists the new record.
func (c *Client) Create(draft models.Draft) (models.Booking, error) {
	time.Sleep(c.createLatency)

	if c.rollFailed() {
		return models.Booking{}, &NetworkError{Op: "create", Message: msgCreateFailed}
	}

	bookings := c.store.Load()

	status := draft.Status
	if status == "" {
		status = models.StatusPending
	}

	booking := models.Booking{
		ID:        nextID(bookings),
		Customer:  draft.Customer,
		Vessel:    draft.Vessel,
		Status:    status,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
	}

	bookings = append(bookings, booking)
	c.store.Save(bookings)

	c.log.Debug("booking created", slog.String("id", booking.ID))

	return booking, nil
}

// Update merges the set fields into the stored record. The not-found
// check runs after the failure roll has passed: it is a deterministic
// logical failure, not a simulated network one.
func (c *Client) Update(id string, fields Fields) (models.Booking, error) {
	time.Sleep(c.latency)

	if c.rollFailed() {
		return models.Booking{}, &NetworkError{Op: "update", Message: msgUpdateFailed}
	}

	bookings := c.store.Load()

	for i, b := range bookings {
		if b.ID != id {
			continue
		}

		if fields.Customer != nil {
			b.Customer = *fields.Customer
		}
		if fields.Vessel != nil {
			b.Vessel = *fields.Vessel
		}
		if fields.Status != nil {
			b.Status = *fields.Status
		}
		if fields.StartDate != nil {
			b.StartDate = *fields.StartDate
		}
		if fields.EndDate != nil {
			b.EndDate = *fields.EndDate
		}

		bookings[i] = b
		c.store.Save(bookings)

		c.log.Debug("booking updated", slog.String("id", id))

		return b, nil
	}

	return models.Booking{}, ErrNotFound
}

// Delete removes the record with the matching id.
func (c *Client) Delete(id string) error {
	time.Sleep(c.latency)

	if c.rollFailed() {
		return &NetworkError{Op: "delete", Message: msgDeleteFailed}
	}

	bookings := c.store.Load()

	remaining := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			remaining = append(remaining, b)
		}
	}

	if len(remaining) == len(bookings) {
		return ErrNotFound
	}

	c.store.Save(remaining)

	c.log.Debug("booking deleted", slog.String("id", id))

	return nil
}

// Cancel, Confirm and RestoreToPending are status-transition shorthands
// over Update with no logic of their own.

func (c *Client) Cancel(id string) (models.Booking, error) {
	status := models.StatusCancelled
	return c.Update(id, Fields{Status: &status})
}

func (c *Client) Confirm(id string) (models.Booking, error) {
	status := models.StatusConfirmed
	return c.Update(id, Fields{Status: &status})
}

func (c *Client) RestoreToPending(id string) (models.Booking, error) {
	status := models.StatusPending
	return c.Update(id, Fields{Status: &status})
}

func (c *Client) rollFailed() bool {
	return c.rnd.Float64() < c.failureRate
}

var nonDigits = regexp.MustCompile(`\D`)

// nextID allocates "BK-" + (max existing numeric suffix, floor 1000) + 1,
// independent of the collection's order.
func nextID(bookings []models.Booking) string {
	max := 1000
	for _, b := range bookings {
		n, err := strconv.Atoi(nonDigits.ReplaceAllString(b.ID, ""))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	return "BK-" + strconv.Itoa(max+1)
}
