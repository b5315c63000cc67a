package session

import (
	"log/slog"
	"sync"

	"vesselBooker/internal/booking"
	"vesselBooker/internal/lib/logger/sl"
	"vesselBooker/internal/mockapi"
	"vesselBooker/internal/models"
)

// API is the data-access surface the controller drives.
//
//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=API
type API interface {
	List() ([]models.Booking, error)
	Create(draft models.Draft) (models.Booking, error)
	Update(id string, fields mockapi.Fields) (models.Booking, error)
	Delete(id string) error
}

// Controller is the single stateful piece of the booking manager. It
// holds the in-memory collection, the filter and sort state, and the
// loading/error flags, and mediates every operation between the
// presentation layer and the data-access layer.
//
// State is mutex-guarded because HTTP handlers run concurrently, but the
// data layer underneath still has the last-write-wins semantics of the
// original single-user client: two in-flight mutations of the same
// record may overwrite each other.
type Controller struct {
	api API
	log *slog.Logger

	mu      sync.Mutex
	all     []models.Booking
	visible []models.Booking
	filters booking.FilterSpec
	sort    booking.SortSpec
	loading bool
	lastErr string
}

// Result is how every operation reports its outcome. Failures never
// surface as panics or bare errors: the presentation layer renders the
// message (and, for validation failures, the per-field map) inline.
type Result struct {
	Success bool              `json:"success"`
	Error   string            `json:"error,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
	Booking *models.Booking   `json:"booking,omitempty"`
}

// View is a consistent snapshot of the controller state for rendering.
// Error is keyed "lastError" so the snapshot can be embedded next to a
// response envelope without clashing with its "error" field.
type View struct {
	Bookings []models.Booking   `json:"bookings"`
	Loading  bool               `json:"loading"`
	Error    string             `json:"lastError,omitempty"`
	Filters  booking.FilterSpec `json:"filters"`
	Sort     booking.SortSpec   `json:"sort"`
}

func New(api API, log *slog.Logger) *Controller {
	return &Controller{api: api, log: log}
}

// Refresh reloads the full collection from the data layer. On failure
// the previous collection is kept and the error is recorded for the
// view; the loading flag is cleared on every path.
func (c *Controller) Refresh() Result {
	const op = "session.Refresh"

	c.mu.Lock()
	c.loading = true
	c.lastErr = ""
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.loading = false
		c.mu.Unlock()
	}()

	bookings, err := c.api.List()
	if err != nil {
		c.log.Error("failed to load bookings", slog.String("op", op), sl.Err(err))

		c.mu.Lock()
		c.lastErr = err.Error()
		c.mu.Unlock()

		return Result{Success: false, Error: err.Error()}
	}

	c.mu.Lock()
	c.all = bookings
	c.recompute()
	c.mu.Unlock()

	c.log.Info("bookings loaded", slog.String("op", op), slog.Int("count", len(bookings)))

	return Result{Success: true}
}

// FilterPatch merges into the current filter spec; nil fields keep their
// current value.
type FilterPatch struct {
	CustomerName *string            `json:"customerName,omitempty"`
	Status       *models.Status     `json:"status,omitempty"`
	DateRange    *booking.DateRange `json:"dateRange,omitempty"`
}

// SetFilters merges the patch and recomputes the visible view. Purely
// local, no data-layer call.
func (c *Controller) SetFilters(patch FilterPatch) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if patch.CustomerName != nil {
		c.filters.CustomerName = *patch.CustomerName
	}
	if patch.Status != nil {
		c.filters.Status = *patch.Status
	}
	if patch.DateRange != nil {
		c.filters.DateRange = *patch.DateRange
	}

	c.recompute()
}

func (c *Controller) ClearFilters() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.filters = booking.FilterSpec{}
	c.recompute()
}

// SetSort advances the three-state cycle for the clicked column and
// returns the resulting spec.
func (c *Controller) SetSort(column booking.Column) booking.SortSpec {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.sort = nextSortState(c.sort, column)
	c.recompute()

	return c.sort
}

// Create validates the draft, then asks the data layer for a new record
// and appends it locally.
func (c *Controller) Create(draft models.Draft) Result {
	const op = "session.Create"

	if res := booking.Validate(draft); !res.Valid {
		return Result{Success: false, Error: "Validation failed", Fields: res.Errors}
	}

	created, err := c.api.Create(draft)
	if err != nil {
		c.log.Error("failed to create booking", slog.String("op", op), sl.Err(err))
		return Result{Success: false, Error: err.Error()}
	}

	c.mu.Lock()
	c.all = applyCreate(c.all, created)
	c.recompute()
	c.mu.Unlock()

	c.log.Info("booking created", slog.String("op", op), slog.String("id", created.ID))

	return Result{Success: true, Booking: &created}
}

// Update validates the record as it would look after the merge, then
// applies the data layer's result locally. When the record is not in the
// local collection the validation step is skipped and the data layer's
// not-found answer is returned as-is.
func (c *Controller) Update(id string, fields mockapi.Fields) Result {
	const op = "session.Update"

	if existing, ok := c.find(id); ok {
		if res := booking.Validate(mergedDraft(existing, fields)); !res.Valid {
			return Result{Success: false, Error: "Validation failed", Fields: res.Errors}
		}
	}

	updated, err := c.api.Update(id, fields)
	if err != nil {
		c.log.Error("failed to update booking", slog.String("op", op),
			slog.String("id", id), sl.Err(err))
		return Result{Success: false, Error: err.Error()}
	}

	c.mu.Lock()
	c.all = applyUpdate(c.all, updated)
	c.recompute()
	c.mu.Unlock()

	c.log.Info("booking updated", slog.String("op", op), slog.String("id", id))

	return Result{Success: true, Booking: &updated}
}

// UpdateStatus is a status-only update. It does not run draft
// validation: status buttons on historical bookings must keep working.
func (c *Controller) UpdateStatus(id string, status models.Status) Result {
	const op = "session.UpdateStatus"

	updated, err := c.api.Update(id, mockapi.Fields{Status: &status})
	if err != nil {
		c.log.Error("failed to update booking status", slog.String("op", op),
			slog.String("id", id), sl.Err(err))
		return Result{Success: false, Error: err.Error()}
	}

	c.mu.Lock()
	c.all = applyUpdate(c.all, updated)
	c.recompute()
	c.mu.Unlock()

	c.log.Info("booking status updated", slog.String("op", op),
		slog.String("id", id), slog.String("status", string(status)))

	return Result{Success: true, Booking: &updated}
}

func (c *Controller) Delete(id string) Result {
	const op = "session.Delete"

	if err := c.api.Delete(id); err != nil {
		c.log.Error("failed to delete booking", slog.String("op", op),
			slog.String("id", id), sl.Err(err))
		return Result{Success: false, Error: err.Error()}
	}

	c.mu.Lock()
	c.all = applyDelete(c.all, id)
	c.recompute()
	c.mu.Unlock()

	c.log.Info("booking deleted", slog.String("op", op), slog.String("id", id))

	return Result{Success: true}
}

// View returns a snapshot of the current state for rendering.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()

	bookings := make([]models.Booking, len(c.visible))
	copy(bookings, c.visible)

	return View{
		Bookings: bookings,
		Loading:  c.loading,
		Error:    c.lastErr,
		Filters:  c.filters,
		Sort:     c.sort,
	}
}

// recompute rebuilds the visible view from the full collection. Callers
// must hold the mutex.
func (c *Controller) recompute() {
	c.visible = booking.Sort(booking.Filter(c.all, c.filters), c.sort)
}

func (c *Controller) find(id string) (models.Booking, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, b := range c.all {
		if b.ID == id {
			return b, true
		}
	}

	return models.Booking{}, false
}

// mergedDraft previews what a record will look like after a partial
// update, for validation.
func mergedDraft(b models.Booking, fields mockapi.Fields) models.Draft {
	draft := models.Draft{
		Customer:  b.Customer,
		Vessel:    b.Vessel,
		Status:    b.Status,
		StartDate: b.StartDate,
		EndDate:   b.EndDate,
	}

	if fields.Customer != nil {
		draft.Customer = *fields.Customer
	}
	if fields.Vessel != nil {
		draft.Vessel = *fields.Vessel
	}
	if fields.Status != nil {
		draft.Status = *fields.Status
	}
	if fields.StartDate != nil {
		draft.StartDate = *fields.StartDate
	}
	if fields.EndDate != nil {
		draft.EndDate = *fields.EndDate
	}

	return draft
}
