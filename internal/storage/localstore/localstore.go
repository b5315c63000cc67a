package localstore

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"

	"vesselBooker/internal/lib/logger/sl"
	"vesselBooker/internal/models"
)

// Storage keeps the booking collection as a single JSON file, the
// stand-in for the single local-storage slot the web client used.
// It exclusively owns the canonical collection; callers hold copies.
type Storage struct {
	path string
	log  *slog.Logger
}

func New(path string, log *slog.Logger) *Storage {
	return &Storage{path: path, log: log}
}

// Load returns the persisted collection. A missing or unreadable file
// and corrupt JSON are both treated as "nothing stored yet": the seed
// fixture is returned and the condition is logged, never surfaced.
func (s *Storage) Load() []models.Booking {
	const op = "storage.localstore.Load"

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.log.Warn("failed to read stored bookings, using seed data",
				slog.String("op", op), sl.Err(err))
		}
		return Seed()
	}

	var bookings []models.Booking
	if err = json.Unmarshal(data, &bookings); err != nil {
		s.log.Warn("stored bookings are corrupt, using seed data",
			slog.String("op", op), sl.Err(err))
		return Seed()
	}

	return bookings
}

// Save persists the collection. Write failures are logged and swallowed:
// the in-memory collection stays authoritative for the current session,
// durability is best-effort.
func (s *Storage) Save(bookings []models.Booking) {
	const op = "storage.localstore.Save"

	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		s.log.Error("failed to serialize bookings", slog.String("op", op), sl.Err(err))
		return
	}

	if err = os.WriteFile(s.path, data, 0o644); err != nil {
		s.log.Error("failed to persist bookings", slog.String("op", op), sl.Err(err))
	}
}

// Seed returns the static fixture used when nothing is stored yet.
func Seed() []models.Booking {
	return []models.Booking{
		{ID: "BK-1001", Customer: "Atlantic Shipping Co", Vessel: "MV Northern Star", Status: models.StatusConfirmed, StartDate: "2026-09-10", EndDate: "2026-09-15"},
		{ID: "BK-1002", Customer: "Baltic Freight Ltd", Vessel: "SS Ocean Breeze", Status: models.StatusPending, StartDate: "2026-09-18", EndDate: "2026-09-22"},
		{ID: "BK-1003", Customer: "Coastal Logistics", Vessel: "MV Harbor Queen", Status: models.StatusCancelled, StartDate: "2026-09-05", EndDate: "2026-09-08"},
		{ID: "BK-1004", Customer: "Delta Marine Services", Vessel: "MV Pacific Dawn", Status: models.StatusConfirmed, StartDate: "2026-10-01", EndDate: "2026-10-12"},
		{ID: "BK-1005", Customer: "Eastport Carriers", Vessel: "SS Windward", Status: models.StatusPending, StartDate: "2026-10-15", EndDate: "2026-10-18"},
		{ID: "BK-1006", Customer: "Fjord Transport AS", Vessel: "MV Aurora", Status: models.StatusCancelled, StartDate: "2026-11-02", EndDate: "2026-11-09"},
	}
}
