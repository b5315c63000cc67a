package setFilters

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"vesselBooker/internal/lib/api/response"
	"vesselBooker/internal/lib/logger/sl"
	"vesselBooker/internal/session"
)

type FiltersResponse struct {
	response.Response
	session.View
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=FilterSetter
type FilterSetter interface {
	SetFilters(patch session.FilterPatch)
	ClearFilters()
	View() session.View
}

// New applies a partial filter update and answers with the resulting
// view, so the client can re-render from one round trip.
func New(log *slog.Logger, bookings FilterSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.setFilters.New"

		log = log.With(slog.String("op", op))

		var req session.FilterPatch

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if req.Status != nil && *req.Status != "" && !req.Status.Valid() {
			log.Error("invalid status filter", slog.String("status", string(*req.Status)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid status"))
			return
		}

		bookings.SetFilters(req)

		view := bookings.View()

		log.Info("filters applied", slog.Int("visible", len(view.Bookings)))

		responseOK(w, r, view)
	}
}

// NewClear resets every filter.
func NewClear(log *slog.Logger, bookings FilterSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.setFilters.NewClear"

		log = log.With(slog.String("op", op))

		bookings.ClearFilters()

		view := bookings.View()

		log.Info("filters cleared", slog.Int("visible", len(view.Bookings)))

		responseOK(w, r, view)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, view session.View) {
	render.JSON(w, r, FiltersResponse{
		Response: response.OK(),
		View:     view,
	})
}
