package setSort

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"vesselBooker/internal/booking"
	"vesselBooker/internal/lib/api/response"
	"vesselBooker/internal/lib/logger/sl"
)

type SortRequest struct {
	Column booking.Column `json:"column"`
}

type SortResponse struct {
	response.Response
	Sort booking.SortSpec `json:"sort"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=SortSetter
type SortSetter interface {
	SetSort(column booking.Column) booking.SortSpec
}

// New registers a column-header click: asc on a new column, then desc,
// then back to original order. The cycle itself lives in the session
// controller; the handler only validates the column name.
func New(log *slog.Logger, bookings SortSetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.setSort.New"

		log = log.With(slog.String("op", op))

		var req SortRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if !req.Column.Valid() {
			log.Error("invalid sort column", slog.String("column", string(req.Column)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid sort column"))
			return
		}

		sort := bookings.SetSort(req.Column)

		log.Info("sort updated",
			slog.String("column", string(sort.Column)),
			slog.String("direction", string(sort.Direction)),
		)

		render.JSON(w, r, SortResponse{
			Response: response.OK(),
			Sort:     sort,
		})
	}
}
