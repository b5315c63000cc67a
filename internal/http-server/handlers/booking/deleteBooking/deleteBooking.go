package deleteBooking

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"vesselBooker/internal/lib/api/response"
	"vesselBooker/internal/mockapi"
	"vesselBooker/internal/session"
)

type DeleteResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingDeleter
type BookingDeleter interface {
	Delete(id string) session.Result
}

func New(log *slog.Logger, bookings BookingDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.deleteBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("id", id))

		result := bookings.Delete(id)
		if !result.Success {
			log.Error("failed to delete booking", slog.String("error", result.Error))

			if result.Error == mockapi.ErrNotFound.Error() {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(result.Error))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(result.Error))
			return
		}

		log.Info("booking deleted")

		render.JSON(w, r, DeleteResponse{
			Response: response.OK(),
		})
	}
}
