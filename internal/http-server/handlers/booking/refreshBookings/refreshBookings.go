package refreshBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"vesselBooker/internal/lib/api/response"
	"vesselBooker/internal/session"
)

type RefreshResponse struct {
	response.Response
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsRefresher
type BookingsRefresher interface {
	Refresh() session.Result
}

func New(log *slog.Logger, bookings BookingsRefresher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.refreshBookings.New"

		log = log.With(slog.String("op", op))

		result := bookings.Refresh()
		if !result.Success {
			log.Error("failed to refresh bookings", slog.String("error", result.Error))
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(result.Error))
			return
		}

		log.Info("bookings refreshed")

		render.JSON(w, r, RefreshResponse{
			Response: response.OK(),
		})
	}
}
