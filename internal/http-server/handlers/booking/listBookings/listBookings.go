package listBookings

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"vesselBooker/internal/lib/api/response"
	"vesselBooker/internal/session"
)

type BookingsResponse struct {
	response.Response
	session.View
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsViewer
type BookingsViewer interface {
	View() session.View
}

func New(log *slog.Logger, bookings BookingsViewer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listBookings.New"

		log = log.With(slog.String("op", op))

		view := bookings.View()

		log.Info("bookings listed", slog.Int("count", len(view.Bookings)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			View:     view,
		})
	}
}
