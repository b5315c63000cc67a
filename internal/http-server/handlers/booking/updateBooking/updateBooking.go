package updateBooking

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"vesselBooker/internal/lib/api/response"
	"vesselBooker/internal/lib/logger/sl"
	"vesselBooker/internal/mockapi"
	"vesselBooker/internal/models"
	"vesselBooker/internal/session"
)

// BookingRequest carries a partial update: absent fields keep their
// stored value.
type BookingRequest struct {
	Customer  *string        `json:"customer,omitempty"`
	Vessel    *string        `json:"vessel,omitempty"`
	Status    *models.Status `json:"status,omitempty"`
	StartDate *string        `json:"startDate,omitempty"`
	EndDate   *string        `json:"endDate,omitempty"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking   `json:"booking,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingUpdater
type BookingUpdater interface {
	Update(id string, fields mockapi.Fields) session.Result
}

func New(log *slog.Logger, bookings BookingUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBooking.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("id", id))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if req.Status != nil && !req.Status.Valid() {
			log.Error("invalid status", slog.String("status", string(*req.Status)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid status"))
			return
		}

		result := bookings.Update(id, mockapi.Fields{
			Customer:  req.Customer,
			Vessel:    req.Vessel,
			Status:    req.Status,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})

		if !result.Success {
			log.Error("failed to update booking", slog.String("error", result.Error))

			if result.Fields != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, BookingResponse{
					Response: response.Error(result.Error),
					Fields:   result.Fields,
				})
				return
			}

			if result.Error == mockapi.ErrNotFound.Error() {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(result.Error))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(result.Error))
			return
		}

		log.Info("booking updated")

		responseOK(w, r, result.Booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
