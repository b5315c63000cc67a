package createBooking

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"vesselBooker/internal/lib/api/response"
	"vesselBooker/internal/lib/logger/sl"
	"vesselBooker/internal/models"
	"vesselBooker/internal/session"
)

type BookingRequest struct {
	Customer  string        `json:"customer"`
	Vessel    string        `json:"vessel"`
	Status    models.Status `json:"status,omitempty"`
	StartDate string        `json:"startDate"`
	EndDate   string        `json:"endDate"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking   `json:"booking,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	Create(draft models.Draft) session.Result
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log = log.With(slog.String("op", op))

		var req BookingRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if req.Status != "" && !req.Status.Valid() {
			log.Error("invalid status", slog.String("status", string(req.Status)))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid status"))
			return
		}

		result := bookings.Create(models.Draft{
			Customer:  req.Customer,
			Vessel:    req.Vessel,
			Status:    req.Status,
			StartDate: req.StartDate,
			EndDate:   req.EndDate,
		})

		if !result.Success {
			log.Error("failed to create booking", slog.String("error", result.Error))

			if result.Fields != nil {
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, BookingResponse{
					Response: response.Error(result.Error),
					Fields:   result.Fields,
				})
				return
			}

			// Only the simulated network failure is left here.
			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(result.Error))
			return
		}

		log.Info("booking created", slog.String("id", result.Booking.ID))

		responseOK(w, r, result.Booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, BookingResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
