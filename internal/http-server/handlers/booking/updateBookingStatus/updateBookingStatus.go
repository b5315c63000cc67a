package updateBookingStatus

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"vesselBooker/internal/lib/api/response"
	"vesselBooker/internal/lib/logger/sl"
	"vesselBooker/internal/mockapi"
	"vesselBooker/internal/models"
	"vesselBooker/internal/session"
)

type StatusRequest struct {
	Status models.Status `json:"status" validate:"required,oneof=pending confirmed cancelled"`
}

type StatusResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=StatusUpdater
type StatusUpdater interface {
	UpdateStatus(id string, status models.Status) session.Result
}

func New(log *slog.Logger, bookings StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.updateBookingStatus.New"

		log = log.With(slog.String("op", op))

		id := chi.URLParam(r, "id")
		if id == "" {
			log.Error("booking id is required")
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("booking id is required"))
			return
		}

		log = log.With(slog.String("id", id))

		var req StatusRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		result := bookings.UpdateStatus(id, req.Status)
		if !result.Success {
			log.Error("failed to update booking status", slog.String("error", result.Error))

			if result.Error == mockapi.ErrNotFound.Error() {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error(result.Error))
				return
			}

			render.Status(r, http.StatusBadGateway)
			render.JSON(w, r, response.Error(result.Error))
			return
		}

		log.Info("booking status updated", slog.String("status", string(req.Status)))

		responseOK(w, r, result.Booking)
	}
}

func responseOK(w http.ResponseWriter, r *http.Request, booking *models.Booking) {
	render.JSON(w, r, StatusResponse{
		Response: response.OK(),
		Booking:  booking,
	})
}
