package createBooking

import (
	"errors"
	"log/slog"
	"net/http"

	"fitbooker/internal/http-server/middleware/auth"
	"fitbooker/internal/lib/api/response"
	"fitbooker/internal/lib/logger/sl"
	"fitbooker/internal/models"
	"fitbooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// Client name/email are the attendee's details; they may differ from the
// authenticated account and are not verified against it. Duplicate bookings
// are keyed on the account, not the attendee email.
type BookingRequest struct {
	ClassID     int64  `json:"class_id" validate:"required"`
	ClientName  string `json:"client_name" validate:"required,max=100"`
	ClientEmail string `json:"client_email" validate:"required,email"`
}

type BookingResponse struct {
	response.Response
	Booking *models.Booking `json:"booking,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingCreator
type BookingCreator interface {
	CreateBooking(userID, classID int64, clientName, clientEmail string) (*models.Booking, error)
}

func New(log *slog.Logger, bookings BookingCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.createBooking.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		log = log.With(slog.Int64("user_id", user.ID))

		var req BookingRequest

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
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		booking, err := bookings.CreateBooking(user.ID, req.ClassID, req.ClientName, req.ClientEmail)
		if err != nil {
			log.Error("failed to book class", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrClassNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("class not found"))
			case errors.Is(err, storage.ErrClassInPast):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("cannot book a past class"))
			case errors.Is(err, storage.ErrNoSlots):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("no available slots"))
			case errors.Is(err, storage.ErrAlreadyBooked):
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("already booked for this class"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book class"))
			}
			return
		}

		log.Info("class booked", slog.Int64("booking_id", booking.ID), slog.Int64("class_id", req.ClassID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Booking:  booking,
		})
	}
}
