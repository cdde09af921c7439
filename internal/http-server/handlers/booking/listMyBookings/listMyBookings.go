package listMyBookings

import (
	"log/slog"
	"net/http"

	"fitbooker/internal/http-server/middleware/auth"
	"fitbooker/internal/lib/api/response"
	"fitbooker/internal/lib/logger/sl"
	"fitbooker/internal/models"

	"github.com/go-chi/render"
)

type BookingsResponse struct {
	response.Response
	Bookings []models.Booking `json:"bookings"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=BookingsProvider
type BookingsProvider interface {
	ListBookingsForUser(userID int64) ([]models.Booking, error)
}

func New(log *slog.Logger, bookings BookingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.booking.listMyBookings.New"

		log := log.With(slog.String("op", op))

		user, ok := auth.UserFromContext(r.Context())
		if !ok {
			log.Error("no authenticated user in context")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("not authenticated"))
			return
		}

		list, err := bookings.ListBookingsForUser(user.ID)
		if err != nil {
			log.Error("failed to get bookings", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get bookings"))
			return
		}

		if list == nil {
			list = []models.Booking{}
		}

		log.Info("bookings listed", slog.Int64("user_id", user.ID), slog.Int("count", len(list)))

		render.JSON(w, r, BookingsResponse{
			Response: response.OK(),
			Bookings: list,
		})
	}
}
