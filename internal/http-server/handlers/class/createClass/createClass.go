package createClass

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fitbooker/internal/lib/api/response"
	"fitbooker/internal/lib/istime"
	"fitbooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

// DateTime is a string so offsetless input can be interpreted as IST instead
// of being rejected by RFC3339 decoding.
type ClassRequest struct {
	Name           string `json:"name" validate:"required,max=150"`
	DateTime       string `json:"dateTime" validate:"required"`
	Instructor     string `json:"instructor" validate:"required,max=100"`
	AvailableSlots int    `json:"availableSlots" validate:"required,gte=1,lte=100"`
}

type ClassResponse struct {
	response.Response
	ClassID int64 `json:"class_id"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassCreator
type ClassCreator interface {
	CreateClass(name string, dateTime time.Time, instructor string, slots int) (int64, error)
}

func New(log *slog.Logger, classes ClassCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.createClass.New"

		log := log.With(slog.String("op", op))

		var req ClassRequest

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

		dateTime, err := istime.Parse(req.DateTime)
		if err != nil {
			log.Error("invalid dateTime", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("invalid dateTime format"))
			return
		}

		if istime.IsPast(dateTime) {
			log.Info("class time in the past", slog.Time("date_time", dateTime))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("class time cannot be in the past"))
			return
		}

		classID, err := classes.CreateClass(req.Name, dateTime, req.Instructor, req.AvailableSlots)
		if err != nil {
			log.Error("failed to create class", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to create class"))
			return
		}

		log.Info("class created", slog.Int64("id", classID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, ClassResponse{
			Response: response.OK(),
			ClassID:  classID,
		})
	}
}
