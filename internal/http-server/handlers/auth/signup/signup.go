package signup

import (
	"errors"
	"log/slog"
	"net/http"

	"fitbooker/internal/lib/api/response"
	"fitbooker/internal/lib/logger/sl"
	"fitbooker/internal/lib/passhash"
	"fitbooker/internal/models"
	"fitbooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type SignupRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=128"`
}

type SignupResponse struct {
	response.Response
	User *models.User `json:"user,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserSaver
type UserSaver interface {
	SaveUser(name, email, passHash string) (*models.User, error)
}

func New(log *slog.Logger, users UserSaver) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.signup.New"

		log := log.With(slog.String("op", op))

		var req SignupRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			errors.As(err, &validateErr)

			log.Error("invalid request", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.ValidationError(validateErr))
			return
		}

		digest, err := passhash.Generate(req.Password)
		if err != nil {
			log.Error("failed to hash password", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		user, err := users.SaveUser(req.Name, req.Email, digest)
		if err != nil {
			if errors.Is(err, storage.ErrUserExists) {
				log.Info("email already registered", slog.String("email", req.Email))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("email already registered"))
				return
			}

			log.Error("failed to save user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to register user"))
			return
		}

		log.Info("user registered", slog.Int64("id", user.ID))

		render.Status(r, http.StatusCreated)
		render.JSON(w, r, SignupResponse{
			Response: response.OK(),
			User:     user,
		})
	}
}
