package login

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"fitbooker/internal/lib/api/response"
	"fitbooker/internal/lib/jwt"
	"fitbooker/internal/lib/logger/sl"
	"fitbooker/internal/lib/passhash"
	"fitbooker/internal/models"
	"fitbooker/internal/storage"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	response.Response
	AccessToken string `json:"access_token,omitempty"`
	TokenType   string `json:"token_type,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByEmail(email string) (*models.User, error)
}

func New(log *slog.Logger, secret string, tokenTTL time.Duration, users UserProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.auth.login.New"

		log := log.With(slog.String("op", op))

		var req LoginRequest

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

		// Unknown email and wrong password produce the same response so the
		// endpoint does not confirm which emails are registered.
		user, err := users.GetUserByEmail(req.Email)
		if err != nil {
			if errors.Is(err, storage.ErrUserNotFound) {
				log.Info("login for unknown email", slog.String("email", req.Email))
				badCredentials(w, r)
				return
			}

			log.Error("failed to get user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		if !passhash.Compare(req.Password, user.PassHash) {
			log.Info("wrong password", slog.Int64("user_id", user.ID))
			badCredentials(w, r)
			return
		}

		token, err := jwt.NewToken(secret, user.ID, tokenTTL)
		if err != nil {
			log.Error("failed to issue token", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to log in"))
			return
		}

		log.Info("user logged in", slog.Int64("user_id", user.ID))

		render.JSON(w, r, LoginResponse{
			Response:    response.OK(),
			AccessToken: token,
			TokenType:   "bearer",
		})
	}
}

func badCredentials(w http.ResponseWriter, r *http.Request) {
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error("invalid email or password"))
}
