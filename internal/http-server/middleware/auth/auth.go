// Package auth resolves the Authorization header into the authenticated user.
package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"fitbooker/internal/lib/api/response"
	"fitbooker/internal/lib/jwt"
	"fitbooker/internal/lib/logger/sl"
	"fitbooker/internal/models"
	"fitbooker/internal/storage"

	"github.com/go-chi/render"
)

type ctxKey struct{}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserProvider
type UserProvider interface {
	GetUserByID(id int64) (*models.User, error)
}

// New returns middleware that requires a valid bearer token and stores the
// resolved user in the request context. Every request re-validates the token
// and re-queries the store; tokens are stateless and there is no revocation.
func New(log *slog.Logger, secret string, users UserProvider) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			const op = "middleware.auth.New"

			log := log.With(slog.String("op", op))

			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				log.Info("missing bearer credentials")
				unauthorized(w, r, "not authenticated")
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")

			userID, err := jwt.ParseToken(secret, token)
			if err != nil {
				log.Info("token validation failed", sl.Err(err))
				unauthorized(w, r, "invalid or expired token")
				return
			}

			user, err := users.GetUserByID(userID)
			if err != nil {
				if errors.Is(err, storage.ErrUserNotFound) {
					// Distinct log line for diagnostics, same outcome for
					// the client as a bad token.
					log.Info("token subject not found", slog.Int64("user_id", userID))
					unauthorized(w, r, "invalid or expired token")
					return
				}

				log.Error("failed to resolve user", sl.Err(err))
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("internal error"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

func unauthorized(w http.ResponseWriter, r *http.Request, msg string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error(msg))
}

// UserFromContext returns the user stored by the middleware.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(ctxKey{}).(*models.User)
	return user, ok
}

// ContextWithUser stores user the way the middleware does. Intended for
// handler tests.
func ContextWithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}
