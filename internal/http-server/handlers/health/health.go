package health

import (
	"net/http"
	"time"

	"fitbooker/internal/lib/istime"

	"github.com/go-chi/render"
)

type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// New reports liveness with the current IST time. Always 200.
func New() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, HealthResponse{
			Status: "ok",
			Time:   istime.Now().Format(time.RFC3339),
		})
	}
}
