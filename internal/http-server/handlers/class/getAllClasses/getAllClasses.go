package getAllClasses

import (
	"log/slog"
	"net/http"

	"fitbooker/internal/lib/api/response"
	"fitbooker/internal/lib/logger/sl"
	"fitbooker/internal/models"

	"github.com/go-chi/render"
)

type ClassesResponse struct {
	response.Response
	Classes []models.FitnessClass `json:"classes"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ClassProvider
type ClassProvider interface {
	GetAllClasses() ([]models.FitnessClass, error)
}

func New(log *slog.Logger, classes ClassProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.class.getAllClasses.New"

		log := log.With(slog.String("op", op))

		all, err := classes.GetAllClasses()
		if err != nil {
			log.Error("failed to get classes", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get classes"))
			return
		}

		if all == nil {
			all = []models.FitnessClass{}
		}

		log.Info("classes listed", slog.Int("count", len(all)))

		render.JSON(w, r, ClassesResponse{
			Response: response.OK(),
			Classes:  all,
		})
	}
}
