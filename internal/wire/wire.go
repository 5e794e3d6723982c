package wire

import (
	"net/http"

	"rental-booking/internal/adaptor"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/mailer"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/middleware"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes
func Wiring(repo *repository.Repository, notifier mailer.Notifier, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, notifier, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	wireAuth(r, handler.Auth, repo, config, logger)
	wireUser(r, handler.User, repo, config, logger)
	wireEquipment(r, handler.Equipment, repo, config, logger)
	wireBooking(r, handler.Booking, handler.Task, repo, config, logger)
	wireSeo(r, handler.Seo, repo, config, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
