package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/internal/data/repository"
	"rental-booking/pkg/middleware"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/register - Create a customer account
	r.Post("/api/register", authHandler.Register)

	// POST /api/login - Exchange credentials for a session token
	r.Post("/api/login", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		// POST /api/logout - Invalidate the current session
		r.Post("/api/logout", authHandler.Logout)
	})
}
