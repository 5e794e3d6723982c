package wire

import (
	"rental-booking/internal/adaptor"
	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/pkg/middleware"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/users", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireCapability(entity.CapabilityManageUsers, log))

		// GET /api/admin/users - Paginated user list
		r.Get("/", userHandler.ListUsers)

		// PUT /api/admin/users/{id}/role - Promote or demote a user
		r.Put("/{id}/role", userHandler.UpdateRole)

		// DELETE /api/admin/users/{id} - Deactivate an account
		r.Delete("/{id}", userHandler.Deactivate)
	})
}
