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

func wireSeo(
	r chi.Router,
	seoHandler *adaptor.SeoHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/seo?path=/ - Page metadata for the storefront renderer
	r.Get("/api/seo", seoHandler.GetByPath)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/seo", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireCapability(entity.CapabilityManageSEO, log))

		// GET /api/admin/seo - All page metadata entries
		r.Get("/", seoHandler.ListAll)

		// PUT /api/admin/seo - Create or replace metadata for a path
		r.Put("/", seoHandler.Upsert)

		// DELETE /api/admin/seo/{id} - Remove a metadata entry
		r.Delete("/{id}", seoHandler.Delete)
	})
}
