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

func wireEquipment(
	r chi.Router,
	equipmentHandler *adaptor.EquipmentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/equipment - Active catalog for the storefront
	r.Get("/api/equipment", equipmentHandler.ListActive)

	// GET /api/equipment/{id} - Single item details
	r.Get("/api/equipment/{id}", equipmentHandler.GetByID)

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/equipment", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireCapability(entity.CapabilityManageEquipment, log))

		// GET /api/admin/equipment - Full catalog including inactive items
		r.Get("/", equipmentHandler.ListAll)

		// POST /api/admin/equipment - Add catalog item
		r.Post("/", equipmentHandler.Create)

		// PUT /api/admin/equipment/{id} - Update catalog item
		r.Put("/{id}", equipmentHandler.Update)

		// DELETE /api/admin/equipment/{id} - Remove catalog item
		r.Delete("/{id}", equipmentHandler.Delete)
	})
}
