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

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	taskHandler *adaptor.TaskHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// POST /api/bookings - Storefront checkout, no account required
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// ==================== DRIVER ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireCapability(entity.CapabilityDriverTasks, log))

		// GET /api/driver/tasks - Delivery and pickup schedule (?today=true)
		r.Get("/api/driver/tasks", taskHandler.ListMyTasks)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/bookings", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))
		r.Use(middleware.RequireCapability(entity.CapabilityManageBookings, log))

		// GET /api/admin/bookings - List bookings, optional status filter
		r.Get("/", bookingHandler.ListBookings)

		// GET /api/admin/bookings/{id} - Booking details with items
		r.Get("/{id}", bookingHandler.GetBookingByID)

		// PUT /api/admin/bookings/{id}/status - Advance the booking lifecycle
		r.Put("/{id}/status", bookingHandler.UpdateStatus)

		// PUT /api/admin/bookings/{id}/assign - Assign or unassign a driver
		r.Put("/{id}/assign", bookingHandler.AssignDriver)

		// PUT /api/admin/bookings/{id}/contact - Fix customer contact details
		r.Put("/{id}/contact", bookingHandler.UpdateContact)
	})
}
