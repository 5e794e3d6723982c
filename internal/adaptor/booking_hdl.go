package adaptor

import (
	"encoding/json"
	"net/http"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type BookingHandler struct {
	service   usecase.BookingService
	lifecycle usecase.LifecycleService
	log       *zap.Logger
}

func NewBookingHandler(service usecase.BookingService, lifecycle usecase.LifecycleService, log *zap.Logger) *BookingHandler {
	return &BookingHandler{
		service:   service,
		lifecycle: lifecycle,
		log:       log.With(zap.String("handler", "booking")),
	}
}

// CreateBooking handles POST /api/bookings (public storefront)
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create booking")
		return
	}

	utils.ResponseCreated(w, "success", booking)
}

// ListBookings handles GET /api/admin/bookings?status=&page=&per_page=
func (h *BookingHandler) ListBookings(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	bookings, err := h.service.ListBookings(r.Context(), query.Get("status"), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list bookings")
		return
	}

	utils.ResponseSuccess(w, "success", bookings)
}

// GetBookingByID handles GET /api/admin/bookings/{id}
func (h *BookingHandler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	booking, err := h.service.GetBookingByID(r.Context(), bookingID)
	if err != nil {
		handleServiceError(w, h.log, err, "get booking")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateStatus handles PUT /api/admin/bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.lifecycle.Transition(r.Context(), bookingID, entity.Status(req.Status), req.Reason)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking status")
		return
	}

	utils.ResponseSuccess(w, "Booking status updated", booking)
}

// AssignDriver handles PUT /api/admin/bookings/{id}/assign
func (h *BookingHandler) AssignDriver(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.AssignDriverRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.AssignDriver(r.Context(), bookingID, req.DriverID)
	if err != nil {
		handleServiceError(w, h.log, err, "assign driver")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}

// UpdateContact handles PUT /api/admin/bookings/{id}/contact
func (h *BookingHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "id")

	var req request.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	booking, err := h.service.UpdateContact(r.Context(), bookingID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update booking contact")
		return
	}

	utils.ResponseSuccess(w, "success", booking)
}
