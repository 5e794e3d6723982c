package adaptor

import (
	"encoding/json"
	"net/http"

	"rental-booking/internal/dto/request"
	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type EquipmentHandler struct {
	service usecase.EquipmentService
	log     *zap.Logger
}

func NewEquipmentHandler(service usecase.EquipmentService, log *zap.Logger) *EquipmentHandler {
	return &EquipmentHandler{
		service: service,
		log:     log.With(zap.String("handler", "equipment")),
	}
}

// ListActive handles GET /api/equipment (public)
func (h *EquipmentHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.service.ListActive(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list equipment")
		return
	}

	utils.ResponseSuccess(w, "success", equipment)
}

// GetByID handles GET /api/equipment/{id} (public)
func (h *EquipmentHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	equipment, err := h.service.GetByID(r.Context(), equipmentID)
	if err != nil {
		handleServiceError(w, h.log, err, "get equipment")
		return
	}

	utils.ResponseSuccess(w, "success", equipment)
}

// ListAll handles GET /api/admin/equipment
func (h *EquipmentHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	equipment, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list all equipment")
		return
	}

	utils.ResponseSuccess(w, "success", equipment)
}

// Create handles POST /api/admin/equipment
func (h *EquipmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	equipment, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create equipment")
		return
	}

	utils.ResponseCreated(w, "success", equipment)
}

// Update handles PUT /api/admin/equipment/{id}
func (h *EquipmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	var req request.UpdateEquipmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	equipment, err := h.service.Update(r.Context(), equipmentID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update equipment")
		return
	}

	utils.ResponseSuccess(w, "success", equipment)
}

// Delete handles DELETE /api/admin/equipment/{id}
func (h *EquipmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	equipmentID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), equipmentID); err != nil {
		handleServiceError(w, h.log, err, "delete equipment")
		return
	}

	utils.ResponseSuccess(w, "Equipment deleted", nil)
}
