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

type SeoHandler struct {
	service usecase.SeoService
	log     *zap.Logger
}

func NewSeoHandler(service usecase.SeoService, log *zap.Logger) *SeoHandler {
	return &SeoHandler{
		service: service,
		log:     log.With(zap.String("handler", "seo")),
	}
}

// GetByPath handles GET /api/seo?path=/some/page (public)
func (h *SeoHandler) GetByPath(w http.ResponseWriter, r *http.Request) {
	meta, err := h.service.GetByPath(r.Context(), r.URL.Query().Get("path"))
	if err != nil {
		handleServiceError(w, h.log, err, "get page meta")
		return
	}

	utils.ResponseSuccess(w, "success", meta)
}

// ListAll handles GET /api/admin/seo
func (h *SeoHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	metas, err := h.service.ListAll(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list page meta")
		return
	}

	utils.ResponseSuccess(w, "success", metas)
}

// Upsert handles PUT /api/admin/seo
func (h *SeoHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	var req request.UpsertPageMetaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	meta, err := h.service.Upsert(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "upsert page meta")
		return
	}

	utils.ResponseSuccess(w, "success", meta)
}

// Delete handles DELETE /api/admin/seo/{id}
func (h *SeoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	pageMetaID := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), pageMetaID); err != nil {
		handleServiceError(w, h.log, err, "delete page meta")
		return
	}

	utils.ResponseSuccess(w, "Page meta deleted", nil)
}
