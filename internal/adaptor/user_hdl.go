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

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log.With(zap.String("handler", "user")),
	}
}

// ListUsers handles GET /api/admin/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	page := &request.PaginatedRequest{
		Page:    utils.ParseInt(query.Get("page"), 1),
		PerPage: utils.ParseInt(query.Get("per_page"), 10),
	}

	users, err := h.service.ListUsers(r.Context(), page)
	if err != nil {
		handleServiceError(w, h.log, err, "list users")
		return
	}

	utils.ResponseSuccess(w, "success", users)
}

// UpdateRole handles PUT /api/admin/users/{id}/role
func (h *UserHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	var req request.UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.UpdateRole(r.Context(), userID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update user role")
		return
	}

	utils.ResponseSuccess(w, "success", user)
}

// Deactivate handles DELETE /api/admin/users/{id}
func (h *UserHandler) Deactivate(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "id")

	if err := h.service.Deactivate(r.Context(), userID); err != nil {
		handleServiceError(w, h.log, err, "deactivate user")
		return
	}

	utils.ResponseSuccess(w, "User deactivated", nil)
}
