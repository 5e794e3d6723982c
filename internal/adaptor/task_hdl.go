package adaptor

import (
	"net/http"

	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type TaskHandler struct {
	service usecase.TaskService
	log     *zap.Logger
}

func NewTaskHandler(service usecase.TaskService, log *zap.Logger) *TaskHandler {
	return &TaskHandler{
		service: service,
		log:     log.With(zap.String("handler", "task")),
	}
}

// ListMyTasks handles GET /api/driver/tasks?today=true (protected)
func (h *TaskHandler) ListMyTasks(w http.ResponseWriter, r *http.Request) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Authentication required")
		return
	}

	var err error
	var tasks any
	if r.URL.Query().Get("today") == "true" {
		tasks, err = h.service.TodayTasksForDriver(r.Context(), userID.String())
	} else {
		tasks, err = h.service.ListTasksForDriver(r.Context(), userID.String())
	}

	if err != nil {
		handleServiceError(w, h.log, err, "list driver tasks")
		return
	}

	utils.ResponseSuccess(w, "success", tasks)
}
