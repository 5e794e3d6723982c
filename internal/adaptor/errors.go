package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"rental-booking/internal/usecase"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

// handleServiceError maps service errors onto HTTP responses. Sentinel
// errors carry the precise failure class; string matching remains as a
// fallback for wrapped repository errors.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	errMsg := err.Error()

	switch {
	case errors.Is(err, usecase.ErrStatusConflict):
		log.Warn(operation+" failed - concurrent status change",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, errMsg)

	case errors.Is(err, usecase.ErrInvalidTransition):
		log.Warn(operation+" failed - invalid transition",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseUnprocessable(w, errMsg, nil)

	case errors.Is(err, usecase.ErrReasonRequired):
		log.Warn(operation+" failed - missing reason",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	case errors.Is(err, usecase.ErrBookingNotFound),
		errors.Is(err, usecase.ErrEquipmentNotFound),
		errors.Is(err, usecase.ErrUserNotFound),
		strings.Contains(errMsg, "not found"):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseNotFound(w, errMsg)

	case errors.Is(err, usecase.ErrInvalidCredentials):
		log.Warn(operation+" failed - bad credentials",
			zap.String("operation", operation))
		utils.ResponseUnauthorized(w, errMsg)

	case strings.Contains(errMsg, "validation failed"),
		strings.Contains(errMsg, "invalid"),
		strings.Contains(errMsg, "already"):
		log.Warn(operation+" failed - bad input",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, errMsg, nil)

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
