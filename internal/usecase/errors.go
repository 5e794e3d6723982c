package usecase

import "errors"

// Sentinel errors callers match with errors.Is to tell the failure
// classes apart: a rejected transition never touched the store, a
// conflict means another operator moved the booking first.
var (
	ErrBookingNotFound   = errors.New("booking not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrReasonRequired    = errors.New("delivery failure reason is required")
	ErrStatusConflict    = errors.New("booking status was changed by another operator")

	ErrEquipmentNotFound  = errors.New("equipment not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
