package adaptor

import (
	"rental-booking/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth      *AuthHandler
	User      *UserHandler
	Equipment *EquipmentHandler
	Booking   *BookingHandler
	Task      *TaskHandler
	Seo       *SeoHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:      NewAuthHandler(service.Auth, log),
		User:      NewUserHandler(service.User, log),
		Equipment: NewEquipmentHandler(service.Equipment, log),
		Booking:   NewBookingHandler(service.Booking, service.Lifecycle, log),
		Task:      NewTaskHandler(service.Task, log),
		Seo:       NewSeoHandler(service.Seo, log),
	}
}
