package usecase

import (
	"time"

	"rental-booking/internal/data/repository"
	"rental-booking/internal/mailer"
	"rental-booking/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth      AuthService
	User      UserService
	Equipment EquipmentService
	Booking   BookingService
	Lifecycle LifecycleService
	Task      TaskService
	Seo       SeoService
}

func NewService(repo *repository.Repository, notifier mailer.Notifier, config *utils.Config, log *zap.Logger) *Service {
	notifyTimeout := time.Duration(config.Email.TimeoutSeconds) * time.Second

	return &Service{
		Auth:      NewAuthService(repo, config, log),
		User:      NewUserService(repo.User, log),
		Equipment: NewEquipmentService(repo.Equipment, log),
		Booking:   NewBookingService(repo, log),
		Lifecycle: NewLifecycleService(repo.Booking, repo.BookingItem, notifier, notifyTimeout, log),
		Task:      NewTaskService(repo.Booking, log),
		Seo:       NewSeoService(repo.PageMeta, log),
	}
}
