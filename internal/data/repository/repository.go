package repository

import (
	"rental-booking/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Equipment   EquipmentRepository
	Booking     BookingRepository
	BookingItem BookingItemRepository
	PageMeta    PageMetaRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Equipment:   NewEquipmentRepository(db, log),
		Booking:     NewBookingRepository(db, log),
		BookingItem: NewBookingItemRepository(db, log),
		PageMeta:    NewPageMetaRepository(db, log),
	}
}
