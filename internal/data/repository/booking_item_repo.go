package repository

import (
	"context"
	"fmt"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type BookingItemRepository interface {
	CreateBatch(ctx context.Context, items []*entity.BookingItem) error
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingItem, error)
	DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error
}

type bookingItemRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingItemRepository(db database.PgxIface, log *zap.Logger) BookingItemRepository {
	return &bookingItemRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking_item")),
	}
}

func (r *bookingItemRepository) CreateBatch(ctx context.Context, items []*entity.BookingItem) error {
	query := `
		INSERT INTO booking_items (id, booking_id, equipment_id, quantity, unit_price, subtotal, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	for _, item := range items {
		_, err := r.db.Exec(ctx, query,
			item.ID,
			item.BookingID,
			item.EquipmentID,
			item.Quantity,
			item.UnitPrice,
			item.Subtotal,
			item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to create booking item",
				zap.Error(err),
				zap.String("booking_id", item.BookingID.String()),
				zap.String("equipment_id", item.EquipmentID.String()),
			)
			return fmt.Errorf("create booking item for %s: %w", item.BookingID.String(), err)
		}
	}

	return nil
}

func (r *bookingItemRepository) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingItem, error) {
	// Left join keeps items whose equipment row was removed; those render
	// as "Unknown Equipment" in customer-facing summaries.
	query := `
		SELECT bi.id, bi.booking_id, bi.equipment_id, e.name, bi.quantity, bi.unit_price, bi.subtotal, bi.created_at
		FROM booking_items bi
		LEFT JOIN equipment e ON e.id = bi.equipment_id
		WHERE bi.booking_id = $1
		ORDER BY bi.created_at
	`

	rows, err := r.db.Query(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to find booking items",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return nil, fmt.Errorf("find booking items for %s: %w", bookingID.String(), err)
	}
	defer rows.Close()

	var items []*entity.BookingItem
	for rows.Next() {
		var item entity.BookingItem
		err := rows.Scan(
			&item.ID,
			&item.BookingID,
			&item.EquipmentID,
			&item.EquipmentName,
			&item.Quantity,
			&item.UnitPrice,
			&item.Subtotal,
			&item.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan booking item row", zap.Error(err))
			return nil, fmt.Errorf("scan booking item row: %w", err)
		}
		items = append(items, &item)
	}

	return items, nil
}

func (r *bookingItemRepository) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	query := `DELETE FROM booking_items WHERE booking_id = $1`

	_, err := r.db.Exec(ctx, query, bookingID)
	if err != nil {
		r.log.Error("Failed to delete booking items",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("delete booking items for %s: %w", bookingID.String(), err)
	}

	return nil
}
