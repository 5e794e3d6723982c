package repository

import (
	"context"
	"fmt"

	"rental-booking/internal/data/entity"
	"rental-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type EquipmentRepository interface {
	Create(ctx context.Context, equipment *entity.Equipment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*entity.Equipment, error)
	Update(ctx context.Context, equipment *entity.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type equipmentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewEquipmentRepository(db database.PgxIface, log *zap.Logger) EquipmentRepository {
	return &equipmentRepository{
		db:  db,
		log: log.With(zap.String("repository", "equipment")),
	}
}

func (r *equipmentRepository) Create(ctx context.Context, equipment *entity.Equipment) error {
	query := `
		INSERT INTO equipment (id, name, description, category, price_per_day, quantity, image_url, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		equipment.ID,
		equipment.Name,
		equipment.Description,
		equipment.Category,
		equipment.PricePerDay,
		equipment.Quantity,
		equipment.ImageURL,
		equipment.IsActive,
		equipment.CreatedAt,
		equipment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create equipment",
			zap.Error(err),
			zap.String("name", equipment.Name),
		)
		return fmt.Errorf("create equipment %s: %w", equipment.Name, err)
	}

	return nil
}

func (r *equipmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Equipment, error) {
	query := `
		SELECT id, name, description, category, price_per_day, quantity, image_url, is_active, created_at, updated_at
		FROM equipment
		WHERE id = $1
	`

	var equipment entity.Equipment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&equipment.ID,
		&equipment.Name,
		&equipment.Description,
		&equipment.Category,
		&equipment.PricePerDay,
		&equipment.Quantity,
		&equipment.ImageURL,
		&equipment.IsActive,
		&equipment.CreatedAt,
		&equipment.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find equipment by ID",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
		)
		return nil, fmt.Errorf("find equipment by ID %s: %w", id.String(), err)
	}

	return &equipment, nil
}

func (r *equipmentRepository) FindAll(ctx context.Context, activeOnly bool) ([]*entity.Equipment, error) {
	query := `
		SELECT id, name, description, category, price_per_day, quantity, image_url, is_active, created_at, updated_at
		FROM equipment
		WHERE ($1 = false OR is_active = true)
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query, activeOnly)
	if err != nil {
		r.log.Error("Failed to list equipment", zap.Error(err))
		return nil, fmt.Errorf("list equipment: %w", err)
	}
	defer rows.Close()

	var equipmentList []*entity.Equipment
	for rows.Next() {
		var equipment entity.Equipment
		err := rows.Scan(
			&equipment.ID,
			&equipment.Name,
			&equipment.Description,
			&equipment.Category,
			&equipment.PricePerDay,
			&equipment.Quantity,
			&equipment.ImageURL,
			&equipment.IsActive,
			&equipment.CreatedAt,
			&equipment.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan equipment row", zap.Error(err))
			return nil, fmt.Errorf("scan equipment row: %w", err)
		}
		equipmentList = append(equipmentList, &equipment)
	}

	return equipmentList, nil
}

func (r *equipmentRepository) Update(ctx context.Context, equipment *entity.Equipment) error {
	query := `
		UPDATE equipment
		SET name = $2, description = $3, category = $4, price_per_day = $5,
		    quantity = $6, image_url = $7, is_active = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		equipment.ID,
		equipment.Name,
		equipment.Description,
		equipment.Category,
		equipment.PricePerDay,
		equipment.Quantity,
		equipment.ImageURL,
		equipment.IsActive,
		equipment.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update equipment",
			zap.Error(err),
			zap.String("equipment_id", equipment.ID.String()),
		)
		return fmt.Errorf("update equipment %s: %w", equipment.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s not found", equipment.ID.String())
	}

	return nil
}

func (r *equipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM equipment WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete equipment",
			zap.Error(err),
			zap.String("equipment_id", id.String()),
		)
		return fmt.Errorf("delete equipment %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("equipment %s not found", id.String())
	}

	r.log.Info("Equipment deleted", zap.String("equipment_id", id.String()))
	return nil
}
