package usecase

import (
	"context"
	"fmt"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/request"
	"rental-booking/internal/dto/response"
	"rental-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EquipmentService interface {
	// Storefront
	ListActive(ctx context.Context) ([]response.EquipmentResponse, error)
	GetByID(ctx context.Context, equipmentID string) (*response.EquipmentResponse, error)

	// Admin
	ListAll(ctx context.Context) ([]response.EquipmentResponse, error)
	Create(ctx context.Context, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error)
	Update(ctx context.Context, equipmentID string, req *request.UpdateEquipmentRequest) (*response.EquipmentResponse, error)
	Delete(ctx context.Context, equipmentID string) error
}

type equipmentService struct {
	equipment repository.EquipmentRepository
	log       *zap.Logger
}

func NewEquipmentService(equipment repository.EquipmentRepository, log *zap.Logger) EquipmentService {
	return &equipmentService{
		equipment: equipment,
		log:       log.With(zap.String("service", "equipment")),
	}
}

func (s *equipmentService) ListActive(ctx context.Context) ([]response.EquipmentResponse, error) {
	return s.list(ctx, true)
}

func (s *equipmentService) ListAll(ctx context.Context) ([]response.EquipmentResponse, error) {
	return s.list(ctx, false)
}

func (s *equipmentService) list(ctx context.Context, activeOnly bool) ([]response.EquipmentResponse, error) {
	equipmentList, err := s.equipment.FindAll(ctx, activeOnly)
	if err != nil {
		s.log.Error("Failed to list equipment", zap.Error(err))
		return nil, fmt.Errorf("list equipment: %w", err)
	}

	responses := make([]response.EquipmentResponse, len(equipmentList))
	for i, equipment := range equipmentList {
		responses[i] = response.EquipmentToResponse(equipment)
	}

	return responses, nil
}

func (s *equipmentService) GetByID(ctx context.Context, equipmentID string) (*response.EquipmentResponse, error) {
	equipment, err := s.loadEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *equipmentService) Create(ctx context.Context, req *request.CreateEquipmentRequest) (*response.EquipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create equipment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	equipment := &entity.Equipment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		PricePerDay: req.PricePerDay,
		Quantity:    req.Quantity,
		ImageURL:    req.ImageURL,
		IsActive:    req.IsActive,
	}

	if err := s.equipment.Create(ctx, equipment); err != nil {
		return nil, fmt.Errorf("create equipment: %w", err)
	}

	s.log.Info("Equipment created",
		zap.String("equipment_id", equipment.ID.String()),
		zap.String("name", equipment.Name))

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *equipmentService) Update(ctx context.Context, equipmentID string, req *request.UpdateEquipmentRequest) (*response.EquipmentResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	equipment, err := s.loadEquipment(ctx, equipmentID)
	if err != nil {
		return nil, err
	}

	equipment.Name = req.Name
	equipment.Description = req.Description
	equipment.Category = req.Category
	equipment.PricePerDay = req.PricePerDay
	equipment.Quantity = req.Quantity
	equipment.ImageURL = req.ImageURL
	equipment.IsActive = req.IsActive
	equipment.UpdatedAt = time.Now()

	if err := s.equipment.Update(ctx, equipment); err != nil {
		return nil, fmt.Errorf("update equipment %s: %w", equipmentID, err)
	}

	resp := response.EquipmentToResponse(equipment)
	return &resp, nil
}

func (s *equipmentService) Delete(ctx context.Context, equipmentID string) error {
	equipment, err := s.loadEquipment(ctx, equipmentID)
	if err != nil {
		return err
	}

	if err := s.equipment.Delete(ctx, equipment.ID); err != nil {
		return fmt.Errorf("delete equipment %s: %w", equipmentID, err)
	}

	return nil
}

func (s *equipmentService) loadEquipment(ctx context.Context, equipmentID string) (*entity.Equipment, error) {
	id, err := uuid.Parse(equipmentID)
	if err != nil {
		return nil, fmt.Errorf("invalid equipment ID format %s: %w", equipmentID, err)
	}

	equipment, err := s.equipment.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load equipment %s: %w", equipmentID, err)
	}
	if equipment == nil {
		return nil, fmt.Errorf("%w: %s", ErrEquipmentNotFound, equipmentID)
	}

	return equipment, nil
}
