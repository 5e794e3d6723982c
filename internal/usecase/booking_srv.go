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

type BookingService interface {
	// Storefront
	CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error)

	// Admin
	ListBookings(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error)
	GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	AssignDriver(ctx context.Context, bookingID string, driverID *string) (*response.BookingResponse, error)
	UpdateContact(ctx context.Context, bookingID string, req *request.UpdateContactRequest) (*response.BookingResponse, error)
}

type bookingService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewBookingService(repo *repository.Repository, log *zap.Logger) BookingService {
	return &bookingService{
		repo: repo,
		log:  log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("invalid start date %s: %w", req.StartDate, err)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("invalid end date %s: %w", req.EndDate, err)
	}
	if endDate.Before(startDate) {
		return nil, fmt.Errorf("validation failed: end date is before start date")
	}

	// Rental length in days; same-day rentals count as one day.
	rentalDays := int(endDate.Sub(startDate).Hours()/24) + 1

	now := time.Now()
	booking := &entity.Booking{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Reference:       utils.GenerateBookingReference(),
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   req.CustomerPhone,
		CustomerAddress: req.CustomerAddress,
		StartDate:       startDate,
		EndDate:         endDate,
		Status:          entity.StatusPending,
	}

	// Resolve items and compute the total server-side.
	items := make([]*entity.BookingItem, 0, len(req.Items))
	var total float64
	for _, itemReq := range req.Items {
		equipmentID, err := uuid.Parse(itemReq.EquipmentID)
		if err != nil {
			return nil, fmt.Errorf("invalid equipment ID format %s: %w", itemReq.EquipmentID, err)
		}

		equipment, err := s.repo.Equipment.FindByID(ctx, equipmentID)
		if err != nil {
			return nil, fmt.Errorf("check equipment %s: %w", itemReq.EquipmentID, err)
		}
		if equipment == nil || !equipment.IsActive {
			return nil, fmt.Errorf("%w: %s", ErrEquipmentNotFound, itemReq.EquipmentID)
		}

		subtotal := equipment.PricePerDay * float64(itemReq.Quantity) * float64(rentalDays)
		total += subtotal

		items = append(items, &entity.BookingItem{
			BaseSimple: entity.BaseSimple{
				ID:        uuid.New(),
				CreatedAt: now,
			},
			BookingID:   booking.ID,
			EquipmentID: equipmentID,
			Quantity:    itemReq.Quantity,
			UnitPrice:   equipment.PricePerDay,
			Subtotal:    subtotal,
		})
	}
	booking.TotalAmount = total

	if err := s.repo.Booking.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("customer_name", req.CustomerName),
		)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	if err := s.repo.BookingItem.CreateBatch(ctx, items); err != nil {
		// Rollback: remove the half-created booking
		s.repo.Booking.Delete(ctx, booking.ID)
		return nil, fmt.Errorf("create booking items: %w", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("reference", booking.Reference),
		zap.Int("item_count", len(items)),
		zap.Float64("total_amount", total),
	)

	booking.Items, _ = s.repo.BookingItem.FindByBookingID(ctx, booking.ID)

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) ListBookings(ctx context.Context, status string, page *request.PaginatedRequest) (*response.PaginatedResponse[response.BookingResponse], error) {
	var statusFilter *entity.Status
	if status != "" {
		parsed := entity.Status(status)
		if !parsed.Valid() {
			return nil, fmt.Errorf("validation failed: unknown status %q", status)
		}
		statusFilter = &parsed
	}

	bookings, err := s.repo.Booking.List(ctx, statusFilter, page.Limit(), page.Offset())
	if err != nil {
		s.log.Error("Failed to list bookings", zap.Error(err))
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	total, err := s.repo.Booking.Count(ctx, statusFilter)
	if err != nil {
		s.log.Error("Failed to count bookings", zap.Error(err))
		return nil, fmt.Errorf("count bookings: %w", err)
	}

	responses := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		responses[i] = response.BookingToResponse(booking)
	}

	return response.NewPaginatedResponse(responses, page.Page, page.Limit(), total), nil
}

func (s *bookingService) GetBookingByID(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	booking.Items, err = s.repo.BookingItem.FindByBookingID(ctx, booking.ID)
	if err != nil {
		s.log.Warn("Failed to load booking items",
			zap.Error(err),
			zap.String("booking_id", bookingID))
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) AssignDriver(ctx context.Context, bookingID string, driverID *string) (*response.BookingResponse, error) {
	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	var driverUUID *uuid.UUID
	if driverID != nil {
		parsed, err := uuid.Parse(*driverID)
		if err != nil {
			return nil, fmt.Errorf("invalid driver ID format %s: %w", *driverID, err)
		}

		driver, err := s.repo.User.FindByID(ctx, parsed)
		if err != nil {
			return nil, fmt.Errorf("check driver %s: %w", *driverID, err)
		}
		if driver == nil || driver.Role != entity.RoleDriver {
			return nil, fmt.Errorf("%w: driver %s", ErrUserNotFound, *driverID)
		}

		driverUUID = &parsed
	}

	if err := s.repo.Booking.AssignDriver(ctx, booking.ID, driverUUID); err != nil {
		return nil, fmt.Errorf("assign driver for booking %s: %w", bookingID, err)
	}

	s.log.Info("Booking driver assignment updated",
		zap.String("booking_id", bookingID),
		zap.Bool("assigned", driverUUID != nil),
	)

	booking.AssignedTo = driverUUID
	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) UpdateContact(ctx context.Context, bookingID string, req *request.UpdateContactRequest) (*response.BookingResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	booking, err := s.loadBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	booking.CustomerName = req.CustomerName
	booking.CustomerEmail = req.CustomerEmail
	booking.CustomerPhone = req.CustomerPhone
	booking.CustomerAddress = req.CustomerAddress
	booking.UpdatedAt = time.Now()

	if err := s.repo.Booking.Update(ctx, booking); err != nil {
		return nil, fmt.Errorf("update booking %s: %w", bookingID, err)
	}

	resp := response.BookingToResponse(booking)
	return &resp, nil
}

func (s *bookingService) loadBooking(ctx context.Context, bookingID string) (*entity.Booking, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	booking, err := s.repo.Booking.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	return booking, nil
}
