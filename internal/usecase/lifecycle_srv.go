package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/response"
	"rental-booking/internal/mailer"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LifecycleService owns the booking status workflow: which transitions
// are legal, how they are persisted, and the customer notification that
// accompanies them.
type LifecycleService interface {
	// Transition moves a booking to target. reason is mandatory when
	// target is undeliverable and ignored otherwise.
	Transition(ctx context.Context, bookingID string, target entity.Status, reason string) (*response.BookingResponse, error)
}

type lifecycleService struct {
	bookings repository.BookingRepository
	items    repository.BookingItemRepository
	notifier mailer.Notifier
	log      *zap.Logger

	// notifyTimeout bounds the fire-and-forget email dispatch.
	notifyTimeout time.Duration
}

func NewLifecycleService(
	bookings repository.BookingRepository,
	items repository.BookingItemRepository,
	notifier mailer.Notifier,
	notifyTimeout time.Duration,
	log *zap.Logger,
) LifecycleService {
	if notifyTimeout <= 0 {
		notifyTimeout = 15 * time.Second
	}
	return &lifecycleService{
		bookings:      bookings,
		items:         items,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		log:           log.With(zap.String("service", "lifecycle")),
	}
}

func (s *lifecycleService) Transition(ctx context.Context, bookingID string, target entity.Status, reason string) (*response.BookingResponse, error) {
	id, err := uuid.Parse(bookingID)
	if err != nil {
		return nil, fmt.Errorf("invalid booking ID format %s: %w", bookingID, err)
	}

	if !target.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidTransition, string(target))
	}

	// Always read the authoritative status right before validating; a
	// booking shown on an operator's screen may have moved since.
	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("load booking %s: %w", bookingID, err)
	}
	if booking == nil {
		return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
	}

	current := booking.Status
	if !current.CanTransitionTo(target) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, string(current), string(target))
	}

	var failureReason *string
	if target == entity.StatusUndeliverable {
		trimmed := strings.TrimSpace(reason)
		if trimmed == "" {
			return nil, fmt.Errorf("%w for booking %s", ErrReasonRequired, bookingID)
		}
		failureReason = &trimmed
	}

	// Conditional write keyed on the status we validated against. Losing
	// the race leaves the other operator's transition intact.
	applied, err := s.bookings.UpdateStatusGuarded(ctx, id, current, target, failureReason)
	if err != nil {
		return nil, fmt.Errorf("persist transition %s -> %s for booking %s: %w",
			string(current), string(target), bookingID, err)
	}
	if !applied {
		stored, readErr := s.bookings.FindByID(ctx, id)
		if readErr == nil && stored == nil {
			return nil, fmt.Errorf("%w: %s", ErrBookingNotFound, bookingID)
		}
		return nil, fmt.Errorf("%w: booking %s", ErrStatusConflict, bookingID)
	}

	s.log.Info("Booking status updated",
		zap.String("booking_id", bookingID),
		zap.String("reference", booking.Reference),
		zap.String("old_status", string(current)),
		zap.String("new_status", string(target)),
	)

	updated, err := s.bookings.FindByID(ctx, id)
	if err != nil || updated == nil {
		// The write committed; fall back to the pre-write snapshot.
		updated = booking
		updated.Status = target
		updated.DeliveryFailureReason = failureReason
		updated.UpdatedAt = time.Now()
	}

	items, err := s.items.FindByBookingID(ctx, id)
	if err != nil {
		s.log.Warn("Failed to load booking items",
			zap.Error(err),
			zap.String("booking_id", bookingID))
	}
	updated.Items = items

	// Best-effort notification. Never blocks or fails the transition.
	if updated.CustomerEmail != "" {
		go s.notifyStatusChange(updated, current, target)
	}

	resp := response.BookingToResponse(updated)
	return &resp, nil
}

func (s *lifecycleService) notifyStatusChange(booking *entity.Booking, oldStatus, newStatus entity.Status) {
	ctx, cancel := context.WithTimeout(context.Background(), s.notifyTimeout)
	defer cancel()

	email := mailer.StatusChangeEmail{
		RecipientEmail:   booking.CustomerEmail,
		CustomerName:     booking.CustomerName,
		BookingReference: booking.Reference,
		OldStatus:        string(oldStatus),
		NewStatus:        string(newStatus),
		StartDate:        booking.StartDate.Format("2006-01-02"),
		EquipmentSummary: entity.EquipmentSummary(booking.Items),
	}

	if err := s.notifier.SendStatusChange(ctx, email); err != nil {
		// Secondary error only: the status change already committed.
		s.log.Error("Failed to send status change notification",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("recipient", booking.CustomerEmail),
			zap.String("new_status", string(newStatus)),
		)
	}
}
