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

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByReference(ctx context.Context, reference string) (*entity.Booking, error)
	List(ctx context.Context, status *entity.Status, limit, offset int) ([]*entity.Booking, error)
	Count(ctx context.Context, status *entity.Status) (int64, error)
	Update(ctx context.Context, booking *entity.Booking) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Booking, error)
	AssignDriver(ctx context.Context, bookingID uuid.UUID, driverID *uuid.UUID) error

	// UpdateStatusGuarded writes the new status only if the stored status
	// still equals expected. Returns false when no row matched, which the
	// caller disambiguates into not-found vs concurrent change.
	UpdateStatusGuarded(ctx context.Context, bookingID uuid.UUID, expected, target entity.Status, failureReason *string) (bool, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

const bookingColumns = `id, reference, customer_name, customer_email, customer_phone, customer_address,
	       start_date, end_date, status, total_amount, delivery_failure_reason, assigned_to,
	       created_at, updated_at`

func scanBooking(row pgx.Row) (*entity.Booking, error) {
	var booking entity.Booking
	err := row.Scan(
		&booking.ID,
		&booking.Reference,
		&booking.CustomerName,
		&booking.CustomerEmail,
		&booking.CustomerPhone,
		&booking.CustomerAddress,
		&booking.StartDate,
		&booking.EndDate,
		&booking.Status,
		&booking.TotalAmount,
		&booking.DeliveryFailureReason,
		&booking.AssignedTo,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, reference, customer_name, customer_email, customer_phone, customer_address,
		                      start_date, end_date, status, total_amount, assigned_to, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Reference,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.CustomerAddress,
		booking.StartDate,
		booking.EndDate,
		booking.Status,
		booking.TotalAmount,
		booking.AssignedTo,
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("reference", booking.Reference),
		)
		return fmt.Errorf("create booking %s: %w", booking.Reference, err)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE id = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id.String(), err)
	}

	return booking, nil
}

func (r *bookingRepository) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE reference = $1`

	booking, err := scanBooking(r.db.QueryRow(ctx, query, reference))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by reference",
			zap.Error(err),
			zap.String("reference", reference),
		)
		return nil, fmt.Errorf("find booking by reference %s: %w", reference, err)
	}

	return booking, nil
}

func (r *bookingRepository) List(ctx context.Context, status *entity.Status, limit, offset int) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE ($1::text IS NULL OR status = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := r.db.Query(ctx, query, status, limit, offset)
	if err != nil {
		r.log.Error("Failed to list bookings",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) Count(ctx context.Context, status *entity.Status) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE ($1::text IS NULL OR status = $1)`

	var count int64
	err := r.db.QueryRow(ctx, query, status).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count bookings", zap.Error(err))
		return 0, fmt.Errorf("count bookings: %w", err)
	}

	return count, nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET customer_name = $2, customer_email = $3, customer_phone = $4, customer_address = $5,
		    start_date = $6, end_date = $7, total_amount = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.CustomerName,
		booking.CustomerEmail,
		booking.CustomerPhone,
		booking.CustomerAddress,
		booking.StartDate,
		booking.EndDate,
		booking.TotalAmount,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", booking.ID.String())
	}

	return nil
}

func (r *bookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM bookings WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete booking",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return fmt.Errorf("delete booking %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", id.String())
	}

	r.log.Info("Booking deleted", zap.String("booking_id", id.String()))
	return nil
}

func (r *bookingRepository) FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Booking, error) {
	query := `SELECT ` + bookingColumns + `
		FROM bookings
		WHERE assigned_to = $1
		ORDER BY start_date
	`

	rows, err := r.db.Query(ctx, query, driverID)
	if err != nil {
		r.log.Error("Failed to find bookings by driver",
			zap.Error(err),
			zap.String("driver_id", driverID.String()),
		)
		return nil, fmt.Errorf("find bookings by driver %s: %w", driverID.String(), err)
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		booking, err := scanBooking(rows)
		if err != nil {
			r.log.Error("Failed to scan booking row", zap.Error(err))
			return nil, fmt.Errorf("scan booking row: %w", err)
		}
		bookings = append(bookings, booking)
	}

	return bookings, nil
}

func (r *bookingRepository) AssignDriver(ctx context.Context, bookingID uuid.UUID, driverID *uuid.UUID) error {
	query := `UPDATE bookings SET assigned_to = $2, updated_at = NOW() WHERE id = $1`

	result, err := r.db.Exec(ctx, query, bookingID, driverID)
	if err != nil {
		r.log.Error("Failed to assign driver",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
		)
		return fmt.Errorf("assign driver to booking %s: %w", bookingID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("booking %s not found", bookingID.String())
	}

	return nil
}

func (r *bookingRepository) UpdateStatusGuarded(ctx context.Context, bookingID uuid.UUID, expected, target entity.Status, failureReason *string) (bool, error) {
	// Conditional write: only succeeds while the stored status matches the
	// one the transition was validated against. The failure reason column
	// is set on entry into undeliverable and cleared otherwise.
	query := `
		UPDATE bookings
		SET status = $3, delivery_failure_reason = $4, updated_at = NOW()
		WHERE id = $1 AND status = $2
	`

	result, err := r.db.Exec(ctx, query, bookingID, expected, target, failureReason)
	if err != nil {
		r.log.Error("Failed to update booking status",
			zap.Error(err),
			zap.String("booking_id", bookingID.String()),
			zap.String("expected", string(expected)),
			zap.String("target", string(target)),
		)
		return false, fmt.Errorf("update booking %s status to %s: %w", bookingID.String(), string(target), err)
	}

	return result.RowsAffected() > 0, nil
}
