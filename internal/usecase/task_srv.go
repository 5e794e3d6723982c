package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/data/repository"
	"rental-booking/internal/dto/response"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskService projects assigned bookings into driver tasks. Tasks are
// recomputed from the booking collection on every read, never stored.
type TaskService interface {
	ListTasksForDriver(ctx context.Context, driverID string) ([]response.DriverTaskResponse, error)
	TodayTasksForDriver(ctx context.Context, driverID string) ([]response.DriverTaskResponse, error)
}

type taskService struct {
	bookings repository.BookingRepository
	log      *zap.Logger

	// now is swapped out in tests for the today filter.
	now func() time.Time
}

func NewTaskService(bookings repository.BookingRepository, log *zap.Logger) TaskService {
	return &taskService{
		bookings: bookings,
		log:      log.With(zap.String("service", "task")),
		now:      time.Now,
	}
}

func (s *taskService) ListTasksForDriver(ctx context.Context, driverID string) ([]response.DriverTaskResponse, error) {
	driverUUID, err := uuid.Parse(driverID)
	if err != nil {
		return nil, fmt.Errorf("invalid driver ID format %s: %w", driverID, err)
	}

	bookings, err := s.bookings.FindByDriver(ctx, driverUUID)
	if err != nil {
		s.log.Error("Failed to load driver bookings",
			zap.Error(err),
			zap.String("driver_id", driverID),
		)
		return nil, fmt.Errorf("load bookings for driver %s: %w", driverID, err)
	}

	return deriveTasks(bookings), nil
}

func (s *taskService) TodayTasksForDriver(ctx context.Context, driverID string) ([]response.DriverTaskResponse, error) {
	tasks, err := s.ListTasksForDriver(ctx, driverID)
	if err != nil {
		return nil, err
	}

	return tasksOn(tasks, s.now()), nil
}

// deriveTasks expands each booking into a delivery task keyed by
// start_date and a pickup task keyed by end_date, sorted ascending by
// task date.
func deriveTasks(bookings []*entity.Booking) []response.DriverTaskResponse {
	tasks := make([]response.DriverTaskResponse, 0, len(bookings)*2)

	for _, booking := range bookings {
		tasks = append(tasks,
			taskFromBooking(booking, response.TaskTypeDelivery, booking.StartDate),
			taskFromBooking(booking, response.TaskTypePickup, booking.EndDate),
		)
	}

	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].TaskDate < tasks[j].TaskDate
	})

	return tasks
}

func taskFromBooking(booking *entity.Booking, taskType response.TaskType, date time.Time) response.DriverTaskResponse {
	return response.DriverTaskResponse{
		BookingID:       booking.ID.String(),
		Reference:       booking.Reference,
		TaskType:        taskType,
		TaskDate:        date.Format("2006-01-02"),
		CustomerName:    booking.CustomerName,
		CustomerPhone:   booking.CustomerPhone,
		CustomerAddress: booking.CustomerAddress,
		Status:          booking.Status,
		TotalAmount:     booking.TotalAmount,
	}
}

// tasksOn keeps tasks whose date falls on the same local calendar day as
// the reference time. Comparing formatted dates sidesteps timezone math.
func tasksOn(tasks []response.DriverTaskResponse, day time.Time) []response.DriverTaskResponse {
	target := day.Format("2006-01-02")

	out := make([]response.DriverTaskResponse, 0, len(tasks))
	for _, task := range tasks {
		if task.TaskDate == target {
			out = append(out, task)
		}
	}

	return out
}
