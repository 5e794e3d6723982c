package usecase

import (
	"context"
	"testing"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/dto/response"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func assignedBooking(driverID uuid.UUID, start, end time.Time) *entity.Booking {
	booking := testBooking(entity.StatusConfirmed)
	booking.StartDate = start
	booking.EndDate = end
	booking.AssignedTo = &driverID
	return booking
}

func TestListTasksForDriver(t *testing.T) {
	driverID := uuid.New()
	booking := assignedBooking(driverID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	)
	repo := newFakeBookingRepo(booking)
	service := NewTaskService(repo, zap.NewNop())

	tasks, err := service.ListTasksForDriver(context.Background(), driverID.String())
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	// One delivery on the start date, one pickup on the end date, both
	// carrying the same contact details.
	assert.Equal(t, response.TaskTypeDelivery, tasks[0].TaskType)
	assert.Equal(t, "2025-06-01", tasks[0].TaskDate)
	assert.Equal(t, response.TaskTypePickup, tasks[1].TaskType)
	assert.Equal(t, "2025-06-05", tasks[1].TaskDate)

	for _, task := range tasks {
		assert.Equal(t, booking.ID.String(), task.BookingID)
		assert.Equal(t, booking.Reference, task.Reference)
		assert.Equal(t, booking.CustomerName, task.CustomerName)
		assert.Equal(t, booking.CustomerPhone, task.CustomerPhone)
		assert.Equal(t, booking.CustomerAddress, task.CustomerAddress)
		assert.Equal(t, entity.StatusConfirmed, task.Status)
	}
}

func TestListTasksSortedAcrossBookings(t *testing.T) {
	driverID := uuid.New()
	early := assignedBooking(driverID,
		time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 3, 0, 0, 0, 0, time.UTC),
	)
	late := assignedBooking(driverID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC),
	)
	repo := newFakeBookingRepo(early, late)
	service := NewTaskService(repo, zap.NewNop())

	tasks, err := service.ListTasksForDriver(context.Background(), driverID.String())
	require.NoError(t, err)
	require.Len(t, tasks, 4)

	dates := make([]string, len(tasks))
	for i, task := range tasks {
		dates[i] = task.TaskDate
	}
	assert.Equal(t, []string{"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-10"}, dates)
}

func TestListTasksIgnoresOtherDrivers(t *testing.T) {
	driverID := uuid.New()
	otherDriver := uuid.New()
	mine := assignedBooking(driverID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	)
	theirs := assignedBooking(otherDriver,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	)
	unassigned := testBooking(entity.StatusConfirmed)

	repo := newFakeBookingRepo(mine, theirs, unassigned)
	service := NewTaskService(repo, zap.NewNop())

	tasks, err := service.ListTasksForDriver(context.Background(), driverID.String())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, mine.ID.String(), task.BookingID)
	}
}

func TestTodayTasksForDriver(t *testing.T) {
	driverID := uuid.New()
	booking := assignedBooking(driverID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
	)
	repo := newFakeBookingRepo(booking)

	service := NewTaskService(repo, zap.NewNop()).(*taskService)
	service.now = func() time.Time {
		return time.Date(2025, 6, 5, 14, 30, 0, 0, time.UTC)
	}

	tasks, err := service.TodayTasksForDriver(context.Background(), driverID.String())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, response.TaskTypePickup, tasks[0].TaskType)
	assert.Equal(t, "2025-06-05", tasks[0].TaskDate)

	// A day with nothing scheduled yields an empty list, not an error.
	service.now = func() time.Time {
		return time.Date(2025, 7, 1, 9, 0, 0, 0, time.UTC)
	}
	tasks, err = service.TodayTasksForDriver(context.Background(), driverID.String())
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestListTasksInvalidDriverID(t *testing.T) {
	repo := newFakeBookingRepo()
	service := NewTaskService(repo, zap.NewNop())

	_, err := service.ListTasksForDriver(context.Background(), "not-a-uuid")
	assert.Error(t, err)
}
