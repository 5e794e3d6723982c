package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"rental-booking/internal/data/entity"
	"rental-booking/internal/mailer"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// fakeBookingRepo is an in-memory BookingRepository. The guarded status
// write runs under a mutex so concurrent transitions behave like the
// conditional UPDATE they stand in for.
type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings map[uuid.UUID]*entity.Booking

	findErr   error
	updateErr error
}

func newFakeBookingRepo(bookings ...*entity.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[uuid.UUID]*entity.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}

	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}

	clone := *booking
	return &clone, nil
}

func (r *fakeBookingRepo) UpdateStatusGuarded(ctx context.Context, bookingID uuid.UUID, expected, target entity.Status, failureReason *string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.updateErr != nil {
		return false, r.updateErr
	}

	booking, ok := r.bookings[bookingID]
	if !ok || booking.Status != expected {
		return false, nil
	}

	booking.Status = target
	booking.DeliveryFailureReason = failureReason
	booking.UpdatedAt = time.Now()
	return true, nil
}

func (r *fakeBookingRepo) Create(ctx context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bookings[booking.ID] = booking
	return nil
}

func (r *fakeBookingRepo) FindByReference(ctx context.Context, reference string) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.Reference == reference {
			clone := *b
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *fakeBookingRepo) List(ctx context.Context, status *entity.Status, limit, offset int) ([]*entity.Booking, error) {
	return nil, nil
}

func (r *fakeBookingRepo) Count(ctx context.Context, status *entity.Status) (int64, error) {
	return 0, nil
}

func (r *fakeBookingRepo) Update(ctx context.Context, booking *entity.Booking) error {
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) FindByDriver(ctx context.Context, driverID uuid.UUID) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.AssignedTo != nil && *b.AssignedTo == driverID {
			clone := *b
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *fakeBookingRepo) AssignDriver(ctx context.Context, bookingID uuid.UUID, driverID *uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.bookings[bookingID]; ok {
		b.AssignedTo = driverID
	}
	return nil
}

func (r *fakeBookingRepo) statusOf(id uuid.UUID) entity.Status {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings[id].Status
}

type fakeItemRepo struct {
	items map[uuid.UUID][]*entity.BookingItem
}

func (r *fakeItemRepo) CreateBatch(ctx context.Context, items []*entity.BookingItem) error {
	return nil
}

func (r *fakeItemRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*entity.BookingItem, error) {
	return r.items[bookingID], nil
}

func (r *fakeItemRepo) DeleteByBookingID(ctx context.Context, bookingID uuid.UUID) error {
	return nil
}

// fakeNotifier records sent emails on a channel so tests can observe the
// async dispatch, and can be told to fail every send.
type fakeNotifier struct {
	sent    chan mailer.StatusChangeEmail
	sendErr error
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan mailer.StatusChangeEmail, 8)}
}

func (n *fakeNotifier) SendStatusChange(ctx context.Context, email mailer.StatusChangeEmail) error {
	n.sent <- email
	return n.sendErr
}

func (n *fakeNotifier) waitForEmail(t *testing.T) mailer.StatusChangeEmail {
	t.Helper()
	select {
	case email := <-n.sent:
		return email
	case <-time.After(2 * time.Second):
		t.Fatal("expected a status change email, got none")
		return mailer.StatusChangeEmail{}
	}
}

func testBooking(status entity.Status) *entity.Booking {
	booking := &entity.Booking{
		Reference:       "RENT-20250601-101500-0001",
		CustomerName:    "Maria Lopez",
		CustomerEmail:   "maria@example.com",
		CustomerPhone:   "+34 600 000 000",
		CustomerAddress: "Calle Mayor 1, Madrid",
		StartDate:       time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC),
		Status:          status,
		TotalAmount:     120,
	}
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	booking.UpdatedAt = time.Now()
	return booking
}

func newLifecycleFixture(bookings ...*entity.Booking) (LifecycleService, *fakeBookingRepo, *fakeItemRepo, *fakeNotifier) {
	repo := newFakeBookingRepo(bookings...)
	items := &fakeItemRepo{items: make(map[uuid.UUID][]*entity.BookingItem)}
	notifier := newFakeNotifier()
	service := NewLifecycleService(repo, items, notifier, time.Second, zap.NewNop())
	return service, repo, items, notifier
}

func TestTransitionHappyPath(t *testing.T) {
	booking := testBooking(entity.StatusPending)
	service, repo, _, notifier := newLifecycleFixture(booking)

	resp, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusConfirmed, "")
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.StatusConfirmed, resp.Status)
	assert.Equal(t, []entity.Status{entity.StatusOutForDelivery, entity.StatusCancelled}, resp.AllowedNextStatuses)
	assert.Equal(t, entity.StatusConfirmed, repo.statusOf(booking.ID))

	email := notifier.waitForEmail(t)
	assert.Equal(t, "maria@example.com", email.RecipientEmail)
	assert.Equal(t, booking.Reference, email.BookingReference)
	assert.Equal(t, "pending", email.OldStatus)
	assert.Equal(t, "confirmed", email.NewStatus)
	assert.Equal(t, "2025-06-01", email.StartDate)
}

func TestTransitionEmailIncludesEquipmentSummary(t *testing.T) {
	booking := testBooking(entity.StatusPending)
	service, _, items, notifier := newLifecycleFixture(booking)

	stroller := "Stroller"
	items.items[booking.ID] = []*entity.BookingItem{
		{EquipmentName: &stroller, Quantity: 2},
		{EquipmentName: nil, Quantity: 1},
	}

	_, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusConfirmed, "")
	require.NoError(t, err)

	email := notifier.waitForEmail(t)
	assert.Equal(t, "Stroller (x2), Unknown Equipment (x1)", email.EquipmentSummary)
}

func TestTransitionInvalidTarget(t *testing.T) {
	booking := testBooking(entity.StatusPending)
	service, repo, _, _ := newLifecycleFixture(booking)

	_, err := service.Transition(context.Background(), booking.ID.String(), entity.Status("shipped"), "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = service.Transition(context.Background(), booking.ID.String(), entity.StatusDelivered, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	assert.Equal(t, entity.StatusPending, repo.statusOf(booking.ID))
}

func TestTransitionFromTerminalStatus(t *testing.T) {
	booking := testBooking(entity.StatusCompleted)
	service, _, _, _ := newLifecycleFixture(booking)

	for _, target := range entity.AllStatuses {
		_, err := service.Transition(context.Background(), booking.ID.String(), target, "")
		assert.ErrorIs(t, err, ErrInvalidTransition, "completed -> %s should be rejected", target)
	}
}

func TestTransitionUndeliverableRequiresReason(t *testing.T) {
	booking := testBooking(entity.StatusOutForDelivery)
	service, repo, _, _ := newLifecycleFixture(booking)

	_, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusUndeliverable, "")
	assert.ErrorIs(t, err, ErrReasonRequired)

	_, err = service.Transition(context.Background(), booking.ID.String(), entity.StatusUndeliverable, "   ")
	assert.ErrorIs(t, err, ErrReasonRequired)

	assert.Equal(t, entity.StatusOutForDelivery, repo.statusOf(booking.ID))

	resp, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusUndeliverable, "no answer at door")
	require.NoError(t, err)
	require.NotNil(t, resp.DeliveryFailureReason)
	assert.Equal(t, "no answer at door", *resp.DeliveryFailureReason)
}

func TestTransitionClearsFailureReasonOnRetry(t *testing.T) {
	booking := testBooking(entity.StatusUndeliverable)
	reason := "wrong delivery date"
	booking.DeliveryFailureReason = &reason
	service, _, _, _ := newLifecycleFixture(booking)

	resp, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusOutForDelivery, "")
	require.NoError(t, err)

	assert.Equal(t, entity.StatusOutForDelivery, resp.Status)
	assert.Nil(t, resp.DeliveryFailureReason)
}

func TestTransitionUndoDelivered(t *testing.T) {
	booking := testBooking(entity.StatusDelivered)
	service, _, _, _ := newLifecycleFixture(booking)

	// Delivered can be walked back to out_for_delivery but not further.
	resp, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusOutForDelivery, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusOutForDelivery, resp.Status)

	_, err = service.Transition(context.Background(), booking.ID.String(), entity.StatusPending, "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestTransitionBookingNotFound(t *testing.T) {
	service, _, _, _ := newLifecycleFixture()

	_, err := service.Transition(context.Background(), uuid.NewString(), entity.StatusConfirmed, "")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = service.Transition(context.Background(), "not-a-uuid", entity.StatusConfirmed, "")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrBookingNotFound)
}

func TestTransitionPersistenceFailure(t *testing.T) {
	booking := testBooking(entity.StatusPending)
	service, repo, _, notifier := newLifecycleFixture(booking)
	repo.updateErr = errors.New("connection reset")

	_, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusConfirmed, "")
	require.Error(t, err)

	select {
	case <-notifier.sent:
		t.Fatal("no email should be sent when the write fails")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTransitionNotifierFailureDoesNotFailTransition(t *testing.T) {
	booking := testBooking(entity.StatusPending)
	service, repo, _, notifier := newLifecycleFixture(booking)
	notifier.sendErr = errors.New("sendgrid returned status 500")

	resp, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusConfirmed, "")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusConfirmed, resp.Status)
	assert.Equal(t, entity.StatusConfirmed, repo.statusOf(booking.ID))

	// The send is still attempted even though it fails.
	notifier.waitForEmail(t)
}

func TestTransitionSkipsNotificationWithoutEmail(t *testing.T) {
	booking := testBooking(entity.StatusPending)
	booking.CustomerEmail = ""
	service, _, _, notifier := newLifecycleFixture(booking)

	_, err := service.Transition(context.Background(), booking.ID.String(), entity.StatusConfirmed, "")
	require.NoError(t, err)

	select {
	case <-notifier.sent:
		t.Fatal("no email should be sent without a recipient")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestTransitionConcurrentOperators(t *testing.T) {
	booking := testBooking(entity.StatusConfirmed)
	service, repo, _, _ := newLifecycleFixture(booking)

	// Two operators act on the same confirmed booking at once. Whichever
	// write lands first invalidates the other, so exactly one can win.
	targets := []entity.Status{entity.StatusOutForDelivery, entity.StatusCancelled}
	errs := make([]error, len(targets))

	var wg sync.WaitGroup
	for i, target := range targets {
		wg.Add(1)
		go func(i int, target entity.Status) {
			defer wg.Done()
			_, errs[i] = service.Transition(context.Background(), booking.ID.String(), target, "")
		}(i, target)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		assert.True(t,
			errors.Is(err, ErrStatusConflict) || errors.Is(err, ErrInvalidTransition),
			"loser should see a conflict or a stale-state rejection, got: %v", err)
	}
	assert.Equal(t, 1, successes)

	final := repo.statusOf(booking.ID)
	assert.Contains(t, targets, final)
}
