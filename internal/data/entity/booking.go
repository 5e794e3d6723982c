package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusPending        Status = "pending"
	StatusConfirmed      Status = "confirmed"
	StatusOutForDelivery Status = "out_for_delivery"
	StatusDelivered      Status = "delivered"
	StatusUndeliverable  Status = "undeliverable"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

// statusTransitions is the single source of truth for the booking
// lifecycle. A status missing from the keys is not a valid status.
var statusTransitions = map[Status][]Status{
	StatusPending:        {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusOutForDelivery, StatusCancelled},
	StatusOutForDelivery: {StatusDelivered, StatusUndeliverable},
	StatusDelivered:      {StatusCompleted, StatusOutForDelivery},
	StatusUndeliverable:  {StatusOutForDelivery, StatusCancelled},
	StatusCompleted:      {},
	StatusCancelled:      {},
}

// AllStatuses lists every lifecycle status in workflow order.
var AllStatuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusOutForDelivery,
	StatusDelivered,
	StatusUndeliverable,
	StatusCompleted,
	StatusCancelled,
}

func (s Status) Valid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// NextStatuses returns the statuses reachable from s in one transition.
func (s Status) NextStatuses() []Status {
	next := statusTransitions[s]
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether s -> target is in the transition table.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether s has no outgoing transitions.
func (s Status) IsTerminal() bool {
	return s.Valid() && len(statusTransitions[s]) == 0
}

// UndeliverableReasons is the advisory reason list shown to operators when
// marking a booking undeliverable. Any non-empty free-text reason is also
// accepted.
var UndeliverableReasons = []string{
	"missed flight",
	"no answer at door",
	"order was cancelled",
	"wrong delivery date",
	"customer unreachable",
	"address not found",
}

type Booking struct {
	Base
	Reference             string     `db:"reference"`
	CustomerName          string     `db:"customer_name"`
	CustomerEmail         string     `db:"customer_email"`
	CustomerPhone         string     `db:"customer_phone"`
	CustomerAddress       string     `db:"customer_address"`
	StartDate             time.Time  `db:"start_date"`
	EndDate               time.Time  `db:"end_date"`
	Status                Status     `db:"status"`
	TotalAmount           float64    `db:"total_amount"`
	DeliveryFailureReason *string    `db:"delivery_failure_reason"`
	AssignedTo            *uuid.UUID `db:"assigned_to"`

	// Items are loaded separately and only populated where needed.
	Items []*BookingItem `db:"-"`
}

type BookingItem struct {
	BaseSimple
	BookingID   uuid.UUID `db:"booking_id"`
	EquipmentID uuid.UUID `db:"equipment_id"`
	// EquipmentName is resolved by joining the equipment table; nil when
	// the equipment row no longer exists.
	EquipmentName *string `db:"equipment_name"`
	Quantity      int     `db:"quantity"`
	UnitPrice     float64 `db:"unit_price"`
	Subtotal      float64 `db:"subtotal"`
}

// EquipmentSummary renders booking items as a human-readable list for
// customer notifications, e.g. "Stroller (x2), Unknown Equipment (x1)".
func EquipmentSummary(items []*BookingItem) string {
	if len(items) == 0 {
		return "N/A"
	}

	parts := make([]string, len(items))
	for i, item := range items {
		name := "Unknown Equipment"
		if item.EquipmentName != nil && *item.EquipmentName != "" {
			name = *item.EquipmentName
		}
		parts[i] = fmt.Sprintf("%s (x%d)", name, item.Quantity)
	}

	return strings.Join(parts, ", ")
}
