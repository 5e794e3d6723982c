package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusTransitions(t *testing.T) {
	allowed := map[Status][]Status{
		StatusPending:        {StatusConfirmed, StatusCancelled},
		StatusConfirmed:      {StatusOutForDelivery, StatusCancelled},
		StatusOutForDelivery: {StatusDelivered, StatusUndeliverable},
		StatusDelivered:      {StatusCompleted, StatusOutForDelivery},
		StatusUndeliverable:  {StatusOutForDelivery, StatusCancelled},
		StatusCompleted:      {},
		StatusCancelled:      {},
	}

	// Check every from/to pair so a table edit cannot silently widen or
	// narrow the workflow.
	for _, from := range AllStatuses {
		for _, to := range AllStatuses {
			want := false
			for _, next := range allowed[from] {
				if next == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestStatusTerminal(t *testing.T) {
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())

	for _, s := range []Status{StatusPending, StatusConfirmed, StatusOutForDelivery, StatusDelivered, StatusUndeliverable} {
		assert.False(t, s.IsTerminal(), "%s should not be terminal", s)
	}
}

func TestStatusValid(t *testing.T) {
	for _, s := range AllStatuses {
		assert.True(t, s.Valid(), "%s", s)
	}

	assert.False(t, Status("shipped").Valid())
	assert.False(t, Status("").Valid())

	// Unknown statuses have no transitions in either direction.
	assert.False(t, Status("shipped").CanTransitionTo(StatusDelivered))
	assert.False(t, Status("shipped").IsTerminal())
}

func TestNextStatusesIsACopy(t *testing.T) {
	next := StatusPending.NextStatuses()
	require.Len(t, next, 2)

	next[0] = StatusCompleted
	assert.Equal(t, []Status{StatusConfirmed, StatusCancelled}, StatusPending.NextStatuses())
}

func TestEquipmentSummary(t *testing.T) {
	stroller := "Stroller"
	empty := ""

	items := []*BookingItem{
		{EquipmentName: &stroller, Quantity: 2},
		{EquipmentName: nil, Quantity: 1},
	}
	assert.Equal(t, "Stroller (x2), Unknown Equipment (x1)", EquipmentSummary(items))

	assert.Equal(t, "N/A", EquipmentSummary(nil))
	assert.Equal(t, "N/A", EquipmentSummary([]*BookingItem{}))

	assert.Equal(t, "Unknown Equipment (x3)", EquipmentSummary([]*BookingItem{
		{EquipmentName: &empty, Quantity: 3},
	}))
}
