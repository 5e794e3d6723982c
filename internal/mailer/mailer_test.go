package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusChangeEmailRendering(t *testing.T) {
	email := StatusChangeEmail{
		RecipientEmail:   "maria@example.com",
		CustomerName:     "Maria Lopez",
		BookingReference: "RENT-20250601-101500-0001",
		OldStatus:        "confirmed",
		NewStatus:        "out_for_delivery",
		StartDate:        "2025-06-01",
		EquipmentSummary: "Stroller (x2)",
	}

	assert.Equal(t, "Your booking RENT-20250601-101500-0001 is now out for delivery", email.Subject())

	plain := email.PlainBody()
	assert.Contains(t, plain, "Hello Maria Lopez")
	assert.Contains(t, plain, "from confirmed to out for delivery")
	assert.Contains(t, plain, "Rental start: 2025-06-01")
	assert.Contains(t, plain, "Equipment: Stroller (x2)")

	html := email.HTMLBody()
	assert.Contains(t, html, "<strong>RENT-20250601-101500-0001</strong>")
	assert.Contains(t, html, "out for delivery")
}
