package mailer

import (
	"context"
	"fmt"
)

// StatusChangeEmail is the payload for a booking status notification.
type StatusChangeEmail struct {
	RecipientEmail   string
	CustomerName     string
	BookingReference string
	OldStatus        string
	NewStatus        string
	StartDate        string
	EquipmentSummary string
}

// Notifier delivers customer notifications. Implementations must treat
// delivery as best-effort: the caller never rolls back on failure.
type Notifier interface {
	SendStatusChange(ctx context.Context, email StatusChangeEmail) error
}

func (e StatusChangeEmail) Subject() string {
	return fmt.Sprintf("Your booking %s is now %s", e.BookingReference, humanStatus(e.NewStatus))
}

// PlainBody renders the notification as plain text.
func (e StatusChangeEmail) PlainBody() string {
	return fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your booking %s has been updated from %s to %s.\n\n"+
			"Booking details:\n"+
			"Rental start: %s\n"+
			"Equipment: %s\n\n"+
			"Thank you for renting with us.",
		e.CustomerName,
		e.BookingReference,
		humanStatus(e.OldStatus),
		humanStatus(e.NewStatus),
		e.StartDate,
		e.EquipmentSummary,
	)
}

// HTMLBody renders a minimal HTML variant of the same content.
func (e StatusChangeEmail) HTMLBody() string {
	return fmt.Sprintf(
		"<p>Hello %s,</p>"+
			"<p>Your booking <strong>%s</strong> has been updated from <strong>%s</strong> to <strong>%s</strong>.</p>"+
			"<p>Rental start: %s<br>Equipment: %s</p>"+
			"<p>Thank you for renting with us.</p>",
		e.CustomerName,
		e.BookingReference,
		humanStatus(e.OldStatus),
		humanStatus(e.NewStatus),
		e.StartDate,
		e.EquipmentSummary,
	)
}

// humanStatus turns "out_for_delivery" into "out for delivery".
func humanStatus(status string) string {
	out := make([]rune, 0, len(status))
	for _, r := range status {
		if r == '_' {
			out = append(out, ' ')
			continue
		}
		out = append(out, r)
	}
	return string(out)
}
