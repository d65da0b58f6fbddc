package request

import (
	"time"

	"github.com/google/uuid"
)

// Action labels recorded on the activity log. One label per lifecycle event.
const (
	ActionCreated         = "created"
	ActionSentToVendor    = "sent_to_vendor"
	ActionQuoteSubmitted  = "quote_submitted"
	ActionApproved        = "approved"
	ActionRejected        = "rejected"
	ActionInvoiceUploaded = "invoice_uploaded"
	ActionMarkedPaid      = "marked_paid"
	ActionAutoCompleted   = "auto_completed"
	ActionReminderSent    = "reminder_sent"
	ActionCancelled       = "cancelled"
	ActionPricingAmended  = "pricing_amended"
)

// Activity is one immutable entry of a request's append-only log.
type Activity struct {
	ID                    uuid.UUID
	Action                string
	Description           string
	Timestamp             time.Time
	NotificationTriggered bool
}

func newActivity(action, description string, at time.Time, notified bool) Activity {
	return Activity{
		ID:                    uuid.New(),
		Action:                action,
		Description:           description,
		Timestamp:             at,
		NotificationTriggered: notified,
	}
}
