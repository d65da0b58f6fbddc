package notify

import (
	"context"
)

// TemplateKind selects the outbound message template. Recipients are derived
// per kind by the correlator.
type TemplateKind string

const (
	TemplateSentToVendor    TemplateKind = "sent_to_vendor"
	TemplateQuoteSubmitted  TemplateKind = "quote_submitted"
	TemplateQuoteBatch      TemplateKind = "quote_batch"
	TemplateApproved        TemplateKind = "approved"
	TemplateRejected        TemplateKind = "rejected"
	TemplateInvoiceUploaded TemplateKind = "invoice_uploaded"
	TemplatePaid            TemplateKind = "paid"
	TemplateInvoiceReminder TemplateKind = "invoice_reminder"
	TemplateCancelled       TemplateKind = "cancelled"
)

// Message is one outbound notification. ThreadID, when set, keeps the message
// inside an existing provider conversation.
type Message struct {
	Recipient string         `json:"recipient"`
	Template  TemplateKind   `json:"template"`
	Payload   map[string]any `json:"payload"`
	ThreadID  string         `json:"thread_id,omitempty"`
}

// Delivery is the narrow contract with the external notification service.
// Send returns the provider-issued message id on success.
type Delivery interface {
	Send(ctx context.Context, msg Message) (string, error)
}
