package notify

import (
	"context"
	"log/slog"

	"shootflow/internal/domain/request"
	"shootflow/internal/store"

	"github.com/shopspring/decimal"
)

// ThreadGateway persists thread-id writebacks best effort. It is the same
// durable store the command layer uses; failures are logged, never fatal.
type ThreadGateway interface {
	Save(ctx context.Context, r *request.ShootRequest) error
}

// Correlator computes recipient, template and thread correlation for each
// lifecycle event, and delegates delivery to the external service. Every
// notification from one request group rides a single provider conversation:
// the first successfully sent message captures the thread id, which is then
// written back onto every member of the group.
type Correlator struct {
	delivery Delivery
	store    *store.RequestStore
	gateway  ThreadGateway
	finance  string
	logger   *slog.Logger
}

func NewCorrelator(delivery Delivery, s *store.RequestStore, gateway ThreadGateway, financeEmail string, logger *slog.Logger) *Correlator {
	return &Correlator{
		delivery: delivery,
		store:    s,
		gateway:  gateway,
		finance:  financeEmail,
		logger:   logger,
	}
}

// RequestEvent sends the notification for one lifecycle event. Delivery
// failure is logged and swallowed: notification is a side effect, never a
// precondition of workflow progress.
func (c *Correlator) RequestEvent(ctx context.Context, r *request.ShootRequest, kind TemplateKind, payload map[string]any) {
	recipient := c.recipientFor(r, kind)
	if recipient == "" {
		c.logger.Warn("no recipient for notification", "request_id", r.ID(), "template", string(kind))
		return
	}
	c.send(ctx, r, Message{
		Recipient: recipient,
		Template:  kind,
		Payload:   payload,
	})
}

// QuoteBatch flushes one settled batch of vendor submissions as a single
// notification to the group's approval recipient. Group size 1 keeps the
// per-request detail; larger groups get a combined summary with a grand total
// equal to the sum of the per-request quoted amounts.
func (c *Correlator) QuoteBatch(ctx context.Context, batch []PendingQuote) {
	if len(batch) == 0 {
		return
	}
	lead := batch[0].Request

	var payload map[string]any
	kind := TemplateQuoteSubmitted
	if len(batch) == 1 {
		payload = map[string]any{
			"request_id":   batch[0].RequestID,
			"shoot_dates":  lead.ShootDates(),
			"quote_amount": batch[0].Amount.StringFixed(2),
		}
	} else {
		kind = TemplateQuoteBatch
		total := decimal.Zero
		summaries := make([]map[string]any, len(batch))
		for i, p := range batch {
			total = total.Add(p.Amount)
			summaries[i] = map[string]any{
				"request_id":   p.RequestID,
				"shoot_dates":  p.Request.ShootDates(),
				"quote_amount": p.Amount.StringFixed(2),
			}
		}
		payload = map[string]any{
			"requests":    summaries,
			"grand_total": total.StringFixed(2),
		}
	}

	c.send(ctx, lead, Message{
		Recipient: lead.ApprovalEmail(),
		Template:  kind,
		Payload:   payload,
	})
}

func (c *Correlator) send(ctx context.Context, r *request.ShootRequest, msg Message) {
	msg.ThreadID = c.resolveThreadID(r)

	providerID, err := c.delivery.Send(ctx, msg)
	if err != nil {
		// No thread id is captured on failure; the transition has already
		// happened and stands.
		c.logger.Warn("notification delivery failed",
			"request_id", r.ID(), "template", string(msg.Template), "error", err)
		return
	}

	threadID := msg.ThreadID
	if threadID == "" {
		threadID = providerID
	}
	c.propagateThreadID(ctx, r, threadID)
}

// resolveThreadID returns the request's thread id, falling back to any
// sibling that already has one. Empty means a new thread starts.
func (c *Correlator) resolveThreadID(r *request.ShootRequest) string {
	if tid := r.EmailThreadID(); tid != "" {
		return tid
	}
	for _, sibling := range c.store.Siblings(r.ID()) {
		if tid := sibling.EmailThreadID(); tid != "" {
			return tid
		}
	}
	return ""
}

// propagateThreadID writes the thread id onto every group member that is
// still missing it, mirroring each to the durable store best effort.
func (c *Correlator) propagateThreadID(ctx context.Context, r *request.ShootRequest, threadID string) {
	if threadID == "" {
		return
	}
	for _, member := range c.store.Siblings(r.ID()) {
		if member.EmailThreadID() != "" {
			continue
		}
		member.SetEmailThreadID(threadID)
		if err := c.gateway.Save(ctx, member); err != nil {
			c.logger.Warn("thread id writeback not persisted",
				"request_id", member.ID(), "error", err)
		}
	}
}

func (c *Correlator) recipientFor(r *request.ShootRequest, kind TemplateKind) string {
	switch kind {
	case TemplateSentToVendor, TemplateApproved, TemplateRejected, TemplateCancelled:
		return r.Requestor().Email
	case TemplateQuoteSubmitted, TemplateQuoteBatch:
		return r.ApprovalEmail()
	case TemplateInvoiceUploaded:
		return c.finance
	case TemplatePaid, TemplateInvoiceReminder:
		return r.VendorEmail()
	}
	return ""
}
