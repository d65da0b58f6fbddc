package request

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrTerminalState     = errors.New("no transition leaves a terminal state")
	ErrQuoteMissing      = errors.New("vendor quote missing")
	ErrInvoiceMissing    = errors.New("invoice record missing")
	ErrReasonRequired    = errors.New("reason required")
	ErrNotApprovedYet    = errors.New("pricing can only be amended after approval")
	ErrNegativeQuote     = errors.New("quoted amount cannot be negative")
)

// ShootRequest is the primary entity: an equipment-rental production request
// moving through requestor → vendor → approver → finance. All mutation goes
// through the transition methods below; each status change appends exactly one
// Activity.
type ShootRequest struct {
	id                 uuid.UUID
	status             Status
	requestor          Requestor
	approvalEmail      string
	vendorEmail        string
	shootDates         string
	equipmentLines     []EquipmentLine
	vendorQuote        *VendorQuote
	approvedAmount     *decimal.Decimal
	rejectionReason    string
	cancellationReason string
	invoice            *Invoice
	paid               bool
	activities         []Activity
	emailThreadID      string
	groupID            *uuid.UUID
	groupIndex         int
	groupSize          int
	createdAt          time.Time
}

// Snapshot is the exported flat form of a ShootRequest, used by the
// persistence gateway and the read side.
type Snapshot struct {
	ID                 uuid.UUID
	Status             Status
	Requestor          Requestor
	ApprovalEmail      string
	VendorEmail        string
	ShootDates         string
	EquipmentLines     []EquipmentLine
	VendorQuote        *VendorQuote
	ApprovedAmount     *decimal.Decimal
	RejectionReason    string
	CancellationReason string
	Invoice            *Invoice
	Paid               bool
	Activities         []Activity
	EmailThreadID      string
	GroupID            *uuid.UUID
	GroupIndex         int
	GroupSize          int
	CreatedAt          time.Time
}

func Reconstruct(s Snapshot) *ShootRequest {
	return &ShootRequest{
		id:                 s.ID,
		status:             s.Status,
		requestor:          s.Requestor,
		approvalEmail:      s.ApprovalEmail,
		vendorEmail:        s.VendorEmail,
		shootDates:         s.ShootDates,
		equipmentLines:     s.EquipmentLines,
		vendorQuote:        s.VendorQuote,
		approvedAmount:     s.ApprovedAmount,
		rejectionReason:    s.RejectionReason,
		cancellationReason: s.CancellationReason,
		invoice:            s.Invoice,
		paid:               s.Paid,
		activities:         s.Activities,
		emailThreadID:      s.EmailThreadID,
		groupID:            s.GroupID,
		groupIndex:         s.GroupIndex,
		groupSize:          s.GroupSize,
		createdAt:          s.CreatedAt,
	}
}

func (r *ShootRequest) Snapshot() Snapshot {
	return Snapshot{
		ID:                 r.id,
		Status:             r.status,
		Requestor:          r.requestor,
		ApprovalEmail:      r.approvalEmail,
		VendorEmail:        r.vendorEmail,
		ShootDates:         r.shootDates,
		EquipmentLines:     append([]EquipmentLine(nil), r.equipmentLines...),
		VendorQuote:        r.vendorQuote,
		ApprovedAmount:     r.approvedAmount,
		RejectionReason:    r.rejectionReason,
		CancellationReason: r.cancellationReason,
		Invoice:            r.invoice,
		Paid:               r.paid,
		Activities:         append([]Activity(nil), r.activities...),
		EmailThreadID:      r.emailThreadID,
		GroupID:            r.groupID,
		GroupIndex:         r.groupIndex,
		GroupSize:          r.groupSize,
		CreatedAt:          r.createdAt,
	}
}

func (r *ShootRequest) ID() uuid.UUID        { return r.id }
func (r *ShootRequest) Status() Status       { return r.status }
func (r *ShootRequest) Requestor() Requestor { return r.requestor }
func (r *ShootRequest) ApprovalEmail() string {
	if r.approvalEmail != "" {
		return r.approvalEmail
	}
	return r.requestor.Email
}
func (r *ShootRequest) VendorEmail() string     { return r.vendorEmail }
func (r *ShootRequest) ShootDates() string      { return r.shootDates }
func (r *ShootRequest) VendorQuote() *VendorQuote {
	if r.vendorQuote == nil {
		return nil
	}
	q := *r.vendorQuote
	return &q
}
func (r *ShootRequest) ApprovedAmount() *decimal.Decimal {
	if r.approvedAmount == nil {
		return nil
	}
	a := *r.approvedAmount
	return &a
}
func (r *ShootRequest) RejectionReason() string    { return r.rejectionReason }
func (r *ShootRequest) CancellationReason() string { return r.cancellationReason }
func (r *ShootRequest) Invoice() *Invoice {
	if r.invoice == nil {
		return nil
	}
	inv := *r.invoice
	return &inv
}
func (r *ShootRequest) Paid() bool            { return r.paid }
func (r *ShootRequest) EmailThreadID() string { return r.emailThreadID }
func (r *ShootRequest) GroupID() *uuid.UUID   { return r.groupID }
func (r *ShootRequest) GroupIndex() int       { return r.groupIndex }
func (r *ShootRequest) GroupSize() int        { return r.groupSize }
func (r *ShootRequest) CreatedAt() time.Time  { return r.createdAt }

func (r *ShootRequest) EquipmentLines() []EquipmentLine {
	return append([]EquipmentLine(nil), r.equipmentLines...)
}

// Activities returns the append-only log, oldest first.
func (r *ShootRequest) Activities() []Activity {
	return append([]Activity(nil), r.activities...)
}

// SendToVendor moves a new or already-circulating request to the vendor.
func (r *ShootRequest) SendToVendor(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if r.status != StatusNewRequest && r.status != StatusWithVendor {
		return ErrInvalidTransition
	}
	r.status = StatusWithVendor
	r.appendActivity(ActionSentToVendor, "request sent to vendor for quoting", now, true)
	return nil
}

// SubmitQuote records the vendor's priced response and moves the request to
// approval. A re-submission after rejection clears the rejection reason.
func (r *ShootRequest) SubmitQuote(amount decimal.Decimal, notes string, itemized []QuotedLineRate, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if r.status != StatusWithVendor && r.status != StatusWithSwati {
		return ErrInvalidTransition
	}
	if amount.IsNegative() {
		return ErrNegativeQuote
	}
	for _, q := range itemized {
		if q.Index < 0 || q.Index >= len(r.equipmentLines) {
			return ErrLineIndexOutside
		}
	}
	for _, q := range itemized {
		rate := q.Rate
		r.equipmentLines[q.Index].QuotedRate = &rate
	}
	r.vendorQuote = &VendorQuote{Amount: amount, Notes: notes}
	r.rejectionReason = ""
	r.status = StatusWithSwati
	r.appendActivity(ActionQuoteSubmitted, fmt.Sprintf("vendor quoted %s", amount.StringFixed(2)), now, true)
	return nil
}

// Approve accepts the pending quote. The approved amount is captured
// independently of the quote so later quote edits never rewrite history.
func (r *ShootRequest) Approve(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if r.status != StatusWithSwati {
		return ErrInvalidTransition
	}
	if r.vendorQuote == nil {
		return ErrQuoteMissing
	}
	amount := r.vendorQuote.Amount
	r.approvedAmount = &amount
	r.status = StatusReadyForShoot
	r.appendActivity(ActionApproved, fmt.Sprintf("quote approved at %s", amount.StringFixed(2)), now, true)
	return nil
}

// Reject returns the request to the vendor with a mandatory reason and clears
// the pending quote.
func (r *ShootRequest) Reject(reason string, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if r.status != StatusWithSwati {
		return ErrInvalidTransition
	}
	if reason == "" {
		return ErrReasonRequired
	}
	r.rejectionReason = reason
	r.vendorQuote = nil
	r.status = StatusWithVendor
	r.appendActivity(ActionRejected, "quote rejected: "+reason, now, true)
	return nil
}

// AttachInvoice records the uploaded invoice document. Allowed from any
// non-terminal state, typically pending_invoice.
func (r *ShootRequest) AttachInvoice(name string, document []byte, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if name == "" {
		return ErrInvoiceMissing
	}
	r.invoice = &Invoice{Name: name, Document: document}
	r.appendActivity(ActionInvoiceUploaded, "invoice uploaded: "+name, now, true)
	return nil
}

// MarkPaid settles the invoice and completes the request.
func (r *ShootRequest) MarkPaid(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if r.invoice == nil {
		return ErrInvoiceMissing
	}
	r.paid = true
	r.status = StatusCompleted
	r.appendActivity(ActionMarkedPaid, "invoice marked as paid", now, true)
	return nil
}

// AutoComplete is the sweep-driven transition fired once the shoot end date
// has passed. It never triggers a notification.
func (r *ShootRequest) AutoComplete(now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if r.status != StatusReadyForShoot {
		return ErrInvalidTransition
	}
	r.status = StatusPendingInvoice
	r.appendActivity(ActionAutoCompleted, "shoot dates passed, awaiting invoice", now, false)
	return nil
}

// Cancel aborts the request from any non-terminal state.
func (r *ShootRequest) Cancel(reason string, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if reason == "" {
		return ErrReasonRequired
	}
	r.cancellationReason = reason
	r.status = StatusCancelled
	r.appendActivity(ActionCancelled, "request cancelled: "+reason, now, true)
	return nil
}

// AmendApprovedPricing applies an explicit admin correction, updating the
// quote amount and the approved amount together. Never implicit.
func (r *ShootRequest) AmendApprovedPricing(amount decimal.Decimal, now time.Time) error {
	if r.status.IsTerminal() {
		return ErrTerminalState
	}
	if r.approvedAmount == nil || r.vendorQuote == nil {
		return ErrNotApprovedYet
	}
	if amount.IsNegative() {
		return ErrNegativeQuote
	}
	r.vendorQuote.Amount = amount
	corrected := amount
	r.approvedAmount = &corrected
	r.appendActivity(ActionPricingAmended, fmt.Sprintf("approved pricing corrected to %s", amount.StringFixed(2)), now, true)
	return nil
}

// MarkReminderSent appends the reminder-sent marker. The marker is the sole
// de-duplication mechanism for the invoice-reminder sweep.
func (r *ShootRequest) MarkReminderSent(now time.Time) {
	r.appendActivity(ActionReminderSent, "invoice reminder sent to vendor", now, true)
}

// ReminderSent reports whether the reminder-sent marker exists.
func (r *ShootRequest) ReminderSent() bool {
	for _, a := range r.activities {
		if a.Action == ActionReminderSent {
			return true
		}
	}
	return false
}

// AutoCompletedAt returns the timestamp of the activity marking completion.
func (r *ShootRequest) AutoCompletedAt() (time.Time, bool) {
	for _, a := range r.activities {
		if a.Action == ActionAutoCompleted {
			return a.Timestamp, true
		}
	}
	return time.Time{}, false
}

// SetEmailThreadID records the provider conversation id. First write wins;
// the correlator propagates it across the whole group.
func (r *ShootRequest) SetEmailThreadID(threadID string) {
	if r.emailThreadID == "" && threadID != "" {
		r.emailThreadID = threadID
	}
}

func (r *ShootRequest) appendActivity(action, description string, at time.Time, notified bool) {
	r.activities = append(r.activities, newActivity(action, description, at, notified))
}
