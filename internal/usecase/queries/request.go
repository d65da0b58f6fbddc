package queries

import (
	"context"
	"time"

	"shootflow/internal/domain/request"
	"shootflow/internal/pkg/errs"
	"shootflow/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Read models (DTO for read side)
type RequestView struct {
	ID                 uuid.UUID           `json:"id"`
	Status             string              `json:"status"`
	RequestorName      string              `json:"requestor_name"`
	RequestorEmail     string              `json:"requestor_email"`
	ApprovalEmail      string              `json:"approval_email"`
	VendorEmail        string              `json:"vendor_email,omitempty"`
	ShootDates         string              `json:"shoot_dates"`
	ShootEndDate       *time.Time          `json:"shoot_end_date,omitempty"`
	EquipmentLines     []EquipmentLineView `json:"equipment_lines"`
	QuoteAmount        *decimal.Decimal    `json:"quote_amount,omitempty"`
	QuoteNotes         *string             `json:"quote_notes,omitempty"`
	ApprovedAmount     *decimal.Decimal    `json:"approved_amount,omitempty"`
	RejectionReason    *string             `json:"rejection_reason,omitempty"`
	CancellationReason *string             `json:"cancellation_reason,omitempty"`
	InvoiceName        *string             `json:"invoice_name,omitempty"`
	Paid               bool                `json:"paid"`
	EmailThreadID      *string             `json:"email_thread_id,omitempty"`
	GroupID            *uuid.UUID          `json:"group_id,omitempty"`
	GroupIndex         int                 `json:"group_index,omitempty"`
	GroupSize          int                 `json:"group_size,omitempty"`
	Activities         []ActivityView      `json:"activities"`
	CreatedAt          time.Time           `json:"created_at"`
}

type EquipmentLineView struct {
	Category     string           `json:"category"`
	Quantity     int              `json:"quantity"`
	ExpectedRate decimal.Decimal  `json:"expected_rate"`
	QuotedRate   *decimal.Decimal `json:"quoted_rate,omitempty"`
}

type ActivityView struct {
	ID                    uuid.UUID `json:"id"`
	Action                string    `json:"action"`
	Description           string    `json:"description"`
	Timestamp             time.Time `json:"timestamp"`
	NotificationTriggered bool      `json:"notification_triggered"`
}

type RequestListItem struct {
	ID            uuid.UUID        `json:"id"`
	Status        string           `json:"status"`
	RequestorName string           `json:"requestor_name"`
	ShootDates    string           `json:"shoot_dates"`
	QuoteAmount   *decimal.Decimal `json:"quote_amount,omitempty"`
	GroupID       *uuid.UUID       `json:"group_id,omitempty"`
	GroupIndex    int              `json:"group_index,omitempty"`
	GroupSize     int              `json:"group_size,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

type GroupView struct {
	GroupID    *uuid.UUID      `json:"group_id,omitempty"`
	Size       int             `json:"size"`
	GrandTotal decimal.Decimal `json:"grand_total"`
	Members    []*RequestView  `json:"members"`
}

type RequestQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RequestView, error)
	List(ctx context.Context) ([]*RequestListItem, error)
	GetGroup(ctx context.Context, id uuid.UUID) (*GroupView, error)
}

type requestQueriesImpl struct {
	store *store.RequestStore
}

func NewRequestQueries(s *store.RequestStore) RequestQueries {
	return &requestQueriesImpl{store: s}
}

func (q *requestQueriesImpl) GetByID(_ context.Context, id uuid.UUID) (*RequestView, error) {
	r, ok := q.store.Get(id)
	if !ok {
		return nil, errs.ErrRequestNotFound
	}
	return ViewFromRequest(r), nil
}

func (q *requestQueriesImpl) List(_ context.Context) ([]*RequestListItem, error) {
	all := q.store.All()
	out := make([]*RequestListItem, len(all))
	for i, r := range all {
		out[i] = listItemFromRequest(r)
	}
	return out, nil
}

// GetGroup resolves the request group of id; absence of a group id is treated
// as a group of one.
func (q *requestQueriesImpl) GetGroup(_ context.Context, id uuid.UUID) (*GroupView, error) {
	members := q.store.Siblings(id)
	if len(members) == 0 {
		return nil, errs.ErrRequestNotFound
	}

	view := &GroupView{
		GroupID:    members[0].GroupID(),
		Size:       len(members),
		GrandTotal: decimal.Zero,
		Members:    make([]*RequestView, len(members)),
	}
	for i, m := range members {
		view.Members[i] = ViewFromRequest(m)
		if quote := m.VendorQuote(); quote != nil {
			view.GrandTotal = view.GrandTotal.Add(quote.Amount)
		}
	}
	return view, nil
}

func ViewFromRequest(r *request.ShootRequest) *RequestView {
	snap := r.Snapshot()

	view := &RequestView{
		ID:             snap.ID,
		Status:         snap.Status.String(),
		RequestorName:  snap.Requestor.Name,
		RequestorEmail: snap.Requestor.Email,
		ApprovalEmail:  r.ApprovalEmail(),
		VendorEmail:    snap.VendorEmail,
		ShootDates:     snap.ShootDates,
		ApprovedAmount: snap.ApprovedAmount,
		Paid:           snap.Paid,
		GroupID:        snap.GroupID,
		GroupIndex:     snap.GroupIndex,
		GroupSize:      snap.GroupSize,
		CreatedAt:      snap.CreatedAt,
	}

	if end, err := request.ParseEndDate(snap.ShootDates); err == nil {
		view.ShootEndDate = &end
	}
	view.EquipmentLines = make([]EquipmentLineView, len(snap.EquipmentLines))
	for i, line := range snap.EquipmentLines {
		view.EquipmentLines[i] = EquipmentLineView{
			Category:     line.Category,
			Quantity:     line.Quantity,
			ExpectedRate: line.ExpectedRate,
			QuotedRate:   line.QuotedRate,
		}
	}
	if snap.VendorQuote != nil {
		amount := snap.VendorQuote.Amount
		notes := snap.VendorQuote.Notes
		view.QuoteAmount = &amount
		view.QuoteNotes = &notes
	}
	if snap.RejectionReason != "" {
		reason := snap.RejectionReason
		view.RejectionReason = &reason
	}
	if snap.CancellationReason != "" {
		reason := snap.CancellationReason
		view.CancellationReason = &reason
	}
	if snap.Invoice != nil {
		name := snap.Invoice.Name
		view.InvoiceName = &name
	}
	if snap.EmailThreadID != "" {
		tid := snap.EmailThreadID
		view.EmailThreadID = &tid
	}
	view.Activities = make([]ActivityView, len(snap.Activities))
	for i, a := range snap.Activities {
		view.Activities[i] = ActivityView{
			ID:                    a.ID,
			Action:                a.Action,
			Description:           a.Description,
			Timestamp:             a.Timestamp,
			NotificationTriggered: a.NotificationTriggered,
		}
	}
	return view
}

func listItemFromRequest(r *request.ShootRequest) *RequestListItem {
	item := &RequestListItem{
		ID:            r.ID(),
		Status:        r.Status().String(),
		RequestorName: r.Requestor().Name,
		ShootDates:    r.ShootDates(),
		GroupID:       r.GroupID(),
		GroupIndex:    r.GroupIndex(),
		GroupSize:     r.GroupSize(),
		CreatedAt:     r.CreatedAt(),
	}
	if quote := r.VendorQuote(); quote != nil {
		amount := quote.Amount
		item.QuoteAmount = &amount
	}
	return item
}
