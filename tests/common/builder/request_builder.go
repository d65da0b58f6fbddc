//go:build unit || e2e

package builder

import (
	"time"

	domain "shootflow/internal/domain/request"
	reqdto "shootflow/internal/handler/dto/request"
	"shootflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RequestBuilder struct {
	ID              uuid.UUID
	Status          domain.Status
	RequestorName   string
	RequestorEmail  string
	ApprovalEmail   string
	VendorEmail     string
	ShootDates      string
	Lines           []domain.EquipmentLine
	Quote           *domain.VendorQuote
	ApprovedAmount  *decimal.Decimal
	RejectionReason string
	Invoice         *domain.Invoice
	Paid            bool
	EmailThreadID   string
	GroupID         *uuid.UUID
	GroupIndex      int
	GroupSize       int
	Activities      []domain.Activity
	CreatedAt       time.Time
}

func NewRequestBuilder() *RequestBuilder {
	line, _ := domain.NewEquipmentLine("camera", 2, decimal.NewFromInt(150))
	return &RequestBuilder{
		ID:             uuid.New(),
		Status:         domain.StatusNewRequest,
		RequestorName:  "Priya Nair",
		RequestorEmail: "priya@example.com",
		ApprovalEmail:  "approvals@example.com",
		VendorEmail:    "vendor@example.com",
		ShootDates:     "2026-03-10 to 2026-03-12",
		Lines:          []domain.EquipmentLine{line},
		CreatedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
}

func (b *RequestBuilder) With(mutate func(*RequestBuilder)) *RequestBuilder {
	mutate(b)
	return b
}

func (b *RequestBuilder) WithStatus(s domain.Status) *RequestBuilder {
	b.Status = s
	return b
}

func (b *RequestBuilder) WithShootDates(dates string) *RequestBuilder {
	b.ShootDates = dates
	return b
}

func (b *RequestBuilder) WithQuote(amount int64) *RequestBuilder {
	b.Quote = &domain.VendorQuote{Amount: decimal.NewFromInt(amount)}
	return b
}

func (b *RequestBuilder) WithApprovedAmount(amount int64) *RequestBuilder {
	a := decimal.NewFromInt(amount)
	b.ApprovedAmount = &a
	return b
}

func (b *RequestBuilder) WithInvoice(name string) *RequestBuilder {
	b.Invoice = &domain.Invoice{Name: name, Document: []byte("pdf")}
	return b
}

func (b *RequestBuilder) WithGroup(groupID uuid.UUID, index, size int) *RequestBuilder {
	b.GroupID = &groupID
	b.GroupIndex = index
	b.GroupSize = size
	return b
}

func (b *RequestBuilder) WithThreadID(tid string) *RequestBuilder {
	b.EmailThreadID = tid
	return b
}

func (b *RequestBuilder) WithActivity(action string, at time.Time) *RequestBuilder {
	b.Activities = append(b.Activities, domain.Activity{
		ID:          uuid.New(),
		Action:      action,
		Description: action,
		Timestamp:   at,
	})
	return b
}

func (b *RequestBuilder) BuildDomain() *domain.ShootRequest {
	return domain.Reconstruct(domain.Snapshot{
		ID:              b.ID,
		Status:          b.Status,
		Requestor:       domain.Requestor{Name: b.RequestorName, Email: b.RequestorEmail},
		ApprovalEmail:   b.ApprovalEmail,
		VendorEmail:     b.VendorEmail,
		ShootDates:      b.ShootDates,
		EquipmentLines:  append([]domain.EquipmentLine(nil), b.Lines...),
		VendorQuote:     b.Quote,
		ApprovedAmount:  b.ApprovedAmount,
		RejectionReason: b.RejectionReason,
		Invoice:         b.Invoice,
		Paid:            b.Paid,
		Activities:      append([]domain.Activity(nil), b.Activities...),
		EmailThreadID:   b.EmailThreadID,
		GroupID:         b.GroupID,
		GroupIndex:      b.GroupIndex,
		GroupSize:       b.GroupSize,
		CreatedAt:       b.CreatedAt,
	})
}

func (b *RequestBuilder) BuildView() *queries.RequestView {
	return queries.ViewFromRequest(b.BuildDomain())
}

func (b *RequestBuilder) BuildCreateRequestDTO() reqdto.CreateShootRequest {
	shoots := make([]reqdto.ShootInput, 1)
	lines := make([]reqdto.EquipmentLineInput, len(b.Lines))
	for i, line := range b.Lines {
		lines[i] = reqdto.EquipmentLineInput{
			Category:     line.Category,
			Quantity:     line.Quantity,
			ExpectedRate: line.ExpectedRate,
		}
	}
	shoots[0] = reqdto.ShootInput{ShootDates: b.ShootDates, EquipmentLines: lines}
	return reqdto.CreateShootRequest{
		RequestorName:  b.RequestorName,
		RequestorEmail: b.RequestorEmail,
		ApprovalEmail:  b.ApprovalEmail,
		VendorEmail:    b.VendorEmail,
		Shoots:         shoots,
	}
}

// BuildGroupDomain builds size sibling requests sharing one group id, all in
// the builder's status.
func (b *RequestBuilder) BuildGroupDomain(size int) []*domain.ShootRequest {
	groupID := uuid.New()
	members := make([]*domain.ShootRequest, size)
	for i := range members {
		member := NewRequestBuilder()
		member.Status = b.Status
		member.RequestorName = b.RequestorName
		member.RequestorEmail = b.RequestorEmail
		member.ApprovalEmail = b.ApprovalEmail
		member.VendorEmail = b.VendorEmail
		if b.Quote != nil {
			quote := *b.Quote
			member.Quote = &quote
		}
		member.WithGroup(groupID, i+1, size)
		members[i] = member.BuildDomain()
	}
	return members
}
