package response

import (
	"time"

	"shootflow/internal/usecase/commands"
	"shootflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ShootRequestResponse struct {
	ID                 uuid.UUID               `json:"id"`
	Status             string                  `json:"status"`
	RequestorName      string                  `json:"requestorName"`
	RequestorEmail     string                  `json:"requestorEmail"`
	ApprovalEmail      string                  `json:"approvalEmail"`
	VendorEmail        string                  `json:"vendorEmail,omitempty"`
	ShootDates         string                  `json:"shootDates"`
	ShootEndDate       *time.Time              `json:"shootEndDate,omitempty"`
	EquipmentLines     []EquipmentLineResponse `json:"equipmentLines"`
	QuoteAmount        *decimal.Decimal        `json:"quoteAmount,omitempty"`
	QuoteNotes         *string                 `json:"quoteNotes,omitempty"`
	ApprovedAmount     *decimal.Decimal        `json:"approvedAmount,omitempty"`
	RejectionReason    *string                 `json:"rejectionReason,omitempty"`
	CancellationReason *string                 `json:"cancellationReason,omitempty"`
	InvoiceName        *string                 `json:"invoiceName,omitempty"`
	Paid               bool                    `json:"paid"`
	EmailThreadID      *string                 `json:"emailThreadId,omitempty"`
	GroupID            *uuid.UUID              `json:"groupId,omitempty"`
	GroupIndex         int                     `json:"groupIndex,omitempty"`
	GroupSize          int                     `json:"groupSize,omitempty"`
	Activities         []ActivityResponse      `json:"activities"`
	CreatedAt          time.Time               `json:"createdAt"`
}

type EquipmentLineResponse struct {
	Category     string           `json:"category"`
	Quantity     int              `json:"quantity"`
	ExpectedRate decimal.Decimal  `json:"expectedRate"`
	QuotedRate   *decimal.Decimal `json:"quotedRate,omitempty"`
}

type ActivityResponse struct {
	ID                    uuid.UUID `json:"id"`
	Action                string    `json:"action"`
	Description           string    `json:"description"`
	Timestamp             time.Time `json:"timestamp"`
	NotificationTriggered bool      `json:"notificationTriggered"`
}

type ShootRequestListResponse struct {
	ID            uuid.UUID        `json:"id"`
	Status        string           `json:"status"`
	RequestorName string           `json:"requestorName"`
	ShootDates    string           `json:"shootDates"`
	QuoteAmount   *decimal.Decimal `json:"quoteAmount,omitempty"`
	GroupID       *uuid.UUID       `json:"groupId,omitempty"`
	GroupIndex    int              `json:"groupIndex,omitempty"`
	GroupSize     int              `json:"groupSize,omitempty"`
	CreatedAt     time.Time        `json:"createdAt"`
}

type GroupResponse struct {
	GroupID    *uuid.UUID              `json:"groupId,omitempty"`
	Size       int                     `json:"size"`
	GrandTotal decimal.Decimal         `json:"grandTotal"`
	Members    []*ShootRequestResponse `json:"members"`
}

// TransitionResponse reports a single-request transition; persisted is false
// when the in-memory state advanced but the durable write failed.
type TransitionResponse struct {
	Request   *ShootRequestResponse `json:"request"`
	Persisted bool                  `json:"persisted"`
}

type GroupMemberResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Persisted bool      `json:"persisted"`
	Error     *string   `json:"error,omitempty"`
}

type GroupTransitionResponse struct {
	Members    []GroupMemberResponse `json:"members"`
	Consistent bool                  `json:"consistent"`
}

func FromRequestView(rm *queries.RequestView) *ShootRequestResponse {
	resp := &ShootRequestResponse{
		ID:                 rm.ID,
		Status:             rm.Status,
		RequestorName:      rm.RequestorName,
		RequestorEmail:     rm.RequestorEmail,
		ApprovalEmail:      rm.ApprovalEmail,
		VendorEmail:        rm.VendorEmail,
		ShootDates:         rm.ShootDates,
		ShootEndDate:       rm.ShootEndDate,
		QuoteAmount:        rm.QuoteAmount,
		QuoteNotes:         rm.QuoteNotes,
		ApprovedAmount:     rm.ApprovedAmount,
		RejectionReason:    rm.RejectionReason,
		CancellationReason: rm.CancellationReason,
		InvoiceName:        rm.InvoiceName,
		Paid:               rm.Paid,
		EmailThreadID:      rm.EmailThreadID,
		GroupID:            rm.GroupID,
		GroupIndex:         rm.GroupIndex,
		GroupSize:          rm.GroupSize,
		CreatedAt:          rm.CreatedAt,
	}
	resp.EquipmentLines = make([]EquipmentLineResponse, len(rm.EquipmentLines))
	for i, line := range rm.EquipmentLines {
		resp.EquipmentLines[i] = EquipmentLineResponse(line)
	}
	resp.Activities = make([]ActivityResponse, len(rm.Activities))
	for i, a := range rm.Activities {
		resp.Activities[i] = ActivityResponse(a)
	}
	return resp
}

func FromRequestListItem(rm *queries.RequestListItem) *ShootRequestListResponse {
	return &ShootRequestListResponse{
		ID:            rm.ID,
		Status:        rm.Status,
		RequestorName: rm.RequestorName,
		ShootDates:    rm.ShootDates,
		QuoteAmount:   rm.QuoteAmount,
		GroupID:       rm.GroupID,
		GroupIndex:    rm.GroupIndex,
		GroupSize:     rm.GroupSize,
		CreatedAt:     rm.CreatedAt,
	}
}

func FromGroupView(rm *queries.GroupView) *GroupResponse {
	resp := &GroupResponse{
		GroupID:    rm.GroupID,
		Size:       rm.Size,
		GrandTotal: rm.GrandTotal,
		Members:    make([]*ShootRequestResponse, len(rm.Members)),
	}
	for i, m := range rm.Members {
		resp.Members[i] = FromRequestView(m)
	}
	return resp
}

func FromTransitionResult(rm *commands.TransitionResult) *TransitionResponse {
	return &TransitionResponse{
		Request:   FromRequestView(rm.Request),
		Persisted: rm.Persisted,
	}
}

func FromGroupResult(rm *commands.GroupResult) *GroupTransitionResponse {
	resp := &GroupTransitionResponse{
		Members:    make([]GroupMemberResponse, len(rm.Members)),
		Consistent: rm.Consistent,
	}
	for i, m := range rm.Members {
		resp.Members[i] = GroupMemberResponse{
			ID:        m.ID,
			Status:    m.Status,
			Persisted: m.Persisted,
		}
		if m.Err != nil {
			msg := m.Err.Error()
			resp.Members[i].Error = &msg
		}
	}
	return resp
}
