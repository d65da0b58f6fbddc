package converter

import (
	"encoding/json"
	"time"

	"shootflow/internal/domain/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RequestRow is the flat column form of a shoot request. Equipment lines,
// the vendor quote and the activity log live in jsonb columns.
type RequestRow struct {
	ID                 uuid.UUID
	Status             string
	RequestorName      string
	RequestorEmail     string
	ApprovalEmail      *string
	VendorEmail        *string
	ShootDates         string
	EquipmentLines     []byte
	VendorQuote        []byte
	ApprovedAmount     *decimal.Decimal
	RejectionReason    *string
	CancellationReason *string
	InvoiceName        *string
	InvoiceDocument    []byte
	Paid               bool
	Activities         []byte
	EmailThreadID      *string
	GroupID            *uuid.UUID
	GroupIndex         int32
	GroupSize          int32
	CreatedAt          time.Time
}

type equipmentLineJSON struct {
	Category     string  `json:"category"`
	Quantity     int     `json:"quantity"`
	ExpectedRate string  `json:"expected_rate"`
	QuotedRate   *string `json:"quoted_rate,omitempty"`
}

type vendorQuoteJSON struct {
	Amount string `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

type activityJSON struct {
	ID                    uuid.UUID `json:"id"`
	Action                string    `json:"action"`
	Description           string    `json:"description"`
	Timestamp             time.Time `json:"timestamp"`
	NotificationTriggered bool      `json:"notification_triggered"`
}

func RequestToRow(r *request.ShootRequest) (RequestRow, error) {
	snap := r.Snapshot()

	lines := make([]equipmentLineJSON, len(snap.EquipmentLines))
	for i, line := range snap.EquipmentLines {
		lines[i] = equipmentLineJSON{
			Category:     line.Category,
			Quantity:     line.Quantity,
			ExpectedRate: line.ExpectedRate.String(),
		}
		if line.QuotedRate != nil {
			quoted := line.QuotedRate.String()
			lines[i].QuotedRate = &quoted
		}
	}
	linesJSON, err := json.Marshal(lines)
	if err != nil {
		return RequestRow{}, err
	}

	activities := make([]activityJSON, len(snap.Activities))
	for i, a := range snap.Activities {
		activities[i] = activityJSON{
			ID:                    a.ID,
			Action:                a.Action,
			Description:           a.Description,
			Timestamp:             a.Timestamp,
			NotificationTriggered: a.NotificationTriggered,
		}
	}
	activitiesJSON, err := json.Marshal(activities)
	if err != nil {
		return RequestRow{}, err
	}

	row := RequestRow{
		ID:             snap.ID,
		Status:         snap.Status.String(),
		RequestorName:  snap.Requestor.Name,
		RequestorEmail: snap.Requestor.Email,
		ShootDates:     snap.ShootDates,
		EquipmentLines: linesJSON,
		ApprovedAmount: snap.ApprovedAmount,
		Paid:           snap.Paid,
		Activities:     activitiesJSON,
		GroupID:        snap.GroupID,
		GroupIndex:     int32(snap.GroupIndex),
		GroupSize:      int32(snap.GroupSize),
		CreatedAt:      snap.CreatedAt,
	}

	row.ApprovalEmail = nilIfEmpty(snap.ApprovalEmail)
	row.VendorEmail = nilIfEmpty(snap.VendorEmail)
	row.RejectionReason = nilIfEmpty(snap.RejectionReason)
	row.CancellationReason = nilIfEmpty(snap.CancellationReason)
	row.EmailThreadID = nilIfEmpty(snap.EmailThreadID)

	if snap.VendorQuote != nil {
		quoteJSON, err := json.Marshal(vendorQuoteJSON{
			Amount: snap.VendorQuote.Amount.String(),
			Notes:  snap.VendorQuote.Notes,
		})
		if err != nil {
			return RequestRow{}, err
		}
		row.VendorQuote = quoteJSON
	}
	if snap.Invoice != nil {
		name := snap.Invoice.Name
		row.InvoiceName = &name
		row.InvoiceDocument = snap.Invoice.Document
	}
	return row, nil
}

func RequestFromRow(row RequestRow) (*request.ShootRequest, error) {
	status, err := request.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}

	var linesJSON []equipmentLineJSON
	if err := json.Unmarshal(row.EquipmentLines, &linesJSON); err != nil {
		return nil, err
	}
	lines := make([]request.EquipmentLine, len(linesJSON))
	for i, line := range linesJSON {
		expected, err := decimal.NewFromString(line.ExpectedRate)
		if err != nil {
			return nil, err
		}
		lines[i] = request.EquipmentLine{
			Category:     line.Category,
			Quantity:     line.Quantity,
			ExpectedRate: expected,
		}
		if line.QuotedRate != nil {
			quoted, err := decimal.NewFromString(*line.QuotedRate)
			if err != nil {
				return nil, err
			}
			lines[i].QuotedRate = &quoted
		}
	}

	var activitiesJSON []activityJSON
	if err := json.Unmarshal(row.Activities, &activitiesJSON); err != nil {
		return nil, err
	}
	activities := make([]request.Activity, len(activitiesJSON))
	for i, a := range activitiesJSON {
		activities[i] = request.Activity{
			ID:                    a.ID,
			Action:                a.Action,
			Description:           a.Description,
			Timestamp:             a.Timestamp,
			NotificationTriggered: a.NotificationTriggered,
		}
	}

	snap := request.Snapshot{
		ID:             row.ID,
		Status:         status,
		Requestor:      request.Requestor{Name: row.RequestorName, Email: row.RequestorEmail},
		ShootDates:     row.ShootDates,
		EquipmentLines: lines,
		ApprovedAmount: row.ApprovedAmount,
		Paid:           row.Paid,
		Activities:     activities,
		GroupID:        row.GroupID,
		GroupIndex:     int(row.GroupIndex),
		GroupSize:      int(row.GroupSize),
		CreatedAt:      row.CreatedAt,
	}
	snap.ApprovalEmail = emptyIfNil(row.ApprovalEmail)
	snap.VendorEmail = emptyIfNil(row.VendorEmail)
	snap.RejectionReason = emptyIfNil(row.RejectionReason)
	snap.CancellationReason = emptyIfNil(row.CancellationReason)
	snap.EmailThreadID = emptyIfNil(row.EmailThreadID)

	if row.VendorQuote != nil {
		var quote vendorQuoteJSON
		if err := json.Unmarshal(row.VendorQuote, &quote); err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(quote.Amount)
		if err != nil {
			return nil, err
		}
		snap.VendorQuote = &request.VendorQuote{Amount: amount, Notes: quote.Notes}
	}
	if row.InvoiceName != nil {
		snap.Invoice = &request.Invoice{Name: *row.InvoiceName, Document: row.InvoiceDocument}
	}

	return request.Reconstruct(snap), nil
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func emptyIfNil(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
