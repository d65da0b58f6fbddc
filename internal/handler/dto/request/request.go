package request

import (
	"strings"

	domain "shootflow/internal/domain/request"
	"shootflow/internal/usecase/commands"

	"github.com/shopspring/decimal"
)

type EquipmentLineInput struct {
	Category     string          `json:"category" binding:"required"`
	Quantity     int             `json:"quantity" binding:"required"`
	ExpectedRate decimal.Decimal `json:"expected_rate"`
}

type ShootInput struct {
	ShootDates     string               `json:"shoot_dates" binding:"required"`
	EquipmentLines []EquipmentLineInput `json:"equipment_lines" binding:"required"`
}

type CreateShootRequest struct {
	RequestorName  string       `json:"requestor_name" binding:"required"`
	RequestorEmail string       `json:"requestor_email" binding:"required,email"`
	ApprovalEmail  string       `json:"approval_email,omitempty"`
	VendorEmail    string       `json:"vendor_email,omitempty"`
	Shoots         []ShootInput `json:"shoots" binding:"required"`
}

func (r CreateShootRequest) ToParams() (commands.CreateParams, error) {
	shoots := make([]domain.ShootSpec, len(r.Shoots))
	for i, shoot := range r.Shoots {
		lines := make([]domain.EquipmentLine, len(shoot.EquipmentLines))
		for j, line := range shoot.EquipmentLines {
			built, err := domain.NewEquipmentLine(
				strings.TrimSpace(line.Category), line.Quantity, line.ExpectedRate)
			if err != nil {
				return commands.CreateParams{}, err
			}
			lines[j] = built
		}
		shoots[i] = domain.ShootSpec{
			ShootDates:     strings.TrimSpace(shoot.ShootDates),
			EquipmentLines: lines,
		}
	}
	return commands.CreateParams{
		RequestorName:  strings.TrimSpace(r.RequestorName),
		RequestorEmail: strings.TrimSpace(r.RequestorEmail),
		ApprovalEmail:  strings.TrimSpace(r.ApprovalEmail),
		VendorEmail:    strings.TrimSpace(r.VendorEmail),
		Shoots:         shoots,
	}, nil
}

type QuotedLineInput struct {
	Index int             `json:"index"`
	Rate  decimal.Decimal `json:"rate"`
}

type SubmitQuoteRequest struct {
	Amount decimal.Decimal   `json:"amount" binding:"required"`
	Notes  *string           `json:"notes,omitempty"`
	Lines  []QuotedLineInput `json:"lines,omitempty"`
}

func (r SubmitQuoteRequest) ToParams() commands.SubmitQuoteParams {
	params := commands.SubmitQuoteParams{Amount: r.Amount}
	if r.Notes != nil {
		params.Notes = strings.TrimSpace(*r.Notes)
	}
	params.Itemized = make([]domain.QuotedLineRate, len(r.Lines))
	for i, line := range r.Lines {
		params.Itemized[i] = domain.QuotedLineRate{Index: line.Index, Rate: line.Rate}
	}
	return params
}

type RejectRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type CancelRequest struct {
	Reason string `json:"reason" binding:"required"`
}

type AmendPricingRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// UploadInvoiceRequest carries the invoice document inline, base64-encoded by
// the standard json []byte convention.
type UploadInvoiceRequest struct {
	Name     string `json:"name" binding:"required"`
	Document []byte `json:"document,omitempty"`
}
