package request

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCategory    = errors.New("equipment category cannot be empty")
	ErrInvalidQuantity  = errors.New("equipment quantity must be positive")
	ErrNegativeRate     = errors.New("rate cannot be negative")
	ErrLineIndexOutside = errors.New("quoted line index outside equipment list")
)

// EquipmentLine is one rented item on a request. ExpectedRate comes from the
// catalog at creation; QuotedRate is filled in by the vendor's submission.
type EquipmentLine struct {
	Category     string
	Quantity     int
	ExpectedRate decimal.Decimal
	QuotedRate   *decimal.Decimal
}

func NewEquipmentLine(category string, quantity int, expectedRate decimal.Decimal) (EquipmentLine, error) {
	if category == "" {
		return EquipmentLine{}, ErrEmptyCategory
	}
	if quantity <= 0 {
		return EquipmentLine{}, ErrInvalidQuantity
	}
	if expectedRate.IsNegative() {
		return EquipmentLine{}, ErrNegativeRate
	}
	return EquipmentLine{
		Category:     category,
		Quantity:     quantity,
		ExpectedRate: expectedRate,
	}, nil
}

// QuotedLineRate carries a vendor rate for the equipment line at Index.
type QuotedLineRate struct {
	Index int
	Rate  decimal.Decimal
}

// VendorQuote is the vendor's priced response for a whole request.
type VendorQuote struct {
	Amount decimal.Decimal
	Notes  string
}

// Invoice is the uploaded invoice document reference.
type Invoice struct {
	Name     string
	Document []byte
}

// Requestor identifies who raised the request. Immutable after creation.
type Requestor struct {
	Name  string
	Email string
}
