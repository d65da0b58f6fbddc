package request

import "errors"

var ErrUnknownStatus = errors.New("unknown request status")

// Status is the workflow position of a shoot request.
type Status string

const (
	StatusNewRequest     Status = "new_request"
	StatusWithVendor     Status = "with_vendor"
	StatusWithSwati      Status = "with_swati"
	StatusReadyForShoot  Status = "ready_for_shoot"
	StatusPendingInvoice Status = "pending_invoice"
	StatusCompleted      Status = "completed"
	StatusCancelled      Status = "cancelled"
)

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusNewRequest, StatusWithVendor, StatusWithSwati,
		StatusReadyForShoot, StatusPendingInvoice, StatusCompleted, StatusCancelled:
		return Status(s), nil
	}
	return "", ErrUnknownStatus
}

func (s Status) String() string {
	return string(s)
}

// IsTerminal reports whether no transition may leave s.
func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}
