package request

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrMissingRequestor = errors.New("requestor name and email are required")
	ErrNoEquipment      = errors.New("at least one equipment line is required")
	ErrEmptyGroup       = errors.New("a submission needs at least one shoot")
)

// ShootSpec describes one shoot of a submission at intake time.
type ShootSpec struct {
	ShootDates     string
	EquipmentLines []EquipmentLine
}

// CreateSpec is the intake payload for a whole submission, single or
// multi-shoot.
type CreateSpec struct {
	Requestor     Requestor
	ApprovalEmail string
	VendorEmail   string
	Shoots        []ShootSpec
}

// NewSubmission creates the requests of one intake submission in new_request
// state. A multi-shoot submission shares a freshly minted group id;
// a single shoot stays ungrouped ("group of one").
func NewSubmission(spec CreateSpec, now time.Time) ([]*ShootRequest, error) {
	if spec.Requestor.Name == "" || spec.Requestor.Email == "" {
		return nil, ErrMissingRequestor
	}
	if len(spec.Shoots) == 0 {
		return nil, ErrEmptyGroup
	}
	for _, shoot := range spec.Shoots {
		if len(shoot.EquipmentLines) == 0 {
			return nil, ErrNoEquipment
		}
	}

	var groupID *uuid.UUID
	if len(spec.Shoots) > 1 {
		id := uuid.New()
		groupID = &id
	}

	requests := make([]*ShootRequest, len(spec.Shoots))
	for i, shoot := range spec.Shoots {
		r := &ShootRequest{
			id:             uuid.New(),
			status:         StatusNewRequest,
			requestor:      spec.Requestor,
			approvalEmail:  spec.ApprovalEmail,
			vendorEmail:    spec.VendorEmail,
			shootDates:     shoot.ShootDates,
			equipmentLines: append([]EquipmentLine(nil), shoot.EquipmentLines...),
			createdAt:      now,
		}
		if groupID != nil {
			r.groupID = groupID
			r.groupIndex = i + 1
			r.groupSize = len(spec.Shoots)
		}
		r.appendActivity(ActionCreated, "request created", now, false)
		requests[i] = r
	}
	return requests, nil
}
