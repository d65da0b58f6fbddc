package errs

import "errors"

// Sentinel errors shared across usecase and delivery layers
var (
	ErrRequestNotFound = errors.New("request not found")
	ErrDeliveryFailed  = errors.New("notification delivery failed")
)
