package commands

import (
	"context"

	"shootflow/internal/domain/request"
	"shootflow/internal/notify"
)

// RequestGateway is the narrow contract with the remote persistence service.
// Save is best effort: the in-memory mutation has already been applied when
// it is called, and a failure must never throw that update away.
type RequestGateway interface {
	LoadAll(ctx context.Context) ([]*request.ShootRequest, error)
	Save(ctx context.Context, r *request.ShootRequest) error
}

// EventNotifier fans a lifecycle event out through the correlator.
type EventNotifier interface {
	RequestEvent(ctx context.Context, r *request.ShootRequest, kind notify.TemplateKind, payload map[string]any)
}

// QuoteCollector buffers vendor submissions for debounced batch notification.
type QuoteCollector interface {
	Add(p notify.PendingQuote)
}
