package commands

import (
	"context"
	"errors"
	"log/slog"

	"shootflow/internal/domain/request"
	"shootflow/internal/notify"
	"shootflow/internal/pkg/clock"
	"shootflow/internal/pkg/errs"
	"shootflow/internal/store"
	"shootflow/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrRequestNotFound     = errs.New("request not found")
	ErrPreconditionFailed  = errs.New("transition precondition failed")
	ErrGroupWithoutMembers = errs.New("group resolved to zero members")
)

// TransitionResult is the outcome of a single-request transition. Persisted
// distinguishes "applied locally" from "durably persisted": the workflow has
// always advanced when a result comes back, the durable write may lag.
type TransitionResult struct {
	Request   *queries.RequestView
	Persisted bool
}

// GroupMemberOutcome reports one member of a group-wide operation.
type GroupMemberOutcome struct {
	ID        uuid.UUID
	Status    string
	Persisted bool
	Err       error
}

// GroupResult reports a group-wide approve/reject. Members are processed
// independently; a partial failure leaves the group inconsistent, never
// rolled back.
type GroupResult struct {
	Members    []GroupMemberOutcome
	Consistent bool
}

type SubmitQuoteParams struct {
	Amount   decimal.Decimal
	Notes    string
	Itemized []request.QuotedLineRate
}

type CreateParams struct {
	RequestorName  string
	RequestorEmail string
	ApprovalEmail  string
	VendorEmail    string
	Shoots         []request.ShootSpec
}

type RequestCommands interface {
	Create(ctx context.Context, params CreateParams) ([]*queries.RequestView, error)
	SendToVendor(ctx context.Context, id uuid.UUID) (*TransitionResult, error)
	SubmitQuote(ctx context.Context, id uuid.UUID, params SubmitQuoteParams) (*TransitionResult, error)
	Approve(ctx context.Context, id uuid.UUID) (*GroupResult, error)
	Reject(ctx context.Context, id uuid.UUID, reason string) (*GroupResult, error)
	UploadInvoice(ctx context.Context, id uuid.UUID, name string, document []byte) (*TransitionResult, error)
	MarkPaid(ctx context.Context, id uuid.UUID) (*TransitionResult, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*TransitionResult, error)
	AmendPricing(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*TransitionResult, error)
	AutoComplete(ctx context.Context, id uuid.UUID) (*TransitionResult, error)
	SendInvoiceReminder(ctx context.Context, id uuid.UUID) (*TransitionResult, error)
}

type requestCommandsImpl struct {
	store    *store.RequestStore
	gateway  RequestGateway
	notifier EventNotifier
	quotes   QuoteCollector
	clock    clock.Clock
	logger   *slog.Logger
}

func NewRequestCommands(
	s *store.RequestStore,
	gateway RequestGateway,
	notifier EventNotifier,
	quotes QuoteCollector,
	clk clock.Clock,
	logger *slog.Logger,
) RequestCommands {
	return &requestCommandsImpl{
		store:    s,
		gateway:  gateway,
		notifier: notifier,
		quotes:   quotes,
		clock:    clk,
		logger:   logger,
	}
}

// Create registers a new submission (intake). Each request starts in
// new_request state; a multi-shoot submission shares one group id.
func (c *requestCommandsImpl) Create(ctx context.Context, params CreateParams) ([]*queries.RequestView, error) {
	requests, err := request.NewSubmission(request.CreateSpec{
		Requestor:     request.Requestor{Name: params.RequestorName, Email: params.RequestorEmail},
		ApprovalEmail: params.ApprovalEmail,
		VendorEmail:   params.VendorEmail,
		Shoots:        params.Shoots,
	}, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrPreconditionFailed)
	}

	views := make([]*queries.RequestView, len(requests))
	for i, r := range requests {
		c.store.Put(r)
		c.persist(ctx, r)
		views[i] = queries.ViewFromRequest(r)
	}
	return views, nil
}

func (c *requestCommandsImpl) SendToVendor(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	return c.apply(ctx, id,
		func(r *request.ShootRequest) error { return r.SendToVendor(c.clock.Now()) },
		func(r *request.ShootRequest) {
			c.notifier.RequestEvent(ctx, r, notify.TemplateSentToVendor, map[string]any{
				"request_id":  r.ID(),
				"shoot_dates": r.ShootDates(),
			})
		},
	)
}

// SubmitQuote applies the vendor's submission and routes the notification
// through the debounce batcher instead of sending directly: sibling
// submissions arriving within the window settle into one message.
func (c *requestCommandsImpl) SubmitQuote(ctx context.Context, id uuid.UUID, params SubmitQuoteParams) (*TransitionResult, error) {
	return c.apply(ctx, id,
		func(r *request.ShootRequest) error {
			return r.SubmitQuote(params.Amount, params.Notes, params.Itemized, c.clock.Now())
		},
		func(r *request.ShootRequest) {
			c.quotes.Add(notify.PendingQuote{
				RequestID: r.ID(),
				Request:   r,
				Amount:    params.Amount,
			})
		},
	)
}

// Approve applies to every member of the request's group as one logical
// operation. Members transition independently; per-member persistence
// failures are logged and reported, not rolled back.
func (c *requestCommandsImpl) Approve(ctx context.Context, id uuid.UUID) (*GroupResult, error) {
	return c.applyGroup(ctx, id,
		func(r *request.ShootRequest) error { return r.Approve(c.clock.Now()) },
		func(r *request.ShootRequest) {
			payload := map[string]any{"request_id": r.ID()}
			if amount := r.ApprovedAmount(); amount != nil {
				payload["approved_amount"] = amount.StringFixed(2)
			}
			c.notifier.RequestEvent(ctx, r, notify.TemplateApproved, payload)
		},
	)
}

// Reject mirrors Approve across the group.
func (c *requestCommandsImpl) Reject(ctx context.Context, id uuid.UUID, reason string) (*GroupResult, error) {
	return c.applyGroup(ctx, id,
		func(r *request.ShootRequest) error { return r.Reject(reason, c.clock.Now()) },
		func(r *request.ShootRequest) {
			c.notifier.RequestEvent(ctx, r, notify.TemplateRejected, map[string]any{
				"request_id": r.ID(),
				"reason":     reason,
			})
		},
	)
}

func (c *requestCommandsImpl) UploadInvoice(ctx context.Context, id uuid.UUID, name string, document []byte) (*TransitionResult, error) {
	return c.apply(ctx, id,
		func(r *request.ShootRequest) error { return r.AttachInvoice(name, document, c.clock.Now()) },
		func(r *request.ShootRequest) {
			c.notifier.RequestEvent(ctx, r, notify.TemplateInvoiceUploaded, map[string]any{
				"request_id":   r.ID(),
				"invoice_name": name,
			})
		},
	)
}

func (c *requestCommandsImpl) MarkPaid(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	return c.apply(ctx, id,
		func(r *request.ShootRequest) error { return r.MarkPaid(c.clock.Now()) },
		func(r *request.ShootRequest) {
			c.notifier.RequestEvent(ctx, r, notify.TemplatePaid, map[string]any{
				"request_id": r.ID(),
			})
		},
	)
}

func (c *requestCommandsImpl) Cancel(ctx context.Context, id uuid.UUID, reason string) (*TransitionResult, error) {
	return c.apply(ctx, id,
		func(r *request.ShootRequest) error { return r.Cancel(reason, c.clock.Now()) },
		func(r *request.ShootRequest) {
			c.notifier.RequestEvent(ctx, r, notify.TemplateCancelled, map[string]any{
				"request_id": r.ID(),
				"reason":     reason,
			})
		},
	)
}

// AmendPricing is the explicit admin correction: quote amount and approved
// amount move together, once, on request.
func (c *requestCommandsImpl) AmendPricing(ctx context.Context, id uuid.UUID, amount decimal.Decimal) (*TransitionResult, error) {
	return c.apply(ctx, id,
		func(r *request.ShootRequest) error { return r.AmendApprovedPricing(amount, c.clock.Now()) },
		func(r *request.ShootRequest) {
			c.notifier.RequestEvent(ctx, r, notify.TemplateApproved, map[string]any{
				"request_id":      r.ID(),
				"approved_amount": amount.StringFixed(2),
				"amended":         true,
			})
		},
	)
}

// AutoComplete is the sweep entry point: no notification fires.
func (c *requestCommandsImpl) AutoComplete(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	return c.apply(ctx, id,
		func(r *request.ShootRequest) error { return r.AutoComplete(c.clock.Now()) },
		nil,
	)
}

// SendInvoiceReminder appends the reminder-sent marker and notifies the
// vendor. The marker makes re-runs of the reminder sweep no-ops.
func (c *requestCommandsImpl) SendInvoiceReminder(ctx context.Context, id uuid.UUID) (*TransitionResult, error) {
	return c.apply(ctx, id,
		func(r *request.ShootRequest) error {
			if r.ReminderSent() {
				return request.ErrInvalidTransition
			}
			r.MarkReminderSent(c.clock.Now())
			return nil
		},
		func(r *request.ShootRequest) {
			c.notifier.RequestEvent(ctx, r, notify.TemplateInvoiceReminder, map[string]any{
				"request_id":  r.ID(),
				"shoot_dates": r.ShootDates(),
			})
		},
	)
}

// apply serializes, mutates, persists best effort, then fires side effects.
// The in-memory mutation always lands before the durable write is attempted.
func (c *requestCommandsImpl) apply(
	ctx context.Context,
	id uuid.UUID,
	mutate func(*request.ShootRequest) error,
	after func(*request.ShootRequest),
) (*TransitionResult, error) {
	r, ok := c.store.Get(id)
	if !ok {
		return nil, ErrRequestNotFound
	}

	unlock := c.store.Lock(id)
	defer unlock()

	if err := mutate(r); err != nil {
		return nil, errs.Mark(err, ErrPreconditionFailed)
	}

	persisted := c.persist(ctx, r)
	if after != nil {
		after(r)
	}

	return &TransitionResult{
		Request:   queries.ViewFromRequest(r),
		Persisted: persisted,
	}, nil
}

// applyGroup runs a transition over every sibling of id. The operation is
// complete only once every member has been attempted; members that fail keep
// their error in the outcome and flip Consistent off.
func (c *requestCommandsImpl) applyGroup(
	ctx context.Context,
	id uuid.UUID,
	mutate func(*request.ShootRequest) error,
	after func(*request.ShootRequest),
) (*GroupResult, error) {
	members := c.store.Siblings(id)
	if len(members) == 0 {
		return nil, ErrRequestNotFound
	}

	result := &GroupResult{
		Members:    make([]GroupMemberOutcome, 0, len(members)),
		Consistent: true,
	}
	applied := 0

	for _, member := range members {
		outcome := GroupMemberOutcome{ID: member.ID()}

		unlock := c.store.Lock(member.ID())
		err := mutate(member)
		if err != nil {
			unlock()
			outcome.Status = member.Status().String()
			outcome.Err = errs.Mark(err, ErrPreconditionFailed)
			result.Consistent = false
			result.Members = append(result.Members, outcome)
			c.logger.Warn("group transition skipped member",
				"request_id", member.ID(), "error", err)
			continue
		}

		outcome.Persisted = c.persist(ctx, member)
		unlock()
		if !outcome.Persisted {
			result.Consistent = false
		}
		outcome.Status = member.Status().String()
		applied++

		if after != nil {
			after(member)
		}
		result.Members = append(result.Members, outcome)
	}

	if applied == 0 {
		// Every member refused: the caller gets the first member's error.
		return nil, result.Members[0].Err
	}
	return result, nil
}

// persist attempts the durable write after the in-memory mutation. Failure
// is a warning, not a rollback.
func (c *requestCommandsImpl) persist(ctx context.Context, r *request.ShootRequest) bool {
	if err := c.gateway.Save(ctx, r); err != nil {
		c.logger.Warn("durable write failed, in-memory state retained",
			"request_id", r.ID(), "status", r.Status().String(), "error", err)
		return false
	}
	return true
}

// IsPrecondition reports whether err is a precondition violation as opposed
// to an unknown id or an infrastructure failure.
func IsPrecondition(err error) bool {
	return errors.Is(err, ErrPreconditionFailed)
}
