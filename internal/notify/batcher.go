package notify

import (
	"context"
	"sync"
	"time"

	"shootflow/internal/domain/request"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PendingQuote is one vendor submission waiting in the debounce window.
type PendingQuote struct {
	RequestID uuid.UUID
	Request   *request.ShootRequest
	Amount    decimal.Decimal
}

// QuoteBatcher coalesces near-simultaneous vendor submissions from one
// multi-shoot link into a single notification. Each arrival resets a single
// debounce timer; when the timer fires uninterrupted the whole pending list
// flushes as one batch, in arrival order. A submission arriving after a flush
// has started opens a new batch. Only the notification is batched — each
// submission has already mutated its own request by the time it gets here.
type QuoteBatcher struct {
	mu      sync.Mutex
	window  time.Duration
	pending []PendingQuote
	timer   *time.Timer
	flush   func(ctx context.Context, batch []PendingQuote)
	closed  bool
}

func NewQuoteBatcher(window time.Duration, flush func(ctx context.Context, batch []PendingQuote)) *QuoteBatcher {
	return &QuoteBatcher{
		window: window,
		flush:  flush,
	}
}

// Add buffers one submission and restarts the debounce window.
func (b *QuoteBatcher) Add(p PendingQuote) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		// Shutting down: deliver immediately rather than drop.
		go b.flush(context.Background(), []PendingQuote{p})
		return
	}

	b.pending = append(b.pending, p)
	if b.timer != nil {
		b.timer.Stop()
	}
	b.timer = time.AfterFunc(b.window, b.fire)
}

func (b *QuoteBatcher) fire() {
	b.mu.Lock()
	batch := b.pending
	b.pending = nil
	b.timer = nil
	b.mu.Unlock()

	if len(batch) > 0 {
		b.flush(context.Background(), batch)
	}
}

// Stop cancels the timer and flushes whatever is pending. At-least-once: a
// final batch may be delivered early, never silently dropped here.
func (b *QuoteBatcher) Stop() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	batch := b.pending
	b.pending = nil
	b.mu.Unlock()

	if len(batch) > 0 {
		b.flush(context.Background(), batch)
	}
}
