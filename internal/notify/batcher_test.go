//go:build unit

package notify_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"shootflow/internal/notify"
	"shootflow/tests/common/builder"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type flushRecorder struct {
	mu      sync.Mutex
	batches [][]notify.PendingQuote
}

func (f *flushRecorder) flush(_ context.Context, batch []notify.PendingQuote) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.batches = append(f.batches, batch)
}

func (f *flushRecorder) snapshot() [][]notify.PendingQuote {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]notify.PendingQuote, len(f.batches))
	copy(out, f.batches)
	return out
}

func (f *flushRecorder) waitForBatches(t *testing.T, n int) [][]notify.PendingQuote {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if got := f.snapshot(); len(got) >= n {
			return got
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d batches, got %d", n, len(f.snapshot()))
	return nil
}

func pending(amount int64) notify.PendingQuote {
	r := builder.NewRequestBuilder().BuildDomain()
	return notify.PendingQuote{
		RequestID: r.ID(),
		Request:   r,
		Amount:    decimal.NewFromInt(amount),
	}
}

func TestQuoteBatcher(t *testing.T) {
	t.Run("submissions within the window settle into one batch", func(t *testing.T) {
		rec := &flushRecorder{}
		b := notify.NewQuoteBatcher(40*time.Millisecond, rec.flush)
		defer b.Stop()

		b.Add(pending(100))
		b.Add(pending(200))
		b.Add(pending(300))

		got := rec.waitForBatches(t, 1)
		require.Len(t, got, 1)
		require.Len(t, got[0], 3)
		assert.True(t, got[0][0].Amount.Equal(decimal.NewFromInt(100)), "arrival order preserved")
		assert.True(t, got[0][2].Amount.Equal(decimal.NewFromInt(300)))
	})

	t.Run("each arrival resets the window", func(t *testing.T) {
		rec := &flushRecorder{}
		b := notify.NewQuoteBatcher(50*time.Millisecond, rec.flush)
		defer b.Stop()

		b.Add(pending(1))
		time.Sleep(30 * time.Millisecond)
		b.Add(pending(2))
		time.Sleep(30 * time.Millisecond)

		// 60ms elapsed but the window was reset at 30ms; nothing flushed yet.
		assert.Empty(t, rec.snapshot())

		got := rec.waitForBatches(t, 1)
		require.Len(t, got[0], 2)
	})

	t.Run("submissions spaced past the window flush separately", func(t *testing.T) {
		rec := &flushRecorder{}
		b := notify.NewQuoteBatcher(20*time.Millisecond, rec.flush)
		defer b.Stop()

		b.Add(pending(1))
		rec.waitForBatches(t, 1)
		b.Add(pending(2))

		got := rec.waitForBatches(t, 2)
		require.Len(t, got, 2)
		require.Len(t, got[0], 1)
		require.Len(t, got[1], 1)
	})

	t.Run("Stop flushes whatever is pending", func(t *testing.T) {
		rec := &flushRecorder{}
		b := notify.NewQuoteBatcher(time.Hour, rec.flush)

		b.Add(pending(1))
		b.Add(pending(2))
		b.Stop()

		got := rec.snapshot()
		require.Len(t, got, 1)
		require.Len(t, got[0], 2)
	})

	t.Run("Add after Stop delivers immediately", func(t *testing.T) {
		rec := &flushRecorder{}
		b := notify.NewQuoteBatcher(time.Hour, rec.flush)
		b.Stop()

		b.Add(pending(9))
		got := rec.waitForBatches(t, 1)
		require.Len(t, got[0], 1)
	})

	t.Run("empty Stop flushes nothing", func(t *testing.T) {
		rec := &flushRecorder{}
		b := notify.NewQuoteBatcher(time.Hour, rec.flush)
		b.Stop()
		assert.Empty(t, rec.snapshot())
	})
}
