//go:build unit

package sweep_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"shootflow/internal/domain/request"
	"shootflow/internal/pkg/clock"
	"shootflow/internal/pkg/config"
	"shootflow/internal/pkg/errs"
	"shootflow/internal/store"
	"shootflow/internal/sweep"
	"shootflow/internal/usecase/commands"
	"shootflow/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTransitions applies the real domain transitions without persistence or
// notification, recording every call.
type fakeTransitions struct {
	store     *store.RequestStore
	clock     clock.Clock
	completed []uuid.UUID
	reminded  []uuid.UUID
}

func (f *fakeTransitions) AutoComplete(_ context.Context, id uuid.UUID) (*commands.TransitionResult, error) {
	r, ok := f.store.Get(id)
	if !ok {
		return nil, commands.ErrRequestNotFound
	}
	if err := r.AutoComplete(f.clock.Now()); err != nil {
		return nil, errs.Mark(err, commands.ErrPreconditionFailed)
	}
	f.completed = append(f.completed, id)
	return &commands.TransitionResult{Persisted: true}, nil
}

func (f *fakeTransitions) SendInvoiceReminder(_ context.Context, id uuid.UUID) (*commands.TransitionResult, error) {
	r, ok := f.store.Get(id)
	if !ok {
		return nil, commands.ErrRequestNotFound
	}
	if r.ReminderSent() {
		return nil, errs.Mark(request.ErrInvalidTransition, commands.ErrPreconditionFailed)
	}
	r.MarkReminderSent(f.clock.Now())
	f.reminded = append(f.reminded, id)
	return &commands.TransitionResult{Persisted: true}, nil
}

type sweepFixture struct {
	store *store.RequestStore
	clock *clock.MockClock
	cmds  *fakeTransitions
	sw    *sweep.Sweeper
}

func newSweepFixture() *sweepFixture {
	s := store.NewRequestStore()
	clk := clock.NewMockClock(time.Date(2026, 3, 20, 9, 0, 0, 0, time.UTC))
	cmds := &fakeTransitions{store: s, clock: clk}
	cfg := config.SweepConfig{
		CompletionInterval: time.Minute,
		ReminderInterval:   time.Hour,
		ReminderAfter:      7 * 24 * time.Hour,
	}
	return &sweepFixture{
		store: s,
		clock: clk,
		cmds:  cmds,
		sw:    sweep.NewSweeper(s, cmds, clk, slog.New(slog.NewTextHandler(io.Discard, nil)), cfg),
	}
}

func TestSweepCompletions(t *testing.T) {
	t.Run("moves past-dated requests to pending_invoice", func(t *testing.T) {
		f := newSweepFixture()
		past := builder.NewRequestBuilder().
			WithStatus(request.StatusReadyForShoot).
			WithShootDates("2026-03-10 to 2026-03-12").
			BuildDomain()
		future := builder.NewRequestBuilder().
			WithStatus(request.StatusReadyForShoot).
			WithShootDates("2026-04-01 to 2026-04-03").
			BuildDomain()
		f.store.Put(past)
		f.store.Put(future)

		f.sw.SweepCompletions(context.Background())

		assert.Equal(t, []uuid.UUID{past.ID()}, f.cmds.completed)
		assert.Equal(t, request.StatusPendingInvoice, past.Status())
		assert.Equal(t, request.StatusReadyForShoot, future.Status())
	})

	t.Run("date comparison is strict calendar before", func(t *testing.T) {
		f := newSweepFixture()
		// End date is today: the shoot may still be running.
		today := builder.NewRequestBuilder().
			WithStatus(request.StatusReadyForShoot).
			WithShootDates("2026-03-20").
			BuildDomain()
		yesterday := builder.NewRequestBuilder().
			WithStatus(request.StatusReadyForShoot).
			WithShootDates("2026-03-19").
			BuildDomain()
		f.store.Put(today)
		f.store.Put(yesterday)

		f.sw.SweepCompletions(context.Background())

		assert.Equal(t, request.StatusReadyForShoot, today.Status())
		assert.Equal(t, request.StatusPendingInvoice, yesterday.Status())
	})

	t.Run("unparseable dates skipped without failing the scan", func(t *testing.T) {
		f := newSweepFixture()
		vague := builder.NewRequestBuilder().
			WithStatus(request.StatusReadyForShoot).
			WithShootDates("sometime in spring").
			BuildDomain()
		past := builder.NewRequestBuilder().
			WithStatus(request.StatusReadyForShoot).
			WithShootDates("2026-03-10").
			BuildDomain()
		f.store.Put(vague)
		f.store.Put(past)

		f.sw.SweepCompletions(context.Background())

		assert.Equal(t, request.StatusReadyForShoot, vague.Status())
		assert.Equal(t, request.StatusPendingInvoice, past.Status())
	})

	t.Run("re-running the sweep is a no-op", func(t *testing.T) {
		f := newSweepFixture()
		past := builder.NewRequestBuilder().
			WithStatus(request.StatusReadyForShoot).
			WithShootDates("2026-03-10").
			BuildDomain()
		f.store.Put(past)

		f.sw.SweepCompletions(context.Background())
		f.sw.SweepCompletions(context.Background())

		assert.Len(t, f.cmds.completed, 1)
	})

	t.Run("only ready_for_shoot is considered", func(t *testing.T) {
		f := newSweepFixture()
		waiting := builder.NewRequestBuilder().
			WithStatus(request.StatusWithVendor).
			WithShootDates("2026-03-10").
			BuildDomain()
		f.store.Put(waiting)

		f.sw.SweepCompletions(context.Background())
		assert.Empty(t, f.cmds.completed)
	})
}

func TestSweepReminders(t *testing.T) {
	completedAt := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	pendingSince := func(at time.Time) *builder.RequestBuilder {
		return builder.NewRequestBuilder().
			WithStatus(request.StatusPendingInvoice).
			WithActivity(request.ActionAutoCompleted, at)
	}

	t.Run("nags after the threshold", func(t *testing.T) {
		f := newSweepFixture()
		r := pendingSince(completedAt).BuildDomain()
		f.store.Put(r)

		// 10 days since completion, threshold is 7.
		f.sw.SweepReminders(context.Background())

		require.Equal(t, []uuid.UUID{r.ID()}, f.cmds.reminded)
		assert.True(t, r.ReminderSent())
	})

	t.Run("too recent is left alone", func(t *testing.T) {
		f := newSweepFixture()
		r := pendingSince(f.clock.Now().Add(-24 * time.Hour)).BuildDomain()
		f.store.Put(r)

		f.sw.SweepReminders(context.Background())
		assert.Empty(t, f.cmds.reminded)
	})

	t.Run("invoice already on file suppresses the nag", func(t *testing.T) {
		f := newSweepFixture()
		r := pendingSince(completedAt).WithInvoice("inv.pdf").BuildDomain()
		f.store.Put(r)

		f.sw.SweepReminders(context.Background())
		assert.Empty(t, f.cmds.reminded)
	})

	t.Run("reminder fires exactly once across re-runs", func(t *testing.T) {
		f := newSweepFixture()
		r := pendingSince(completedAt).BuildDomain()
		f.store.Put(r)

		f.sw.SweepReminders(context.Background())
		f.clock.Add(48 * time.Hour)
		f.sw.SweepReminders(context.Background())

		assert.Len(t, f.cmds.reminded, 1)
	})

	t.Run("manually transitioned requests without completion marker skipped", func(t *testing.T) {
		f := newSweepFixture()
		r := builder.NewRequestBuilder().
			WithStatus(request.StatusPendingInvoice).
			BuildDomain()
		f.store.Put(r)

		f.sw.SweepReminders(context.Background())
		assert.Empty(t, f.cmds.reminded)
	})
}
