// Package sweep hosts the two time-driven background checks: completion-date
// detection and invoice-reminder nagging. Both are idempotent full scans of
// the in-memory collection; both drive the same lifecycle entry points as
// user actions.
package sweep

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"shootflow/internal/domain/request"
	"shootflow/internal/pkg/clock"
	"shootflow/internal/pkg/config"
	"shootflow/internal/store"
	"shootflow/internal/usecase/commands"

	"github.com/google/uuid"
)

// Transitions is the slice of the command surface the sweeps drive.
type Transitions interface {
	AutoComplete(ctx context.Context, id uuid.UUID) (*commands.TransitionResult, error)
	SendInvoiceReminder(ctx context.Context, id uuid.UUID) (*commands.TransitionResult, error)
}

type Sweeper struct {
	store  *store.RequestStore
	cmds   Transitions
	clock  clock.Clock
	logger *slog.Logger
	cfg    config.SweepConfig

	stop chan struct{}
	wg   sync.WaitGroup
	once sync.Once
}

func NewSweeper(s *store.RequestStore, cmds Transitions, clk clock.Clock, logger *slog.Logger, cfg config.SweepConfig) *Sweeper {
	return &Sweeper{
		store:  s,
		cmds:   cmds,
		clock:  clk,
		logger: logger,
		cfg:    cfg,
		stop:   make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	s.wg.Add(2)
	go s.loop(s.cfg.CompletionInterval, s.SweepCompletions)
	go s.loop(s.cfg.ReminderInterval, s.SweepReminders)
}

func (s *Sweeper) Stop() {
	s.once.Do(func() { close(s.stop) })
	s.wg.Wait()
}

func (s *Sweeper) loop(interval time.Duration, run func(ctx context.Context)) {
	defer s.wg.Done()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			run(context.Background())
		}
	}
}

// SweepCompletions moves every ready_for_shoot request whose shoot end date
// is strictly before today into pending_invoice. Date-only comparison;
// unparseable descriptors are skipped, never fatal. Running twice in a row is
// a no-op the second time because the status has already moved on.
func (s *Sweeper) SweepCompletions(ctx context.Context) {
	today := clock.DateOf(s.clock.Now())

	for _, r := range s.store.ByStatus(request.StatusReadyForShoot) {
		end, err := request.ParseEndDate(r.ShootDates())
		if err != nil {
			s.logger.Debug("completion sweep skipping unparseable dates",
				"request_id", r.ID(), "shoot_dates", r.ShootDates())
			continue
		}
		if !clock.DateOf(end).Before(today) {
			continue
		}

		if _, err := s.cmds.AutoComplete(ctx, r.ID()); err != nil {
			// A user transition can race the scan; precondition refusals are
			// expected noise, anything else is worth a warning.
			if errors.Is(err, commands.ErrPreconditionFailed) {
				continue
			}
			s.logger.Warn("completion sweep transition failed",
				"request_id", r.ID(), "error", err)
		}
	}
}

// SweepReminders nags the vendor for requests stuck in pending_invoice with
// no invoice for ReminderAfter since completion. The reminder-sent Activity
// is the sole de-duplication marker: once present, the request is never
// re-notified no matter how often the sweep re-runs.
func (s *Sweeper) SweepReminders(ctx context.Context) {
	now := s.clock.Now()

	for _, r := range s.store.ByStatus(request.StatusPendingInvoice) {
		if r.Invoice() != nil {
			continue
		}
		if r.ReminderSent() {
			continue
		}
		completedAt, ok := r.AutoCompletedAt()
		if !ok {
			continue
		}
		if now.Sub(completedAt) < s.cfg.ReminderAfter {
			continue
		}

		if _, err := s.cmds.SendInvoiceReminder(ctx, r.ID()); err != nil {
			if errors.Is(err, commands.ErrPreconditionFailed) {
				continue
			}
			s.logger.Warn("reminder sweep failed",
				"request_id", r.ID(), "error", err)
		}
	}
}
