package components

import (
	"context"
	"log/slog"

	"shootflow/internal/notify"
	"shootflow/internal/pkg/config"
	"shootflow/internal/store"
	"shootflow/internal/usecase/commands"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		fx.Annotate(
			NewWebhookDelivery,
			fx.As(new(notify.Delivery)),
		),
		NewCorrelator,
		NewQuoteBatcher,
		fx.Annotate(
			func(c *notify.Correlator) *notify.Correlator { return c },
			fx.As(new(commands.EventNotifier)),
		),
		fx.Annotate(
			func(b *notify.QuoteBatcher) *notify.QuoteBatcher { return b },
			fx.As(new(commands.QuoteCollector)),
		),
	),
)

func NewWebhookDelivery(cfg config.Config) *notify.WebhookDelivery {
	return notify.NewWebhookDelivery(cfg.Notify)
}

func NewCorrelator(delivery notify.Delivery, s *store.RequestStore, gateway notify.ThreadGateway, cfg config.Config, logger *slog.Logger) *notify.Correlator {
	return notify.NewCorrelator(delivery, s, gateway, cfg.Notify.FinanceEmail, logger)
}

// NewQuoteBatcher builds the debounce batcher and flushes whatever is still
// pending at shutdown.
func NewQuoteBatcher(lc fx.Lifecycle, cfg config.Config, correlator *notify.Correlator) *notify.QuoteBatcher {
	batcher := notify.NewQuoteBatcher(cfg.Notify.DebounceWindow, correlator.QuoteBatch)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			batcher.Stop()
			return nil
		},
	})
	return batcher
}
