package components

import (
	"context"
	"log/slog"

	"shootflow/internal/infra/repository"
	"shootflow/internal/notify"
	"shootflow/internal/store"
	"shootflow/internal/usecase/commands"

	"go.uber.org/fx"
)

// PersistenceModule wires the in-memory collection and its durable mirror.
// The store is hydrated once from the database at startup; afterwards it is
// authoritative and every mutation is written back best effort.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		store.NewRequestStore,
		fx.Annotate(
			repository.NewRequestRepository,
			fx.As(new(commands.RequestGateway)),
			fx.As(new(notify.ThreadGateway)),
		),
	),
	fx.Invoke(HydrateStore),
)

func HydrateStore(lc fx.Lifecycle, s *store.RequestStore, gateway commands.RequestGateway, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			requests, err := gateway.LoadAll(ctx)
			if err != nil {
				return err
			}
			for _, r := range requests {
				s.Put(r)
			}
			logger.Info("request store hydrated", "count", len(requests))
			return nil
		},
	})
}
