package components

import (
	"context"
	"log/slog"

	"shootflow/internal/pkg/clock"
	"shootflow/internal/pkg/config"
	"shootflow/internal/store"
	"shootflow/internal/sweep"
	"shootflow/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweepModule = fx.Module("sweep",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(RunSweeper),
)

func NewSweeper(s *store.RequestStore, cmds commands.RequestCommands, clk clock.Clock, logger *slog.Logger, cfg config.Config) *sweep.Sweeper {
	return sweep.NewSweeper(s, cmds, clk, logger, cfg.Sweep)
}

func RunSweeper(lc fx.Lifecycle, sweeper *sweep.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(_ context.Context) error {
			sweeper.Stop()
			return nil
		},
	})
}
