package bootstrap

import (
	"shootflow/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	components.PersistenceModule,
	components.NotifyModule,
	components.UseCaseModule,
	components.SweepModule,
	components.HandlerModule,
)
