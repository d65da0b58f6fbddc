package components

import (
	"shootflow/internal/handler"
	"shootflow/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewRequestHandler,
	),
	fx.Invoke(handler.NewRouter),
)
