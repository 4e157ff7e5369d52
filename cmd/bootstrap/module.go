package bootstrap

import (
	"blane-checkout/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	BackendModule,
	components.UseCaseModule,
	components.HandlerModule,
)
