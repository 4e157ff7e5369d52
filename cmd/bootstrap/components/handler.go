package components

import (
	"blane-checkout/internal/handler"
	"blane-checkout/internal/handler/api"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAvailabilityHandler,
		api.NewCheckoutHandler,
		api.NewTransactionHandler,
		api.NewPaymentHandler,
	),
	fx.Invoke(handler.NewRouter),
)
