package components

import (
	"log/slog"

	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/infra/store"
	"blane-checkout/internal/pkg/clock"
	"blane-checkout/internal/pkg/config"
	"blane-checkout/internal/usecase/availability"
	"blane-checkout/internal/usecase/checkout"
	"blane-checkout/internal/usecase/payment"
	"blane-checkout/internal/usecase/reconcile"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCheckoutModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(client backend.Client, clk clock.Clock, cfg config.Config, logger *slog.Logger) *availability.Resolver {
		return availability.NewResolver(client, clk, cfg.Checkout, logger)
	},
	payment.NewBridge,
	fx.Annotate(
		func(r *availability.Resolver) *availability.Resolver { return r },
		fx.As(new(availability.Queries)),
	),
)

var usecaseCheckoutModule = fx.Module("usecase/checkout",
	fx.Provide(
		func(
			client backend.Client,
			resolver *availability.Resolver,
			bridge *payment.Bridge,
			clk clock.Clock,
			cfg config.Config,
			logger *slog.Logger,
		) checkout.Commands {
			return checkout.NewCommands(client, resolver, bridge, clk, cfg.Checkout, logger)
		},
		fx.Annotate(
			func(st store.Store, client backend.Client, logger *slog.Logger) *reconcile.Reconciler {
				return reconcile.NewReconciler(st, client, logger)
			},
			fx.As(new(reconcile.Queries)),
		),
	),
)
