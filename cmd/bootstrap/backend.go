package bootstrap

import (
	"log/slog"

	"blane-checkout/internal/infra/backend"
	"blane-checkout/internal/pkg/config"

	"go.uber.org/fx"
)

var BackendModule = fx.Module("backend",
	fx.Provide(
		NewBackendClient,
	),
)

func NewBackendClient(cfg config.Config, logger *slog.Logger) (backend.Client, error) {
	if err := cfg.Backend.Validate(); err != nil {
		return nil, err
	}
	return backend.NewClient(cfg.Backend, logger), nil
}
