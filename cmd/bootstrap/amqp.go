package bootstrap

import (
	"context"
	"log/slog"

	"dormstay/internal/infra/events"
	"dormstay/internal/pkg/config"
	"dormstay/internal/usecase/commands"

	"go.uber.org/fx"
)

var EventsModule = fx.Module("events",
	fx.Provide(
		NewEventPublisher,
	),
)

// NewEventPublisher wires the AMQP publisher when a broker URL is
// configured; otherwise events are dropped. Publishing is best-effort, so
// running without a broker is a supported profile.
func NewEventPublisher(lc fx.Lifecycle, cfg config.Config) (commands.EventPublisher, error) {
	if cfg.AMQP.URL == "" {
		slog.Info("AMQP_URL not set, booking events will not be published")
		return events.NewNoopPublisher(), nil
	}

	publisher, cleanup, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return publisher, nil
}
