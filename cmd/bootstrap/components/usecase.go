package components

import (
	"dormstay/internal/infra/payment"
	"dormstay/internal/infra/pricing"
	"dormstay/internal/pkg/clock"
	"dormstay/internal/pkg/config"
	"dormstay/internal/usecase/commands"
	"dormstay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewPaymentGateway,
	NewPricingService,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewBookingUseCase,
		NewLifecycleCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewReservationQueries,
		queries.NewAvailabilityQueries,
	),
)

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	return payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.APIKey, cfg.Payment.Timeout)
}

func NewPricingService(cfg config.Config) commands.PricingService {
	return pricing.NewNightlyRateQuoter(cfg.Pricing.NightlyRateCents)
}

func NewLifecycleCommands(
	cfg config.Config,
	inventory commands.RoomInventory,
	ledger commands.ReservationLedger,
	events commands.EventPublisher,
	clk clock.Clock,
) commands.LifecycleCommands {
	return commands.NewLifecycleUseCase(inventory, ledger, events, clk, cfg.Sweep.PendingTTL)
}
