package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"dormstay/internal/pkg/config"
	"dormstay/internal/usecase/commands"

	"go.uber.org/fx"
)

var SweeperModule = fx.Module("sweeper",
	fx.Invoke(
		StartSweeper,
	),
)

// StartSweeper runs the stale-pending sweep on a fixed interval for the
// lifetime of the application. Reservations stuck in Pending (a crash
// between hold and charge, or an operator intervention) are force-rejected
// and their beds returned to the pool.
func StartSweeper(lc fx.Lifecycle, cfg config.Config, lifecycle commands.LifecycleCommands) {
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				ticker := time.NewTicker(cfg.Sweep.Interval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
						swept, err := lifecycle.SweepStalePending(ctx)
						cancel()
						if err != nil {
							slog.Error("stale pending sweep failed", "error", err)
						} else if swept > 0 {
							slog.Info("swept stale pending reservations", "count", swept)
						}
					case <-done:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			close(done)
			return nil
		},
	})
}
