package components

import (
	"context"
	"fmt"

	"hotel-block-service/internal/infra/notifier"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/pkg/config"
	"hotel-block-service/internal/pkg/metrics"
	"hotel-block-service/internal/usecase/commands"
	"hotel-block-service/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifierModule = fx.Module("notifier",
	fx.Provide(
		fx.Annotate(
			NewConfirmationNotifier,
			fx.As(new(commands.ConfirmationNotifier)),
		),
	),
)

// NewConfirmationNotifier picks the delivery driver. Pending sends are drained on stop.
func NewConfirmationNotifier(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock, m *metrics.Registry) (*notifier.Async, error) {
	var (
		sender notifier.Sender
		closer func() error
	)
	switch cfg.Notification.Driver {
	case notifier.DriverJobs:
		sender = notifier.NewJobSender(uow, clk)
	case notifier.DriverAMQP:
		amqp := notifier.NewAMQPSender(cfg.Notification.AMQPURL, cfg.Notification.Queue)
		sender, closer = amqp, amqp.Close
	default:
		return nil, fmt.Errorf("unknown NOTIFICATION_DRIVER %q", cfg.Notification.Driver)
	}

	async := notifier.NewAsync(cfg.Notification.Driver, sender, cfg.Notification.DispatchTimeout, clk, m)
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			async.Wait()
			if closer != nil {
				return closer()
			}
			return nil
		},
	})
	return async, nil
}
