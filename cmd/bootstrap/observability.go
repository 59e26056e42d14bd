package bootstrap

import (
	"log/slog"

	"hotel-block-service/internal/handler/middleware"
	"hotel-block-service/internal/pkg/config"
	"hotel-block-service/internal/pkg/metrics"
	"hotel-block-service/internal/usecase/commands"

	"go.uber.org/fx"
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		middleware.NewLogger,
		func(cfg config.Config) config.LogConfig { return cfg.Log },
		func(l *middleware.Logger) *slog.Logger { return l.GetSlogLogger() },
	),
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		fx.Annotate(
			metrics.New,
			fx.As(fx.Self()),
			fx.As(new(commands.Metrics)),
		),
	),
)
