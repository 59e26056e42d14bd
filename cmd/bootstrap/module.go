package bootstrap

import (
	"hotel-block-service/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	MetricsModule,
	components.PersistenceModule,
	components.NotifierModule,
	components.UseCaseModule,
	components.HandlerModule,
)
