package components

import (
	"time"

	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/pkg/config"
	"hotel-block-service/internal/usecase/commands"
	"hotel-block-service/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	func(cfg config.Config) (*time.Location, error) {
		return cfg.Lifecycle.Location()
	},
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewHotelReservationUseCase,
		commands.NewCodeAssignmentUseCase,
		commands.NewLineItemUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewHotelReservationQueries,
		queries.NewHistoryQueries,
	),
)
