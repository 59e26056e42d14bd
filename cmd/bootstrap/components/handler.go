package components

import (
	"hotel-block-service/internal/handler"
	"hotel-block-service/internal/handler/api"
	"hotel-block-service/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewHotelReservationHandler,
		api.NewOrderHandler,
		middleware.NewAuthMiddleware,
		func(hr *api.HotelReservationHandler, o *api.OrderHandler) handler.Handlers {
			return handler.Handlers{HotelReservations: hr, Orders: o}
		},
	),
	fx.Invoke(handler.NewRouter),
)
