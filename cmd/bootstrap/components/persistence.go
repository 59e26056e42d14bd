package components

import (
	"hotel-block-service/internal/infra/readstore"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/infra/uow"
	"hotel-block-service/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	fx.Provide(uow.NewPostgresUoW),
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Hotel reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HotelReservationViewQueries)),
		),
		fx.Annotate(
			readstore.NewHotelReservationReadStore,
			fx.As(new(queries.HotelReservationReadStore)),
		),
		// Quote rate
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.QuoteRateReadQueries)),
		),
		fx.Annotate(
			readstore.NewQuoteRateReadStore,
			fx.As(new(queries.QuoteRateReadStore)),
		),
		// History
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.HistoryReadQueries)),
		),
		fx.Annotate(
			readstore.NewHistoryReadStore,
			fx.As(new(queries.HistoryReadStore)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}
