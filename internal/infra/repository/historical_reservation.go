package repository

import (
	"context"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/infra"
	"hotel-block-service/internal/infra/repository/converter"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
)

// HistoryWriteQueries has no update or delete; the audit table is append-only.
type HistoryWriteQueries interface {
	CreateHistoricalHotelReservation(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateHistoricalHotelReservationParams) error
}

type HistoryRepository struct {
	queries HistoryWriteQueries
	db      sqlc.DBTX
}

func NewHistoryRepository(queries HistoryWriteQueries, db sqlc.DBTX) *HistoryRepository {
	return &HistoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryRepository) Append(ctx context.Context, tx sqlc.DBTX, entries []history.Entry) error {
	for _, e := range entries {
		if err := r.queries.CreateHistoricalHotelReservation(ctx, tx, converter.HistoryEntryToCreateParams(e)); err != nil {
			return infra.WrapRepoErr("failed to append hotel reservation history", err)
		}
	}
	return nil
}
