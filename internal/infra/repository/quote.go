package repository

import (
	"context"

	"hotel-block-service/internal/infra"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type QuoteTouchQueries interface {
	TouchHotelQuotesForRate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (int64, error)
}

type QuoteRepository struct {
	queries QuoteTouchQueries
	db      sqlc.DBTX
}

func NewQuoteRepository(queries QuoteTouchQueries, db sqlc.DBTX) *QuoteRepository {
	return &QuoteRepository{
		queries: queries,
		db:      db,
	}
}

// TouchForRate bumps updated_at on every quote reachable from the rate and returns how many were touched.
func (r *QuoteRepository) TouchForRate(ctx context.Context, tx sqlc.DBTX, rateID uuid.UUID) (int64, error) {
	n, err := r.queries.TouchHotelQuotesForRate(ctx, tx, rateID)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to touch hotel quotes", err)
	}
	return n, nil
}
