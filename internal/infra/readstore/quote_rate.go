package readstore

import (
	"context"

	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/internal/infra"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type QuoteRateReadQueries interface {
	GetHotelQuoteRateLinkage(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.GetHotelQuoteRateLinkageRow, error)
	ListHotelQuoteQtysByRate(ctx context.Context, db sqlc.DBTX, hotelQuoteRateID uuid.UUID) ([]sqlc.HotelQuoteQtys, error)
	GetEventByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Events, error)
	GetEventVenueByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.EventVenues, error)
}

// QuoteRateReadStore exposes the quote subsystem: rate linkage, nightly records and the
// event-side block duration overrides.
type QuoteRateReadStore struct {
	queries QuoteRateReadQueries
	db      sqlc.DBTX
}

func NewQuoteRateReadStore(queries QuoteRateReadQueries, db sqlc.DBTX) *QuoteRateReadStore {
	return &QuoteRateReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *QuoteRateReadStore) FindLinkage(ctx context.Context, rateID uuid.UUID) (*quote.Linkage, error) {
	row, err := r.queries.GetHotelQuoteRateLinkage(ctx, r.db, rateID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel quote rate not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel quote rate", err)
	}
	return &quote.Linkage{
		Rate: quote.Rate{ID: row.RateID, QuoteID: row.HotelQuoteID, Name: row.RateName},
		Quote: quote.Quote{
			ID:                         row.HotelQuoteID,
			HotelID:                    row.HotelID,
			EventID:                    row.EventID,
			Status:                     row.Status,
			BlockExpireAt:              pgconv.TimePtrFromPgtype(row.BlockExpireAt),
			IndividualCancelNoticeDays: int(row.IndividualCancelNoticeDays),
		},
	}, nil
}

func (r *QuoteRateReadStore) ListNights(ctx context.Context, rateID uuid.UUID) ([]quote.Night, error) {
	rows, err := r.queries.ListHotelQuoteQtysByRate(ctx, r.db, rateID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel quote nights", err)
	}
	nights := make([]quote.Night, 0, len(rows))
	for _, row := range rows {
		nights = append(nights, quote.Night{
			ID:      row.ID,
			QuoteID: row.HotelQuoteID,
			RateID:  row.HotelQuoteRateID,
			NightAt: pgconv.DateFromPgtype(row.NightAt),
			Qty:     int(row.Qty),
		})
	}
	return nights, nil
}

func (r *QuoteRateReadStore) FindEvent(ctx context.Context, id uuid.UUID) (*hotelreservation.EventSpec, error) {
	row, err := r.queries.GetEventByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event", err)
	}
	return &hotelreservation.EventSpec{
		ID:                 row.ID,
		Kind:               row.Kind,
		BlockDurationHours: pgconv.Int32PtrFromPgtype(row.BlockDurationHours),
	}, nil
}

func (r *QuoteRateReadStore) FindEventVenue(ctx context.Context, id uuid.UUID) (*hotelreservation.EventVenueSpec, error) {
	row, err := r.queries.GetEventVenueByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("event venue not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get event venue", err)
	}
	return &hotelreservation.EventVenueSpec{
		ID:                 row.ID,
		EventID:            row.EventID,
		BlockDurationHours: pgconv.Int32PtrFromPgtype(row.BlockDurationHours),
	}, nil
}
