package readstore

import (
	"context"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/infra"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type HistoryReadQueries interface {
	ListHistoricalHotelReservations(ctx context.Context, db sqlc.DBTX, arg sqlc.ListHistoricalHotelReservationsParams) ([]sqlc.HistoricalHotelReservations, error)
}

type HistoryReadStore struct {
	queries HistoryReadQueries
	db      sqlc.DBTX
}

func NewHistoryReadStore(queries HistoryReadQueries, db sqlc.DBTX) *HistoryReadStore {
	return &HistoryReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HistoryReadStore) List(ctx context.Context, reservationID uuid.UUID, action *history.Action) ([]history.Entry, error) {
	params := sqlc.ListHistoricalHotelReservationsParams{HotelReservationID: reservationID}
	if action != nil {
		params.Action = pgconv.StringToPgtype(string(*action))
	} else {
		params.Action = pgtype.Text{Valid: false}
	}

	rows, err := r.queries.ListHistoricalHotelReservations(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel reservation history", err)
	}

	entries := make([]history.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, history.Entry{
			ID:     row.ID,
			Action: history.Action(row.Action),
			Snapshot: history.Snapshot{
				ID:                   row.HotelReservationID,
				Variant:              hotelreservation.Variant(row.Variant),
				HotelID:              row.HotelID,
				EventID:              row.EventID,
				EventVenueID:         row.EventVenueID,
				HotelQuoteRateID:     row.HotelQuoteRateID,
				TeamID:               pgconv.UUIDPtrFromPgtype(row.TeamID),
				IndividualID:         pgconv.UUIDPtrFromPgtype(row.IndividualID),
				OrderID:              pgconv.UUIDPtrFromPgtype(row.OrderID),
				PeopleCount:          int(row.PeopleCount),
				BlockExpiresAt:       pgconv.TimePtrFromPgtype(row.BlockExpiresAt),
				HotelReservationCode: pgconv.StringPtrFromPgtype(row.HotelReservationCode),
				CreatedAt:            pgconv.TimeFromPgtype(row.ReservationCreatedAt),
				UpdatedAt:            pgconv.TimeFromPgtype(row.ReservationUpdatedAt),
			},
			RecordedAt: pgconv.TimeFromPgtype(row.RecordedAt),
		})
	}
	return entries, nil
}
