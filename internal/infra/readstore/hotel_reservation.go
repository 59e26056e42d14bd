package readstore

import (
	"context"
	"fmt"

	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/internal/infra"
	sqlc "hotel-block-service/internal/infra/sqlc/generated"
	"hotel-block-service/internal/pkg/pgconv"
	"hotel-block-service/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const hotelReservationViewSelect = `SELECT hr.id, hr.variant, hr.hotel_id, hr.event_id, hr.event_venue_id, hr.hotel_quote_rate_id,
    hr.team_id, hr.individual_id, hr.order_id, hr.people_count, hr.block_expires_at, hr.hotel_reservation_code,
    hr.created_at, hr.updated_at,
    q.id, q.hotel_id, q.event_id, q.status, q.block_expire_at, q.individual_cancel_notice_days,
    o.id, o.placed_at, o.quick_cancellation_expire_at
FROM hotel_reservations hr
LEFT JOIN hotel_quote_rates r ON r.id = hr.hotel_quote_rate_id
LEFT JOIN hotel_quotes q ON q.id = r.hotel_quote_id
LEFT JOIN orders o ON o.id = hr.order_id
`

type HotelReservationViewQueries interface {
	ExistsHotelReservationForEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsHotelReservationForEventParams) (bool, error)
	ExistsHotelReservationForEventVenue(ctx context.Context, db sqlc.DBTX, arg sqlc.ExistsHotelReservationForEventVenueParams) (bool, error)
}

// HotelReservationReadStore serves the read side. Filtered listings are composed at runtime
// and run straight on the DBTX; fixed lookups go through the generated queries.
type HotelReservationReadStore struct {
	queries HotelReservationViewQueries
	db      sqlc.DBTX
}

func NewHotelReservationReadStore(queries HotelReservationViewQueries, db sqlc.DBTX) *HotelReservationReadStore {
	return &HotelReservationReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *HotelReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.HotelReservationRow, error) {
	row, err := scanHotelReservationRow(r.db.QueryRow(ctx, hotelReservationViewSelect+"WHERE hr.id = $1", id))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get hotel reservation view", err)
	}
	return row, nil
}

func (r *HotelReservationReadStore) List(ctx context.Context, filters []queries.Filter, after *queries.Position, limit int32) ([]*queries.HotelReservationRow, error) {
	b, err := buildPredicates(filters)
	if err != nil {
		return nil, err
	}
	if after != nil {
		b.add(fmt.Sprintf("(hr.created_at, hr.id) > (%s, %s)", b.arg(pgconv.TimeToPgtype(after.CreatedAt)), b.arg(after.ID)))
	}
	sql := hotelReservationViewSelect + b.where() + "\nORDER BY hr.created_at, hr.id\nLIMIT " + b.arg(limit)

	rows, err := r.db.Query(ctx, sql, b.args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list hotel reservations", err)
	}
	defer rows.Close()

	var out []*queries.HotelReservationRow
	for rows.Next() {
		row, err := scanHotelReservationRow(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan hotel reservation", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel reservations", err)
	}
	return out, nil
}

func (r *HotelReservationReadStore) ExistsForEvent(ctx context.Context, eventID, hotelID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsHotelReservationForEvent(ctx, r.db, sqlc.ExistsHotelReservationForEventParams{
		EventID: eventID,
		HotelID: hotelID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hotel reservations for event", err)
	}
	return ok, nil
}

func (r *HotelReservationReadStore) ExistsForEventVenue(ctx context.Context, eventVenueID, hotelID uuid.UUID) (bool, error) {
	ok, err := r.queries.ExistsHotelReservationForEventVenue(ctx, r.db, sqlc.ExistsHotelReservationForEventVenueParams{
		EventVenueID: eventVenueID,
		HotelID:      hotelID,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to check hotel reservations for event venue", err)
	}
	return ok, nil
}

func scanHotelReservationRow(row pgx.Row) (*queries.HotelReservationRow, error) {
	var (
		hr            sqlc.HotelReservations
		quoteID       pgtype.UUID
		quoteHotelID  pgtype.UUID
		quoteEventID  pgtype.UUID
		quoteStatus   pgtype.Text
		quoteCeiling  pgtype.Timestamptz
		quoteNotice   pgtype.Int4
		orderID       pgtype.UUID
		orderPlacedAt pgtype.Timestamptz
		orderWindow   pgtype.Timestamptz
	)
	err := row.Scan(
		&hr.ID,
		&hr.Variant,
		&hr.HotelID,
		&hr.EventID,
		&hr.EventVenueID,
		&hr.HotelQuoteRateID,
		&hr.TeamID,
		&hr.IndividualID,
		&hr.OrderID,
		&hr.PeopleCount,
		&hr.BlockExpiresAt,
		&hr.HotelReservationCode,
		&hr.CreatedAt,
		&hr.UpdatedAt,
		&quoteID,
		&quoteHotelID,
		&quoteEventID,
		&quoteStatus,
		&quoteCeiling,
		&quoteNotice,
		&orderID,
		&orderPlacedAt,
		&orderWindow,
	)
	if err != nil {
		return nil, err
	}

	out := &queries.HotelReservationRow{
		Reservation: hotelreservation.ReconstructReservation(
			hr.ID,
			hotelreservation.Variant(hr.Variant),
			hr.HotelID,
			hr.EventID,
			hr.EventVenueID,
			hr.HotelQuoteRateID,
			pgconv.UUIDPtrFromPgtype(hr.TeamID),
			pgconv.UUIDPtrFromPgtype(hr.IndividualID),
			pgconv.UUIDPtrFromPgtype(hr.OrderID),
			int(hr.PeopleCount),
			pgconv.TimePtrFromPgtype(hr.BlockExpiresAt),
			pgconv.StringPtrFromPgtype(hr.HotelReservationCode),
			pgconv.TimeFromPgtype(hr.CreatedAt),
			pgconv.TimeFromPgtype(hr.UpdatedAt),
		),
		Quote: quote.Quote{
			ID:                         uuid.UUID(quoteID.Bytes),
			HotelID:                    uuid.UUID(quoteHotelID.Bytes),
			EventID:                    uuid.UUID(quoteEventID.Bytes),
			Status:                     quoteStatus.String,
			BlockExpireAt:              pgconv.TimePtrFromPgtype(quoteCeiling),
			IndividualCancelNoticeDays: int(quoteNotice.Int32),
		},
	}
	if orderID.Valid {
		out.Order = order.ReconstructOrder(
			uuid.UUID(orderID.Bytes),
			pgconv.TimePtrFromPgtype(orderPlacedAt),
			pgconv.TimePtrFromPgtype(orderWindow),
		)
	}
	return out, nil
}
