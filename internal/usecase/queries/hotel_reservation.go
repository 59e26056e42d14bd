package queries

import (
	"context"
	"time"

	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/internal/pkg/clock"
	"hotel-block-service/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrHotelReservationNotFound = errs.Mark(errs.New("hotel reservation not found"), errs.ErrNotFound)

// HotelReservationRow is a reservation joined with its quote and, when attached, its order.
type HotelReservationRow struct {
	Reservation *hotelreservation.Reservation
	Quote       quote.Quote
	Order       *order.Order
}

type HotelReservationView struct {
	ID                           uuid.UUID  `json:"id"`
	Variant                      string     `json:"variant"`
	HotelID                      uuid.UUID  `json:"hotel_id"`
	EventID                      uuid.UUID  `json:"event_id"`
	EventVenueID                 uuid.UUID  `json:"event_venue_id"`
	HotelQuoteRateID             uuid.UUID  `json:"hotel_quote_rate_id"`
	TeamID                       *uuid.UUID `json:"team_id,omitempty"`
	IndividualID                 *uuid.UUID `json:"individual_id,omitempty"`
	OrderID                      *uuid.UUID `json:"order_id,omitempty"`
	PeopleCount                  int        `json:"people_count"`
	BlockExpiresAt               *time.Time `json:"block_expires_at,omitempty"`
	HotelReservationCode         *string    `json:"hotel_reservation_code,omitempty"`
	HoldExpiresAt                *time.Time `json:"hold_expires_at,omitempty"`
	BlockExpired                 bool       `json:"block_expired"`
	Cancellable                  bool       `json:"cancellable"`
	IndividualCancellationCutoff *time.Time `json:"individual_cancellation_cutoff,omitempty"`
	CreatedAt                    time.Time  `json:"created_at"`
	UpdatedAt                    time.Time  `json:"updated_at"`
}

type ListParams struct {
	Filters []Filter
	Cursor  *Cursor
	Limit   int
}

type HotelReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*HotelReservationRow, error)
	List(ctx context.Context, filters []Filter, after *Position, limit int32) ([]*HotelReservationRow, error)
	ExistsForEvent(ctx context.Context, eventID, hotelID uuid.UUID) (bool, error)
	ExistsForEventVenue(ctx context.Context, eventVenueID, hotelID uuid.UUID) (bool, error)
}

type QuoteRateReadStore interface {
	FindLinkage(ctx context.Context, rateID uuid.UUID) (*quote.Linkage, error)
	ListNights(ctx context.Context, rateID uuid.UUID) ([]quote.Night, error)
}

type HotelReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*HotelReservationView, error)
	List(ctx context.Context, params ListParams) ([]*HotelReservationView, *Cursor, error)
	ExistsForEvent(ctx context.Context, eventID, hotelID uuid.UUID) (bool, error)
	ExistsForEventVenue(ctx context.Context, eventVenueID, hotelID uuid.UUID) (bool, error)
}

type hotelReservationQueriesImpl struct {
	store  HotelReservationReadStore
	quotes QuoteRateReadStore
	clock  clock.Clock
	loc    *time.Location
}

func NewHotelReservationQueries(store HotelReservationReadStore, quotes QuoteRateReadStore, clk clock.Clock, loc *time.Location) HotelReservationQueries {
	if loc == nil {
		loc = time.UTC
	}
	return &hotelReservationQueriesImpl{store: store, quotes: quotes, clock: clk, loc: loc}
}

func (q *hotelReservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*HotelReservationView, error) {
	row, err := q.store.FindByID(ctx, id)
	if err != nil {
		if errs.Is(err, errs.ErrNotFound) {
			return nil, ErrHotelReservationNotFound
		}
		return nil, err
	}

	view := NewHotelReservationView(row, q.clock.Now())

	nights, err := q.quotes.ListNights(ctx, row.Reservation.HotelQuoteRateID())
	if err != nil {
		return nil, err
	}
	cutoff, err := hotelreservation.IndividualCancellationCutoff(row.Quote, nights, q.loc)
	switch {
	case err == nil:
		view.IndividualCancellationCutoff = &cutoff
	case errs.Is(err, hotelreservation.ErrNoNightlyRates):
	default:
		return nil, err
	}
	return view, nil
}

func (q *hotelReservationQueriesImpl) List(ctx context.Context, params ListParams) ([]*HotelReservationView, *Cursor, error) {
	limit := ValidateLimit(params.Limit)
	var after *Position
	if params.Cursor != nil && params.Cursor.After != "" {
		pos, err := DecodeAfterCursor(params.Cursor.After)
		if err != nil {
			return nil, nil, err
		}
		after = pos
	}

	rows, err := q.store.List(ctx, params.Filters, after, int32(limit+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(rows) > limit {
		last := rows[limit-1].Reservation
		next = &Cursor{After: EncodeAfterCursor(last.CreatedAt(), last.ID())}
		rows = rows[:limit]
	}

	now := q.clock.Now()
	views := make([]*HotelReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, NewHotelReservationView(row, now))
	}
	return views, next, nil
}

func (q *hotelReservationQueriesImpl) ExistsForEvent(ctx context.Context, eventID, hotelID uuid.UUID) (bool, error) {
	return q.store.ExistsForEvent(ctx, eventID, hotelID)
}

func (q *hotelReservationQueriesImpl) ExistsForEventVenue(ctx context.Context, eventVenueID, hotelID uuid.UUID) (bool, error) {
	return q.store.ExistsForEventVenue(ctx, eventVenueID, hotelID)
}

// NewHotelReservationView derives the lifecycle fields at now. The cancellation cutoff is left empty.
func NewHotelReservationView(row *HotelReservationRow, now time.Time) *HotelReservationView {
	r := row.Reservation
	return &HotelReservationView{
		ID:                   r.ID(),
		Variant:              r.Variant().String(),
		HotelID:              r.HotelID(),
		EventID:              r.EventID(),
		EventVenueID:         r.EventVenueID(),
		HotelQuoteRateID:     r.HotelQuoteRateID(),
		TeamID:               r.TeamID(),
		IndividualID:         r.IndividualID(),
		OrderID:              r.OrderID(),
		PeopleCount:          r.PeopleCount(),
		BlockExpiresAt:       r.BlockExpiresAt(),
		HotelReservationCode: r.HotelReservationCode(),
		HoldExpiresAt:        hotelreservation.HoldExpiresAt(r, row.Quote),
		BlockExpired:         hotelreservation.IsBlockExpired(now, r, row.Quote),
		Cancellable:          hotelreservation.IsCancellable(now, r, row.Order),
		CreatedAt:            r.CreatedAt(),
		UpdatedAt:            r.UpdatedAt(),
	}
}
