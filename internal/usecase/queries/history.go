package queries

import (
	"context"
	"time"

	"hotel-block-service/internal/domain/history"

	"github.com/google/uuid"
)

type HistoryEntryView struct {
	ID                   uuid.UUID  `json:"id"`
	HotelReservationID   uuid.UUID  `json:"hotel_reservation_id"`
	Action               string     `json:"action"`
	Variant              string     `json:"variant"`
	HotelID              uuid.UUID  `json:"hotel_id"`
	EventID              uuid.UUID  `json:"event_id"`
	EventVenueID         uuid.UUID  `json:"event_venue_id"`
	HotelQuoteRateID     uuid.UUID  `json:"hotel_quote_rate_id"`
	TeamID               *uuid.UUID `json:"team_id,omitempty"`
	IndividualID         *uuid.UUID `json:"individual_id,omitempty"`
	OrderID              *uuid.UUID `json:"order_id,omitempty"`
	PeopleCount          int        `json:"people_count"`
	BlockExpiresAt       *time.Time `json:"block_expires_at,omitempty"`
	HotelReservationCode *string    `json:"hotel_reservation_code,omitempty"`
	RecordedAt           time.Time  `json:"recorded_at"`
}

type HistoryReadStore interface {
	List(ctx context.Context, reservationID uuid.UUID, action *history.Action) ([]history.Entry, error)
}

type HistoryQueries interface {
	// ListHistory returns entries in recorded order. A nil action returns every action.
	ListHistory(ctx context.Context, reservationID uuid.UUID, action *history.Action) ([]*HistoryEntryView, error)
}

type historyQueriesImpl struct {
	store HistoryReadStore
}

func NewHistoryQueries(store HistoryReadStore) HistoryQueries {
	return &historyQueriesImpl{store: store}
}

func (q *historyQueriesImpl) ListHistory(ctx context.Context, reservationID uuid.UUID, action *history.Action) ([]*HistoryEntryView, error) {
	entries, err := q.store.List(ctx, reservationID, action)
	if err != nil {
		return nil, err
	}
	views := make([]*HistoryEntryView, 0, len(entries))
	for _, e := range entries {
		s := e.Snapshot
		views = append(views, &HistoryEntryView{
			ID:                   e.ID,
			HotelReservationID:   s.ID,
			Action:               string(e.Action),
			Variant:              s.Variant.String(),
			HotelID:              s.HotelID,
			EventID:              s.EventID,
			EventVenueID:         s.EventVenueID,
			HotelQuoteRateID:     s.HotelQuoteRateID,
			TeamID:               s.TeamID,
			IndividualID:         s.IndividualID,
			OrderID:              s.OrderID,
			PeopleCount:          s.PeopleCount,
			BlockExpiresAt:       s.BlockExpiresAt,
			HotelReservationCode: s.HotelReservationCode,
			RecordedAt:           e.RecordedAt,
		})
	}
	return views, nil
}
