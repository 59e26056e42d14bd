package request

import (
	"strconv"
	"strings"
	"time"

	"hotel-block-service/internal/domain/history"
	"hotel-block-service/internal/domain/hotelreservation"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/usecase/queries"

	"github.com/google/uuid"
)

var ErrInvalidFilter = errs.Mark(errs.New("invalid filter"), errs.ErrValidation)

type CreateHotelReservationRequest struct {
	Variant          string     `json:"variant" binding:"omitempty,oneof=hotel_reservation team_block individual_block"`
	HotelID          uuid.UUID  `json:"hotel_id" binding:"required"`
	EventID          uuid.UUID  `json:"event_id" binding:"required"`
	EventVenueID     uuid.UUID  `json:"event_venue_id" binding:"required"`
	HotelQuoteRateID uuid.UUID  `json:"hotel_quote_rate_id" binding:"required"`
	TeamID           *uuid.UUID `json:"team_id,omitempty"`
	IndividualID     *uuid.UUID `json:"individual_id,omitempty"`
	OrderID          *uuid.UUID `json:"order_id,omitempty"`
	PeopleCount      int        `json:"people_count" binding:"min=0"`
	// Rooms defaults to one.
	Rooms int `json:"rooms,omitempty" binding:"omitempty,min=1,max=500"`
}

func (r *CreateHotelReservationRequest) ToDomain() (hotelreservation.Fields, int, error) {
	variant, err := hotelreservation.ParseVariant(r.Variant)
	if err != nil {
		return hotelreservation.Fields{}, 0, err
	}
	rooms := r.Rooms
	if rooms == 0 {
		rooms = 1
	}
	return hotelreservation.Fields{
		Variant:          variant,
		HotelID:          r.HotelID,
		EventID:          r.EventID,
		EventVenueID:     r.EventVenueID,
		HotelQuoteRateID: r.HotelQuoteRateID,
		TeamID:           r.TeamID,
		IndividualID:     r.IndividualID,
		OrderID:          r.OrderID,
		PeopleCount:      r.PeopleCount,
	}, rooms, nil
}

// UpdateHotelReservationRequest leaves absent fields alone. The nil uuid clears a reference.
type UpdateHotelReservationRequest struct {
	TeamID       *uuid.UUID `json:"team_id,omitempty"`
	IndividualID *uuid.UUID `json:"individual_id,omitempty"`
	OrderID      *uuid.UUID `json:"order_id,omitempty"`
	PeopleCount  *int       `json:"people_count,omitempty" binding:"omitempty,min=0"`
}

func (r *UpdateHotelReservationRequest) ToDomain() hotelreservation.Changes {
	return hotelreservation.Changes{
		TeamID:       r.TeamID,
		IndividualID: r.IndividualID,
		OrderID:      r.OrderID,
		PeopleCount:  r.PeopleCount,
	}
}

type AssignCodeRequest struct {
	HotelReservationCode string `json:"hotel_reservation_code" binding:"required"`
}

// Quantity accepts both "6" and 6 on the wire.
type Quantity string

func (q *Quantity) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if unquoted, err := strconv.Unquote(s); err == nil {
		s = unquoted
	}
	*q = Quantity(s)
	return nil
}

type AdjustLineItemsRequest struct {
	Quantities map[string]Quantity `json:"quantities" binding:"required"`
}

func (r *AdjustLineItemsRequest) ToDomain() map[string]string {
	out := make(map[string]string, len(r.Quantities))
	for k, v := range r.Quantities {
		out[k] = string(v)
	}
	return out
}

// ListHotelReservationsQuery maps query parameters onto typed filters.
type ListHotelReservationsQuery struct {
	HotelID                   string `form:"hotel_id"`
	EventID                   string `form:"event_id"`
	EventVenueID              string `form:"event_venue_id"`
	TeamID                    string `form:"team_id"`
	IndividualID              string `form:"individual_id"`
	OrderID                   string `form:"order_id"`
	HotelQuoteID              string `form:"hotel_quote_id"`
	HotelQuoteRateID          string `form:"hotel_quote_rate_id"`
	HotelQuoteQtyID           string `form:"hotel_quote_qty_id"`
	Status                    string `form:"status" binding:"omitempty,oneof=complete incomplete"`
	HotelQuoteAccepted        bool   `form:"hotel_quote_accepted"`
	WithoutHotelCode          bool   `form:"without_hotel_code"`
	InQuickCancellationPeriod *bool  `form:"in_quick_cancellation_period"`
	PastCancellationNoCode    bool   `form:"without_hotel_code_after_cancellation_period"`
	HotelReservationCode      string `form:"hotel_reservation_code"`
	Night                     string `form:"night"`
	Year                      int    `form:"year" binding:"omitempty,min=1900,max=9999"`
	Month                     int    `form:"month" binding:"omitempty,min=1,max=12"`
	PlacedAfter               string `form:"placed_after"`
	Limit                     int    `form:"limit"`
	After                     string `form:"after"`
}

func (q *ListHotelReservationsQuery) ToParams(now time.Time) (queries.ListParams, error) {
	var filters []queries.Filter

	ids := []struct {
		name  string
		value string
		build func(uuid.UUID) queries.Filter
	}{
		{"hotel_id", q.HotelID, queries.ForHotel},
		{"event_id", q.EventID, queries.ForEvent},
		{"event_venue_id", q.EventVenueID, queries.ForEventVenue},
		{"team_id", q.TeamID, queries.ForTeam},
		{"individual_id", q.IndividualID, queries.ForIndividual},
		{"order_id", q.OrderID, queries.ForOrder},
		{"hotel_quote_id", q.HotelQuoteID, queries.ForHotelQuote},
		{"hotel_quote_rate_id", q.HotelQuoteRateID, queries.ForHotelQuoteRate},
		{"hotel_quote_qty_id", q.HotelQuoteQtyID, queries.ForHotelQuoteQty},
	}
	for _, p := range ids {
		if p.value == "" {
			continue
		}
		id, err := uuid.Parse(p.value)
		if err != nil {
			return queries.ListParams{}, errs.Wrap(ErrInvalidFilter, p.name)
		}
		filters = append(filters, p.build(id))
	}

	switch q.Status {
	case "complete":
		filters = append(filters, queries.Complete())
	case "incomplete":
		filters = append(filters, queries.Incomplete())
	}
	if q.HotelQuoteAccepted {
		filters = append(filters, queries.HotelQuoteAccepted())
	}
	if q.WithoutHotelCode {
		filters = append(filters, queries.WithoutHotelCode())
	}
	if q.InQuickCancellationPeriod != nil {
		filters = append(filters, queries.InQuickCancellationPeriod(*q.InQuickCancellationPeriod, now))
	}
	if q.PastCancellationNoCode {
		filters = append(filters, queries.WithoutHotelCodeAfterCancellationPeriod(now)...)
	}
	if code := strings.TrimSpace(q.HotelReservationCode); code != "" {
		filters = append(filters, queries.ForHotelReservationCode(code))
	}
	if q.Night != "" {
		night, err := time.Parse(time.DateOnly, q.Night)
		if err != nil {
			return queries.ListParams{}, errs.Wrap(ErrInvalidFilter, "night")
		}
		filters = append(filters, queries.ForNight(night))
	}
	switch {
	case q.Month != 0 && q.Year == 0:
		return queries.ListParams{}, errs.Wrap(ErrInvalidFilter, "month requires year")
	case q.Month != 0:
		filters = append(filters, queries.ForYearMonth(q.Year, q.Month))
	case q.Year != 0:
		filters = append(filters, queries.ForYear(q.Year))
	}
	if q.PlacedAfter != "" {
		at, err := time.Parse(time.RFC3339, q.PlacedAfter)
		if err != nil {
			return queries.ListParams{}, errs.Wrap(ErrInvalidFilter, "placed_after")
		}
		filters = append(filters, queries.PlacedAfter(at))
	}

	params := queries.ListParams{Filters: filters, Limit: q.Limit}
	if q.After != "" {
		params.Cursor = &queries.Cursor{After: q.After}
	}
	return params, nil
}

type HistoryQuery struct {
	Action string `form:"action" binding:"omitempty,oneof=save destroy"`
}

func (q *HistoryQuery) ToDomain() (*history.Action, error) {
	if q.Action == "" {
		return nil, nil
	}
	action, err := history.ParseAction(q.Action)
	if err != nil {
		return nil, err
	}
	return &action, nil
}

// ExistsQuery takes event_venue_id over event_id when both are set.
type ExistsQuery struct {
	HotelID      string `form:"hotel_id" binding:"required,uuid"`
	EventID      string `form:"event_id" binding:"omitempty,uuid"`
	EventVenueID string `form:"event_venue_id" binding:"omitempty,uuid"`
}

// ExistsLookup is a parsed ExistsQuery. A nil VenueID means an event-wide lookup.
type ExistsLookup struct {
	HotelID uuid.UUID
	EventID uuid.UUID
	VenueID *uuid.UUID
}

func (q *ExistsQuery) ToLookup() (ExistsLookup, error) {
	if q.EventID == "" && q.EventVenueID == "" {
		return ExistsLookup{}, errs.Wrap(ErrInvalidFilter, "event_id or event_venue_id required")
	}
	lookup := ExistsLookup{HotelID: uuid.MustParse(q.HotelID)}
	if q.EventVenueID != "" {
		venueID := uuid.MustParse(q.EventVenueID)
		lookup.VenueID = &venueID
		return lookup, nil
	}
	lookup.EventID = uuid.MustParse(q.EventID)
	return lookup, nil
}
