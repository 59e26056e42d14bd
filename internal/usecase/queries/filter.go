package queries

import (
	"time"

	"hotel-block-service/internal/domain/hotelreservation"

	"github.com/google/uuid"
)

type FilterKind int

const (
	FilterHotel FilterKind = iota + 1
	FilterEvent
	FilterEventVenue
	FilterTeam
	FilterIndividual
	FilterOrder
	FilterHotelQuote
	FilterHotelQuoteRate
	FilterHotelQuoteQty
	FilterHotelQuoteAccepted
	FilterComplete
	FilterIncomplete
	FilterWithoutHotelCode
	FilterQuickCancellationPeriod
	FilterHotelReservationCode
	FilterNight
	FilterYear
	FilterYearMonth
	FilterPlacedAfter
)

// Filter is one typed predicate over hotel reservations. A list of filters is combined with AND.
type Filter struct {
	kind   FilterKind
	id     uuid.UUID
	active bool
	at     time.Time
	year   int
	month  int
	code   string
}

func (f Filter) Kind() FilterKind { return f.kind }
func (f Filter) ID() uuid.UUID    { return f.id }
func (f Filter) Active() bool     { return f.active }
func (f Filter) At() time.Time    { return f.at }
func (f Filter) Year() int        { return f.year }
func (f Filter) Month() int       { return f.month }
func (f Filter) Code() string     { return f.code }

func ForHotel(id uuid.UUID) Filter          { return Filter{kind: FilterHotel, id: id} }
func ForEvent(id uuid.UUID) Filter          { return Filter{kind: FilterEvent, id: id} }
func ForEventVenue(id uuid.UUID) Filter     { return Filter{kind: FilterEventVenue, id: id} }
func ForTeam(id uuid.UUID) Filter           { return Filter{kind: FilterTeam, id: id} }
func ForIndividual(id uuid.UUID) Filter     { return Filter{kind: FilterIndividual, id: id} }
func ForOrder(id uuid.UUID) Filter          { return Filter{kind: FilterOrder, id: id} }
func ForHotelQuote(id uuid.UUID) Filter     { return Filter{kind: FilterHotelQuote, id: id} }
func ForHotelQuoteRate(id uuid.UUID) Filter { return Filter{kind: FilterHotelQuoteRate, id: id} }
func ForHotelQuoteQty(id uuid.UUID) Filter  { return Filter{kind: FilterHotelQuoteQty, id: id} }

// HotelQuoteAccepted keeps reservations whose rate belongs to an accepted quote.
func HotelQuoteAccepted() Filter { return Filter{kind: FilterHotelQuoteAccepted} }

// Complete keeps reservations attached to a placed order.
func Complete() Filter { return Filter{kind: FilterComplete} }

// Incomplete keeps accepted-quote reservations without a placed order.
func Incomplete() Filter { return Filter{kind: FilterIncomplete} }

// WithoutHotelCode keeps complete reservations the hotel has not confirmed yet.
func WithoutHotelCode() Filter { return Filter{kind: FilterWithoutHotelCode} }

// InQuickCancellationPeriod compares the order window with now. active=false keeps closed windows.
func InQuickCancellationPeriod(active bool, now time.Time) Filter {
	return Filter{kind: FilterQuickCancellationPeriod, active: active, at: now}
}

func ForHotelReservationCode(code string) Filter {
	return Filter{kind: FilterHotelReservationCode, code: code}
}

// ForNight keeps accepted-quote reservations whose rate has a quantity on the given date.
func ForNight(date time.Time) Filter { return Filter{kind: FilterNight, at: date} }

func ForYear(year int) Filter { return Filter{kind: FilterYear, year: year} }

func ForYearMonth(year, month int) Filter {
	return Filter{kind: FilterYearMonth, year: year, month: month}
}

func PlacedAfter(t time.Time) Filter { return Filter{kind: FilterPlacedAfter, at: t} }

// WithoutHotelCodeAfterCancellationPeriod is the set a hotel still has to confirm.
func WithoutHotelCodeAfterCancellationPeriod(now time.Time) []Filter {
	return []Filter{WithoutHotelCode(), InQuickCancellationPeriod(false, now)}
}

// ForTeamIfCompetition narrows to the team only for competition events. Other events share their rooms.
func ForTeamIfCompetition(team *uuid.UUID, event hotelreservation.EventSpec) []Filter {
	if team == nil || *team == uuid.Nil || !event.IsCompetition() {
		return nil
	}
	return []Filter{ForTeam(*team)}
}

// UnreservedHotelRooms is the event's accepted-quote stock not yet taken by a placed order.
func UnreservedHotelRooms(event hotelreservation.EventSpec, team *uuid.UUID) []Filter {
	return append([]Filter{ForEvent(event.ID), Incomplete()}, ForTeamIfCompetition(team, event)...)
}
