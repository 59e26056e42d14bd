package readstore

import (
	"fmt"
	"strings"

	"hotel-block-service/internal/domain/quote"
	"hotel-block-service/internal/pkg/errs"
	"hotel-block-service/internal/pkg/pgconv"
	"hotel-block-service/internal/usecase/queries"
)

var ErrUnknownFilter = errs.Mark(errs.New("unknown hotel reservation filter"), errs.ErrValidation)

// Correlated subqueries over the rate's nightly quantities. Joins would duplicate rows.
const (
	existsAcceptedQty = `EXISTS (SELECT 1 FROM hotel_quote_qtys qq JOIN hotel_quotes aq ON aq.id = qq.hotel_quote_id ` +
		`WHERE qq.hotel_quote_rate_id = hr.hotel_quote_rate_id AND aq.status = %s%s)`
	existsQty = `EXISTS (SELECT 1 FROM hotel_quote_qtys qq WHERE qq.hotel_quote_rate_id = hr.hotel_quote_rate_id%s)`

	clauseComplete = "(hr.order_id IS NOT NULL AND o.placed_at IS NOT NULL)"
)

// predicateBuilder turns typed filters into a WHERE body with positional arguments.
type predicateBuilder struct {
	clauses []string
	args    []any
}

func (b *predicateBuilder) arg(v any) string {
	b.args = append(b.args, v)
	return fmt.Sprintf("$%d", len(b.args))
}

func (b *predicateBuilder) add(clause string) {
	b.clauses = append(b.clauses, clause)
}

// accepted binds the quote status before extra, so placeholders ascend in text order.
func (b *predicateBuilder) accepted(extra func() string) string {
	status := b.arg(quote.StatusAccepted)
	suffix := ""
	if extra != nil {
		suffix = extra()
	}
	return fmt.Sprintf(existsAcceptedQty, status, suffix)
}

func (b *predicateBuilder) apply(f queries.Filter) error {
	switch f.Kind() {
	case queries.FilterHotel:
		b.add("hr.hotel_id = " + b.arg(f.ID()))
	case queries.FilterEvent:
		b.add("hr.event_id = " + b.arg(f.ID()))
	case queries.FilterEventVenue:
		b.add("hr.event_venue_id = " + b.arg(f.ID()))
	case queries.FilterTeam:
		b.add("hr.team_id = " + b.arg(f.ID()))
	case queries.FilterIndividual:
		b.add("hr.individual_id = " + b.arg(f.ID()))
	case queries.FilterOrder:
		b.add("hr.order_id = " + b.arg(f.ID()))
	case queries.FilterHotelQuoteRate:
		b.add("hr.hotel_quote_rate_id = " + b.arg(f.ID()))
	case queries.FilterHotelQuote:
		b.add(fmt.Sprintf(existsQty, " AND qq.hotel_quote_id = "+b.arg(f.ID())))
	case queries.FilterHotelQuoteQty:
		b.add(b.accepted(func() string { return " AND qq.id = " + b.arg(f.ID()) }))
	case queries.FilterHotelQuoteAccepted:
		b.add(b.accepted(nil))
	case queries.FilterComplete:
		b.add(clauseComplete)
	case queries.FilterIncomplete:
		b.add(b.accepted(nil))
		b.add("(hr.order_id IS NULL OR o.placed_at IS NULL)")
	case queries.FilterWithoutHotelCode:
		b.add(clauseComplete)
		b.add("hr.hotel_reservation_code IS NULL")
	case queries.FilterQuickCancellationPeriod:
		op := "<"
		if f.Active() {
			op = ">"
		}
		b.add(fmt.Sprintf("o.quick_cancellation_expire_at %s %s", op, b.arg(pgconv.TimeToPgtype(f.At()))))
	case queries.FilterHotelReservationCode:
		b.add("hr.hotel_reservation_code = " + b.arg(f.Code()))
	case queries.FilterNight:
		b.add(b.accepted(func() string { return " AND qq.night_at = " + b.arg(pgconv.DateToPgtype(f.At())) }))
	case queries.FilterYear:
		b.add(fmt.Sprintf(existsQty, " AND EXTRACT(YEAR FROM qq.night_at)::int = "+b.arg(pgconv.IntToInt32(f.Year()))))
	case queries.FilterYearMonth:
		b.add(fmt.Sprintf(existsQty,
			" AND EXTRACT(YEAR FROM qq.night_at)::int = "+b.arg(pgconv.IntToInt32(f.Year()))+
				" AND EXTRACT(MONTH FROM qq.night_at)::int = "+b.arg(pgconv.IntToInt32(f.Month()))))
	case queries.FilterPlacedAfter:
		b.add("o.placed_at > " + b.arg(pgconv.TimeToPgtype(f.At())))
	default:
		return errs.Wrap(ErrUnknownFilter, fmt.Sprintf("kind %d", f.Kind()))
	}
	return nil
}

func (b *predicateBuilder) where() string {
	if len(b.clauses) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(b.clauses, "\n  AND ")
}

func buildPredicates(filters []queries.Filter) (*predicateBuilder, error) {
	b := &predicateBuilder{}
	for _, f := range filters {
		if err := b.apply(f); err != nil {
			return nil, err
		}
	}
	return b, nil
}
