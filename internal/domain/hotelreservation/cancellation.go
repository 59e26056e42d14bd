package hotelreservation

import (
	"time"

	"hotel-block-service/internal/domain/order"
	"hotel-block-service/internal/domain/quote"
)

const (
	cutoffHour       = 12
	cutoffExtraHours = 4
)

// IsCancellable is true without an order; with one it follows the order's quick-cancellation window.
// An attached order that could not be loaded is treated as closed.
func IsCancellable(now time.Time, r *Reservation, o *order.Order) bool {
	if !r.HasOrder() {
		return true
	}
	if o == nil {
		return false
	}
	return o.InQuickCancellationPeriod(now)
}

// IndividualCancellationCutoff is the earliest night minus the quote's notice days, at noon plus four hours in loc.
func IndividualCancellationCutoff(q quote.Quote, nights []quote.Night, loc *time.Location) (time.Time, error) {
	first, ok := quote.EarliestNight(nights)
	if !ok {
		return time.Time{}, ErrNoNightlyRates
	}
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := first.AddDate(0, 0, -q.IndividualCancelNoticeDays).Date()
	noon := time.Date(y, m, d, cutoffHour, 0, 0, 0, loc)
	return noon.Add(cutoffExtraHours * time.Hour), nil
}
