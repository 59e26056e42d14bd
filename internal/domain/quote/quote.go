// Package quote holds the read-only view of the quote subsystem that reservations derive
// their expiry and cancellation policy from.
package quote

import (
	"time"

	"github.com/google/uuid"
)

const StatusAccepted = "accepted"

type Quote struct {
	ID                         uuid.UUID
	HotelID                    uuid.UUID
	EventID                    uuid.UUID
	Status                     string
	BlockExpireAt              *time.Time
	IndividualCancelNoticeDays int
}

func (q Quote) IsAccepted() bool {
	return q.Status == StatusAccepted
}

type Rate struct {
	ID      uuid.UUID
	QuoteID uuid.UUID
	Name    string
}

// Night is one nightly quantity record of a rate.
type Night struct {
	ID      uuid.UUID
	QuoteID uuid.UUID
	RateID  uuid.UUID
	NightAt time.Time
	Qty     int
}

// Linkage bundles a rate with its parent quote and nightly records.
type Linkage struct {
	Rate   Rate
	Quote  Quote
	Nights []Night
}

// EarliestNight returns the first night across nights, false when there are none.
func EarliestNight(nights []Night) (time.Time, bool) {
	if len(nights) == 0 {
		return time.Time{}, false
	}
	first := nights[0].NightAt
	for _, n := range nights[1:] {
		if n.NightAt.Before(first) {
			first = n.NightAt
		}
	}
	return first, true
}
